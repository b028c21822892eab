package gtkhost

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/infrastructure/config"
)

// Window is the main application window. Surfaces are absolutely positioned
// on a Fixed stacked over a DrawingArea that only reports the content size.
type Window struct {
	win   *gtk.ApplicationWindow
	area  *gtk.DrawingArea
	fixed *gtk.Fixed

	width, height int
	onResize      []func(width, height int)
}

var _ port.Window = (*Window)(nil)

func newWindow(app *gtk.Application, cfg config.WindowConfig) *Window {
	w := &Window{
		win:    gtk.NewApplicationWindow(app),
		area:   gtk.NewDrawingArea(),
		fixed:  gtk.NewFixed(),
		width:  cfg.Width,
		height: cfg.Height,
	}

	w.win.SetTitle(cfg.Title)
	w.win.SetDefaultSize(cfg.Width, cfg.Height)

	w.area.SetHExpand(true)
	w.area.SetVExpand(true)
	w.fixed.SetOverflow(gtk.OverflowHidden)

	overlay := gtk.NewOverlay()
	overlay.SetChild(w.area)
	overlay.AddOverlay(w.fixed)
	w.win.SetChild(overlay)

	w.area.ConnectResize(func(width, height int) {
		if width == w.width && height == w.height {
			return
		}
		w.width, w.height = width, height
		for _, fn := range w.onResize {
			fn(width, height)
		}
	})

	return w
}

// Size returns the last known content size.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// OnResize registers a callback for content size changes.
func (w *Window) OnResize(callback func(width, height int)) {
	w.onResize = append(w.onResize, callback)
}

// Show presents the window.
func (w *Window) Show() {
	w.win.Present()
}

// attach stacks widget above previously attached widgets. It stays hidden
// until placed.
func (w *Window) attach(widget gtk.Widgetter) {
	gtk.BaseWidget(widget).SetVisible(false)
	w.fixed.Put(widget, 0, 0)
}

// place moves and sizes an attached widget. Empty rectangles hide it.
func (w *Window) place(widget gtk.Widgetter, rect entity.Rect) {
	base := gtk.BaseWidget(widget)
	if rect.Empty() {
		base.SetVisible(false)
		return
	}
	w.fixed.Move(widget, float64(rect.X), float64(rect.Y))
	base.SetSizeRequest(rect.W, rect.H)
	base.SetVisible(true)
}
