package gtkhost

import (
	"context"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/duopane/assets"
	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/infrastructure/config"
	"github.com/bnema/duopane/internal/logging"
)

const (
	editorWidth  = 600
	editorHeight = 300
)

// BroadcastRegistrar subscribes a surface to settings broadcasts and returns
// the function removing it.
type BroadcastRegistrar func(surface port.Surface) (remove func())

// SettingsEditor is a fixed-size window hosting the settings page. At most
// one instance exists; opening it again presents the existing window.
type SettingsEditor struct {
	app       *gtk.Application
	parent    *Window
	content   config.ContentConfig
	onMessage MessageHandler
	register  BroadcastRegistrar

	win *gtk.Window
}

var _ port.SettingsEditor = (*SettingsEditor)(nil)

// OpenSettingsEditor shows the editor, creating it on first use.
func (e *SettingsEditor) OpenSettingsEditor(ctx context.Context) {
	log := logging.FromContext(ctx)
	if e.win != nil {
		e.win.Present()
		return
	}

	win := gtk.NewWindow()
	win.SetApplication(e.app)
	win.SetTitle("Duopane Settings")
	win.SetDefaultSize(editorWidth, editorHeight)
	win.SetResizable(false)
	if e.parent != nil {
		win.SetTransientFor(&e.parent.win.Window)
	}

	view := webkit.NewWebView()
	applyContentSettings(view, e.content)
	editorCtx := logging.WithComponent(ctx, "settings-editor")
	s := newSurface(editorCtx, view, nil)
	if err := enableBridge(editorCtx, view, s, e.onMessage); err != nil {
		log.Error().Err(err).Msg("failed to open settings editor")
		win.Destroy()
		return
	}
	view.LoadHTML(assets.SettingsHTML, "")
	win.SetChild(view)

	remove := func() {}
	if e.register != nil {
		remove = e.register(s)
	}
	win.ConnectCloseRequest(func() bool {
		remove()
		e.win = nil
		return false
	})

	e.win = win
	win.Present()
	log.Debug().Msg("settings editor opened")
}
