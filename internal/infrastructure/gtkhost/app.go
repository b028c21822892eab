// Package gtkhost hosts the dual-pane composition on GTK4 and WebKitGTK.
// Everything here must run on the GTK main thread; other goroutines go
// through MainLoop.Post.
package gtkhost

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/duopane/internal/infrastructure/config"
	"github.com/bnema/duopane/internal/logging"
)

// ApplicationID is the GApplication identifier.
const ApplicationID = "io.github.bnema.duopane"

const settingsAction = "settings"

// App wraps the GTK application lifecycle.
type App struct {
	ctx context.Context
	gtk *gtk.Application

	activated bool
	window    *Window
}

// NewApp creates the GTK application. Nothing is shown until Run.
func NewApp(ctx context.Context) *App {
	return &App{
		ctx: logging.WithComponent(ctx, "gtk"),
		gtk: gtk.NewApplication(ApplicationID, gio.ApplicationFlagsNone),
	}
}

// OnActivate registers the startup hook. It runs once, on the first
// activation; later activations present the existing window.
func (a *App) OnActivate(fn func(ctx context.Context) error) {
	a.gtk.ConnectActivate(func() {
		if a.activated {
			if a.window != nil {
				a.window.Show()
			}
			return
		}
		a.activated = true
		if err := fn(a.ctx); err != nil {
			logging.FromContext(a.ctx).Error().Err(err).Msg("startup failed")
			a.gtk.Quit()
		}
	})
}

// OnShutdown registers a hook run when the application is shutting down.
func (a *App) OnShutdown(fn func(ctx context.Context)) {
	a.gtk.ConnectShutdown(func() {
		fn(a.ctx)
	})
}

// NewWindow creates the main window. Call from the activate hook.
func (a *App) NewWindow(cfg config.WindowConfig) *Window {
	a.window = newWindow(a.gtk, cfg)
	return a.window
}

// NewSettingsEditor creates the settings editor attached to parent.
func (a *App) NewSettingsEditor(parent *Window, content config.ContentConfig, onMessage MessageHandler, register BroadcastRegistrar) *SettingsEditor {
	return &SettingsEditor{
		app:       a.gtk,
		parent:    parent,
		content:   content,
		onMessage: onMessage,
		register:  register,
	}
}

// BindSettingsShortcut exposes app.settings on Ctrl+comma.
func (a *App) BindSettingsShortcut(fn func(ctx context.Context)) {
	action := gio.NewSimpleAction(settingsAction, nil)
	action.ConnectActivate(func(_ *glib.Variant) {
		fn(a.ctx)
	})
	a.gtk.AddAction(action)
	a.gtk.SetAccelsForAction("app."+settingsAction, []string{"<Control>comma"})
}

// Run blocks in the GTK main loop and returns the exit status.
func (a *App) Run(args []string) int {
	return a.gtk.Run(args)
}

// Quit stops the main loop.
func (a *App) Quit() {
	a.gtk.Quit()
}
