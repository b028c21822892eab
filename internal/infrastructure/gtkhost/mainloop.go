package gtkhost

import (
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/bnema/duopane/internal/application/port"
)

// MainLoop posts work to the GLib main context.
type MainLoop struct{}

var _ port.MainLoop = MainLoop{}

// NewMainLoop returns the GLib main loop adapter.
func NewMainLoop() MainLoop {
	return MainLoop{}
}

// Post schedules fn on the main loop. Safe from any goroutine.
func (MainLoop) Post(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
