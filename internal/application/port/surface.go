// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import (
	"context"

	"github.com/bnema/duopane/internal/domain/entity"
)

// BlankURL is the placeholder loaded into a pane that has no URL.
const BlankURL = "about:blank"

// Surface is an independently navigable content surface placed inside the
// window. Implementations must be driven from the UI main loop.
type Surface interface {
	// Navigate loads uri, or the blank placeholder when uri is empty.
	Navigate(ctx context.Context, uri string) error

	// SetBounds positions and sizes the surface in window coordinates.
	SetBounds(rect entity.Rect)

	// SetTransparentBackground makes unpainted regions see-through.
	SetTransparentBackground()

	// OnFirstPaint registers a callback invoked once, after the first
	// document finished loading.
	OnFirstPaint(callback func())

	// OnExternalNavigation registers a callback for navigations that would
	// open a new browsing context (target=_blank, window.open). The surface
	// never opens them itself.
	OnExternalNavigation(callback func(uri string))

	// Send delivers a named message with a JSON-encodable payload to the
	// page script running in the surface.
	Send(ctx context.Context, name string, payload any) error
}

// Window is the host window that contains the surfaces.
type Window interface {
	// Size returns the current content size in pixels.
	Size() (width, height int)

	// OnResize registers a callback invoked after the content size changes.
	OnResize(callback func(width, height int))

	// Show presents the window.
	Show()
}

// SurfaceFactory creates surfaces attached to a window, bottom to top in
// creation order.
type SurfaceFactory interface {
	// NewContentSurface creates a sandboxed pane surface backed by the
	// partition's persistent storage.
	NewContentSurface(ctx context.Context, partition entity.Partition) (Surface, error)

	// NewOverlaySurface creates the always-on-top UI surface hosting the
	// divider and configure buttons. It receives script messages.
	NewOverlaySurface(ctx context.Context) (Surface, error)
}

// ExternalOpener hands a URL to the system's default handler.
type ExternalOpener interface {
	Open(ctx context.Context, uri string) error
}

// MainLoop serializes work onto the UI event loop.
type MainLoop interface {
	// Post schedules fn to run on the main loop. Safe from any goroutine.
	Post(fn func())
}
