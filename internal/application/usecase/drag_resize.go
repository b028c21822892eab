package usecase

import (
	"context"

	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/logging"
)

// LayoutProvider exposes the layout most recently applied to the window.
type LayoutProvider interface {
	CurrentLayout() (entity.Layout, bool)
}

// DragResizeCoordinator turns divider drag events into store changes.
// Moves are previewed live; only the end of a drag is persisted.
type DragResizeCoordinator struct {
	store  *SettingsStore
	layout LayoutProvider

	dragging  bool
	lastRatio float64
}

// NewDragResizeCoordinator creates a coordinator bound to the store.
func NewDragResizeCoordinator(store *SettingsStore, layout LayoutProvider) *DragResizeCoordinator {
	return &DragResizeCoordinator{store: store, layout: layout}
}

// DragMove handles a pointer position relative to the overlay's left edge.
// The overlay may start at the window origin or at the divider, so the
// overlay offset is added back before converting to a ratio.
func (c *DragResizeCoordinator) DragMove(ctx context.Context, clientX float64) {
	layout, ok := c.layout.CurrentLayout()
	if !ok || layout.Window.W <= 0 {
		logging.FromContext(ctx).Debug().Msg("ignoring drag move without layout")
		return
	}

	windowX := float64(layout.Overlay.X) + clientX
	c.UpdateSplitRatio(ctx, windowX/float64(layout.Window.W)*100)
}

// UpdateSplitRatio streams a raw visual split ratio. The value is clamped and
// applied without touching disk.
func (c *DragResizeCoordinator) UpdateSplitRatio(ctx context.Context, visualRatio float64) {
	visual := entity.ClampRatio(visualRatio)
	stored := visual
	if c.store.Current().Swapped {
		stored = 100 - visual
	}

	accepted, ok := c.store.PreviewSplitRatio(ctx, stored)
	if !ok {
		return
	}

	c.dragging = true
	c.lastRatio = accepted.SplitRatio
}

// DragEnd persists the last streamed ratio once. A drag without moves
// writes nothing.
func (c *DragResizeCoordinator) DragEnd(ctx context.Context) {
	if !c.dragging {
		logging.FromContext(ctx).Debug().Msg("drag ended without movement")
		return
	}
	c.dragging = false

	next := c.store.Current()
	next.SplitRatio = c.lastRatio
	c.store.Commit(ctx, next, SourceDrag)
}

// Dragging reports whether a drag has streamed at least one ratio since the
// last DragEnd.
func (c *DragResizeCoordinator) Dragging() bool {
	return c.dragging
}
