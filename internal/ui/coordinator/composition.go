// Package coordinator composes the content surfaces inside the host window.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/application/usecase"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/domain/service"
	"github.com/bnema/duopane/internal/logging"
)

// Script message names pushed to UI surfaces.
const (
	MessageSettingsChanged = "onSettingsChanged"
	MessageOverlayLayout   = "overlayLayout"
)

// CompositionDeps bundles the collaborators of a CompositionController.
type CompositionDeps struct {
	Window       port.Window
	Factory      port.SurfaceFactory
	Opener       port.ExternalOpener
	Store        *usecase.SettingsStore
	DividerWidth int
	// OnShown runs once, right after the window is first presented.
	OnShown func()
}

// CompositionController owns the two content panes and the overlay, and keeps
// their rectangles and URLs in sync with the window size and the settings.
//
// Pane surfaces are bound to logical sides: the side A surface always runs on
// partition A and shows side A's URL. Swapping only exchanges rectangles, so a
// side's session never moves to another surface.
//
// All methods must run on the UI main loop.
type CompositionController struct {
	window       port.Window
	factory      port.SurfaceFactory
	opener       port.ExternalOpener
	store        *usecase.SettingsStore
	dividerWidth int
	onShown      func()

	panes   map[entity.Side]port.Surface
	overlay port.Surface
	// navigated holds the last URL each pane was pointed at.
	navigated map[entity.Side]string

	targets      map[int]port.Surface
	nextTargetID int

	layout    entity.Layout
	hasLayout bool
	shown     bool
	started   bool

	unsubscribe func()
}

// NewCompositionController creates a controller; call Start to build surfaces.
func NewCompositionController(ctx context.Context, deps CompositionDeps) *CompositionController {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating composition controller")

	divider := deps.DividerWidth
	if divider <= 0 {
		divider = service.DefaultDividerWidth
	}

	return &CompositionController{
		window:       deps.Window,
		factory:      deps.Factory,
		opener:       deps.Opener,
		store:        deps.Store,
		dividerWidth: divider,
		onShown:      deps.OnShown,
		panes:        make(map[entity.Side]port.Surface, 2),
		navigated:    make(map[entity.Side]string, 2),
		targets:      make(map[int]port.Surface),
	}
}

// Start creates pane A, pane B and then the overlay on top, wires host
// events and applies the first layout. The window stays hidden until the
// overlay has painted.
func (c *CompositionController) Start(ctx context.Context, partitions map[entity.Side]entity.Partition) error {
	log := logging.FromContext(ctx)

	if c.started {
		return errors.New("composition already started")
	}

	for _, side := range entity.Sides() {
		partition, ok := partitions[side]
		if !ok {
			partition = entity.Partition{Side: side, Key: entity.PartitionFor(side)}
		}
		if partition.Key != entity.PartitionFor(side) {
			return fmt.Errorf("partition %q does not belong to side %s", partition.Key, side)
		}

		sideCtx := logging.WithSide(ctx, side.String())
		surface, err := c.factory.NewContentSurface(sideCtx, partition)
		if err != nil {
			return fmt.Errorf("failed to create pane surface for side %s: %w", side, err)
		}

		surface.OnExternalNavigation(func(uri string) {
			c.openExternal(sideCtx, uri)
		})
		c.panes[side] = surface
	}

	overlay, err := c.factory.NewOverlaySurface(ctx)
	if err != nil {
		return fmt.Errorf("failed to create overlay surface: %w", err)
	}
	overlay.SetTransparentBackground()
	overlay.OnFirstPaint(func() {
		c.show(ctx)
	})
	c.overlay = overlay
	c.targets[c.nextTargetID] = overlay
	c.nextTargetID++

	c.window.OnResize(func(width, height int) {
		c.Relayout(ctx)
	})

	c.unsubscribe = c.store.Subscribe(c.onSettingsChanged)
	c.started = true

	if c.store.Loaded() {
		c.syncURLs(ctx, c.store.Current())
	}
	c.Relayout(ctx)

	log.Info().Msg("composition started")
	return nil
}

// Stop detaches the controller from the store.
func (c *CompositionController) Stop() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Relayout recomputes the rectangles from the current window size and
// settings and applies them to all three surfaces.
func (c *CompositionController) Relayout(ctx context.Context) {
	if !c.started {
		return
	}

	settings := c.store.Current()
	width, height := c.window.Size()
	layout := service.ComputeLayout(service.LayoutInputFor(width, height, c.dividerWidth, settings))

	for side, surface := range c.panes {
		surface.SetBounds(layout.ForSide(side, settings.Swapped))
	}
	c.overlay.SetBounds(layout.Overlay)

	c.layout = layout
	c.hasLayout = true

	if err := c.overlay.Send(ctx, MessageOverlayLayout, NewOverlayState(layout, settings, c.store.Loaded())); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("failed to push overlay layout")
	}
}

// CurrentLayout returns the layout most recently applied.
func (c *CompositionController) CurrentLayout() (entity.Layout, bool) {
	return c.layout, c.hasLayout
}

// AddBroadcastTarget registers a UI surface, such as the settings editor, to
// receive settings broadcasts. The returned function removes it.
func (c *CompositionController) AddBroadcastTarget(surface port.Surface) (remove func()) {
	id := c.nextTargetID
	c.nextTargetID++
	c.targets[id] = surface

	return func() {
		delete(c.targets, id)
	}
}

// Broadcast pushes the current settings to every UI surface.
func (c *CompositionController) Broadcast(ctx context.Context) {
	settings := c.store.Current()
	for _, target := range c.targets {
		if err := target.Send(ctx, MessageSettingsChanged, settings); err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("failed to broadcast settings")
		}
	}
}

// Shown reports whether the window has been presented.
func (c *CompositionController) Shown() bool {
	return c.shown
}

func (c *CompositionController) onSettingsChanged(ctx context.Context, change usecase.SettingsChange) {
	if !c.started {
		return
	}

	if !change.Transient {
		c.syncURLs(ctx, change.Current)
	}
	c.Relayout(ctx)

	if !change.Transient {
		c.Broadcast(ctx)
	}
}

// syncURLs navigates each pane whose logical URL differs from what it last
// loaded. Empty URLs load the blank placeholder.
func (c *CompositionController) syncURLs(ctx context.Context, settings entity.Settings) {
	for _, side := range entity.Sides() {
		surface := c.panes[side]
		if surface == nil {
			continue
		}

		target := settings.URL(side)
		if target == "" {
			target = port.BlankURL
		}
		if last, ok := c.navigated[side]; ok && last == target {
			continue
		}

		sideCtx := logging.WithURL(logging.WithSide(ctx, side.String()), target)
		log := logging.FromContext(sideCtx)
		c.navigated[side] = target
		if err := surface.Navigate(sideCtx, target); err != nil {
			log.Warn().Err(err).Msg("pane navigation failed")
			continue
		}
		log.Debug().Msg("pane navigated")
	}
}

func (c *CompositionController) show(ctx context.Context) {
	if c.shown {
		return
	}
	c.shown = true

	// Pushes made before the overlay page loaded were dropped; resend the
	// layout now that its bridge is listening.
	c.Relayout(ctx)
	c.window.Show()
	logging.FromContext(ctx).Debug().Msg("window shown after overlay first paint")

	if c.onShown != nil {
		c.onShown()
	}
}

func (c *CompositionController) openExternal(ctx context.Context, uri string) {
	log := logging.FromContext(ctx)
	if c.opener == nil {
		log.Warn().Str("uri", uri).Msg("no external opener, dropping new-window navigation")
		return
	}
	if err := c.opener.Open(ctx, uri); err != nil {
		log.Warn().Err(err).Str("uri", uri).Msg("failed to open link externally")
	}
}
