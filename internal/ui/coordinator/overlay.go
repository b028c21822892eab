package coordinator

import (
	"github.com/bnema/duopane/internal/domain/entity"
)

// OverlayState tells the overlay page where to draw its controls. All
// coordinates are relative to the overlay surface.
type OverlayState struct {
	// OverlayX and WindowWidth let the page map pointer positions back to
	// window coordinates.
	OverlayX     int               `json:"overlayX"`
	WindowWidth  int               `json:"windowWidth"`
	Width        int               `json:"width"`
	Height       int               `json:"height"`
	DividerX     int               `json:"dividerX"`
	DividerWidth int               `json:"dividerWidth"`
	DividerColor string            `json:"dividerColor"`
	Ready        bool              `json:"ready"`
	Configure    []ConfigureButton `json:"configure"`
}

// ConfigureButton is a first-run affordance covering an unset pane.
type ConfigureButton struct {
	Side     string `json:"side"`
	Position string `json:"position"`
	X        int    `json:"x"`
	Width    int    `json:"width"`
	Label    string `json:"label"`
}

// NewOverlayState derives the overlay controls from a layout. Configure
// buttons are only offered once settings are loaded, so a slow load does
// not flash them over panes that are about to get a URL.
func NewOverlayState(layout entity.Layout, s entity.Settings, loaded bool) OverlayState {
	state := OverlayState{
		OverlayX:     layout.Overlay.X,
		WindowWidth:  layout.Window.W,
		Width:        layout.Overlay.W,
		Height:       layout.Overlay.H,
		DividerX:     layout.DividerX(),
		DividerWidth: layout.Right.X - layout.Left.W,
		DividerColor: s.DividerColor,
		Ready:        loaded,
		Configure:    []ConfigureButton{},
	}
	if !loaded {
		return state
	}

	for _, pos := range []entity.Position{entity.PositionLeft, entity.PositionRight} {
		if s.URLAt(pos) != "" {
			continue
		}
		pane := layout.At(pos)
		state.Configure = append(state.Configure, ConfigureButton{
			Side:     entity.SideAt(pos, s.Swapped).String(),
			Position: pos.String(),
			X:        pane.X - layout.Overlay.X,
			Width:    pane.W,
			Label:    "Set " + pos.String() + " URL",
		})
	}
	return state
}
