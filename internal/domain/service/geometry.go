// Package service contains pure domain services.
package service

import (
	"math"

	"github.com/bnema/duopane/internal/domain/entity"
)

// DefaultDividerWidth is the divider strip width in pixels.
const DefaultDividerWidth = 6

// LayoutInput carries everything the geometry engine depends on.
type LayoutInput struct {
	WindowWidth  int
	WindowHeight int
	// LeftRatio is the visual left share in percent; it is clamped to [10,90].
	LeftRatio     float64
	LeftURLEmpty  bool
	RightURLEmpty bool
	DividerWidth  int
}

// LayoutInputFor builds the engine input for a window size and settings.
func LayoutInputFor(width, height, dividerWidth int, s entity.Settings) LayoutInput {
	return LayoutInput{
		WindowWidth:   width,
		WindowHeight:  height,
		LeftRatio:     s.EffectiveLeftRatio(),
		LeftURLEmpty:  s.URLAt(entity.PositionLeft) == "",
		RightURLEmpty: s.URLAt(entity.PositionRight) == "",
		DividerWidth:  dividerWidth,
	}
}

// ComputeLayout returns the visual left pane, right pane and overlay
// rectangles. Panes are full height; the rounding remainder goes to the
// right pane so left+divider+right equals the window width whenever the
// window is at least as wide as the divider.
//
// The overlay covers the divider strip, widened over a side whose URL is
// empty so its configure affordance stays interactive. It never covers a
// pane that has a URL.
func ComputeLayout(in LayoutInput) entity.Layout {
	width := max(in.WindowWidth, 0)
	height := max(in.WindowHeight, 0)
	divider := min(max(in.DividerWidth, 0), width)
	ratio := entity.ClampRatio(in.LeftRatio)

	leftWidth := int(math.Floor(float64(width)*ratio/100)) - divider/2
	leftWidth = min(max(leftWidth, 0), width-divider)
	rightWidth := width - leftWidth - divider

	layout := entity.Layout{
		Window: entity.Rect{W: width, H: height},
		Left:   entity.Rect{X: 0, Y: 0, W: leftWidth, H: height},
		Right:  entity.Rect{X: leftWidth + divider, Y: 0, W: rightWidth, H: height},
	}

	overlay := entity.Rect{X: leftWidth, Y: 0, W: divider, H: height}
	if in.LeftURLEmpty {
		overlay.X = 0
		overlay.W = leftWidth + divider
	}
	if in.RightURLEmpty {
		overlay.W = width - overlay.X
	}
	layout.Overlay = overlay

	return layout
}
