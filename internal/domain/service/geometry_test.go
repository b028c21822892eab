package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/domain/service"
)

func TestComputeLayout_BothURLsSet(t *testing.T) {
	// Arrange
	in := service.LayoutInput{
		WindowWidth:  1000,
		WindowHeight: 800,
		LeftRatio:    50,
		DividerWidth: 6,
	}

	// Act
	layout := service.ComputeLayout(in)

	// Assert
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 497, H: 800}, layout.Left)
	assert.Equal(t, entity.Rect{X: 503, Y: 0, W: 497, H: 800}, layout.Right)
	assert.Equal(t, entity.Rect{X: 497, Y: 0, W: 6, H: 800}, layout.Overlay)
	assert.Equal(t, 0, layout.DividerX())
}

func TestComputeLayout_LeftURLEmpty(t *testing.T) {
	in := service.LayoutInput{
		WindowWidth:  1000,
		WindowHeight: 800,
		LeftRatio:    50,
		LeftURLEmpty: true,
		DividerWidth: 6,
	}

	layout := service.ComputeLayout(in)

	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 497, H: 800}, layout.Left, "left pane is computed identically")
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 503, H: 800}, layout.Overlay)
	assert.Equal(t, 497, layout.DividerX())
}

func TestComputeLayout_RightURLEmpty(t *testing.T) {
	in := service.LayoutInput{
		WindowWidth:   1000,
		WindowHeight:  800,
		LeftRatio:     30,
		RightURLEmpty: true,
		DividerWidth:  6,
	}

	layout := service.ComputeLayout(in)

	assert.Equal(t, 297, layout.Left.W)
	assert.Equal(t, entity.Rect{X: 297, Y: 0, W: 703, H: 800}, layout.Overlay)
}

func TestComputeLayout_BothURLsEmptyCoversWindow(t *testing.T) {
	in := service.LayoutInput{
		WindowWidth:   1000,
		WindowHeight:  800,
		LeftRatio:     70,
		LeftURLEmpty:  true,
		RightURLEmpty: true,
		DividerWidth:  6,
	}

	layout := service.ComputeLayout(in)

	assert.Equal(t, layout.Window, layout.Overlay)
}

func TestComputeLayout_RatioIsClamped(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		expected float64
	}{
		{"below_min", 5, 10},
		{"above_max", 95, 90},
		{"in_range", 42.5, 42.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.ComputeLayout(service.LayoutInput{WindowWidth: 1000, WindowHeight: 10, LeftRatio: tt.ratio, DividerWidth: 6})
			want := service.ComputeLayout(service.LayoutInput{WindowWidth: 1000, WindowHeight: 10, LeftRatio: tt.expected, DividerWidth: 6})

			assert.Equal(t, want, got)
		})
	}
}

func TestComputeLayout_WidthsAlwaysSumToWindow(t *testing.T) {
	const divider = 6

	for width := 2 * divider; width <= 2000; width += 7 {
		for ratio := 10.0; ratio <= 90.0; ratio += 0.75 {
			layout := service.ComputeLayout(service.LayoutInput{
				WindowWidth:  width,
				WindowHeight: 600,
				LeftRatio:    ratio,
				DividerWidth: divider,
			})

			require.Equal(t, width, layout.Left.W+divider+layout.Right.W, "width=%d ratio=%v", width, ratio)
			require.GreaterOrEqual(t, layout.Left.W, 0)
			require.GreaterOrEqual(t, layout.Right.W, 0)
			require.Equal(t, layout.Left.Right()+divider, layout.Right.X)
		}
	}
}

func TestComputeLayout_OverlayNeverCoversConfiguredPane(t *testing.T) {
	const divider = 6

	for _, leftEmpty := range []bool{false, true} {
		for _, rightEmpty := range []bool{false, true} {
			for width := 0; width <= 1500; width += 13 {
				for ratio := 10.0; ratio <= 90.0; ratio += 5 {
					layout := service.ComputeLayout(service.LayoutInput{
						WindowWidth:   width,
						WindowHeight:  400,
						LeftRatio:     ratio,
						LeftURLEmpty:  leftEmpty,
						RightURLEmpty: rightEmpty,
						DividerWidth:  divider,
					})

					require.GreaterOrEqual(t, layout.Overlay.X, 0)
					require.LessOrEqual(t, layout.Overlay.Right(), width)
					if !leftEmpty {
						require.False(t, layout.Overlay.OverlapsX(layout.Left), "overlay covers configured left pane: %+v", layout)
					}
					if !rightEmpty {
						require.False(t, layout.Overlay.OverlapsX(layout.Right), "overlay covers configured right pane: %+v", layout)
					}
				}
			}
		}
	}
}

func TestComputeLayout_NarrowWindowHasNoNegativeWidths(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"zero", 0},
		{"narrower_than_divider", 4},
		{"exactly_divider", 6},
		{"negative", -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := service.ComputeLayout(service.LayoutInput{
				WindowWidth:   tt.width,
				WindowHeight:  100,
				LeftRatio:     10,
				LeftURLEmpty:  true,
				RightURLEmpty: true,
				DividerWidth:  6,
			})

			assert.GreaterOrEqual(t, layout.Left.W, 0)
			assert.GreaterOrEqual(t, layout.Right.W, 0)
			assert.GreaterOrEqual(t, layout.Overlay.W, 0)
		})
	}
}

func TestLayoutInputFor_UsesVisualSides(t *testing.T) {
	s := entity.Settings{SideAURL: "https://a.example", SplitRatio: 30, Swapped: true}

	in := service.LayoutInputFor(1000, 800, 6, s)

	assert.Equal(t, 70.0, in.LeftRatio)
	assert.True(t, in.LeftURLEmpty, "side B is on the left and has no URL")
	assert.False(t, in.RightURLEmpty)
}
