package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampRatio(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"below_min", 5, 10},
		{"min", 10, 10},
		{"middle", 50, 50},
		{"fractional", 33.3, 33.3},
		{"max", 90, 90},
		{"above_max", 95, 90},
		{"negative", -20, 10},
		{"nan", math.NaN(), DefaultSplitRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampRatio(tt.input))
		})
	}
}

func TestSettings_URLAtFollowsSwap(t *testing.T) {
	s := Settings{SideAURL: "https://a.example", SideBURL: "https://b.example"}

	assert.Equal(t, "https://a.example", s.URLAt(PositionLeft))
	assert.Equal(t, "https://b.example", s.URLAt(PositionRight))

	s.Swapped = true
	assert.Equal(t, "https://b.example", s.URLAt(PositionLeft))
	assert.Equal(t, "https://a.example", s.URLAt(PositionRight))
}

func TestSettings_EffectiveLeftRatio(t *testing.T) {
	s := Settings{SplitRatio: 30}
	assert.Equal(t, 30.0, s.EffectiveLeftRatio())

	s.Swapped = true
	assert.Equal(t, 70.0, s.EffectiveLeftRatio())

	s.SplitRatio = 2
	assert.Equal(t, 90.0, s.EffectiveLeftRatio(), "ratio is clamped before mirroring")
}

func TestSettings_Normalized(t *testing.T) {
	s := Settings{SplitRatio: 99}.Normalized()

	assert.Equal(t, MaxSplitRatio, s.SplitRatio)
	assert.Equal(t, DefaultDividerColor, s.DividerColor)
}

func TestSettings_WithURL(t *testing.T) {
	s := DefaultSettings().WithURL(SideB, "https://b.example")

	assert.Empty(t, s.SideAURL)
	assert.Equal(t, "https://b.example", s.URL(SideB))
	assert.True(t, s.URLsDiffer(DefaultSettings()))
}
