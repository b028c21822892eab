package entity

import "math"

// Split ratio bounds, in percent of the window width given to side A.
const (
	MinSplitRatio     = 10.0
	MaxSplitRatio     = 90.0
	DefaultSplitRatio = 50.0
)

// DefaultDividerColor is the divider color used when none is configured.
const DefaultDividerColor = "#3c3c3c"

// Settings is the user-facing record persisted between runs.
type Settings struct {
	SideAURL     string  `json:"side_a_url" mapstructure:"side_a_url" jsonschema:"description=URL shown by logical side A (empty leaves the side unset)"`
	SideBURL     string  `json:"side_b_url" mapstructure:"side_b_url" jsonschema:"description=URL shown by logical side B (empty leaves the side unset)"`
	SplitRatio   float64 `json:"split_ratio" mapstructure:"split_ratio" jsonschema:"minimum=10,maximum=90,default=50,description=Percent of the window width given to side A"`
	DividerColor string  `json:"divider_color" mapstructure:"divider_color" jsonschema:"default=#3c3c3c,description=CSS color of the divider"`
	Swapped      bool    `json:"swapped" mapstructure:"swapped" jsonschema:"default=false,description=Show side B on the left"`
}

// DefaultSettings returns the settings used when nothing is persisted.
func DefaultSettings() Settings {
	return Settings{
		SplitRatio:   DefaultSplitRatio,
		DividerColor: DefaultDividerColor,
	}
}

// ClampRatio bounds a split ratio to [MinSplitRatio, MaxSplitRatio].
// NaN falls back to the default ratio.
func ClampRatio(ratio float64) float64 {
	if math.IsNaN(ratio) {
		return DefaultSplitRatio
	}
	return math.Min(math.Max(ratio, MinSplitRatio), MaxSplitRatio)
}

// Normalized returns a copy with the split ratio clamped and an empty
// divider color replaced by the default.
func (s Settings) Normalized() Settings {
	s.SplitRatio = ClampRatio(s.SplitRatio)
	if s.DividerColor == "" {
		s.DividerColor = DefaultDividerColor
	}
	return s
}

// URL returns the URL configured for a logical side.
func (s Settings) URL(side Side) string {
	if side == SideB {
		return s.SideBURL
	}
	return s.SideAURL
}

// WithURL returns a copy with the logical side's URL replaced.
func (s Settings) WithURL(side Side, url string) Settings {
	if side == SideB {
		s.SideBURL = url
	} else {
		s.SideAURL = url
	}
	return s
}

// URLAt returns the URL displayed at a visual position.
func (s Settings) URLAt(p Position) string {
	return s.URL(SideAt(p, s.Swapped))
}

// EffectiveLeftRatio is the share of the window given to the visual left pane.
func (s Settings) EffectiveLeftRatio() float64 {
	ratio := ClampRatio(s.SplitRatio)
	if s.Swapped {
		return 100 - ratio
	}
	return ratio
}

// URLsDiffer reports whether any logical URL differs between two records.
func (s Settings) URLsDiffer(other Settings) bool {
	return s.SideAURL != other.SideAURL || s.SideBURL != other.SideBURL
}
