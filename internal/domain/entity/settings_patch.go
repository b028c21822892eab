package entity

// SettingsPatch is a partial settings record. Nil fields are left untouched
// when the patch is applied.
type SettingsPatch struct {
	SideAURL     *string  `json:"side_a_url,omitempty"`
	SideBURL     *string  `json:"side_b_url,omitempty"`
	SplitRatio   *float64 `json:"split_ratio,omitempty"`
	DividerColor *string  `json:"divider_color,omitempty"`
	Swapped      *bool    `json:"swapped,omitempty"`
}

// Apply returns s with every set field of p written over it.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.SideAURL != nil {
		s.SideAURL = *p.SideAURL
	}
	if p.SideBURL != nil {
		s.SideBURL = *p.SideBURL
	}
	if p.SplitRatio != nil {
		s.SplitRatio = *p.SplitRatio
	}
	if p.DividerColor != nil {
		s.DividerColor = *p.DividerColor
	}
	if p.Swapped != nil {
		s.Swapped = *p.Swapped
	}
	return s
}

// Empty reports whether the patch sets no field.
func (p SettingsPatch) Empty() bool {
	return p == SettingsPatch{}
}

// DiffSettings returns the patch turning base into next: only the fields
// that differ are set.
func DiffSettings(base, next Settings) SettingsPatch {
	var p SettingsPatch
	if next.SideAURL != base.SideAURL {
		p.SideAURL = &next.SideAURL
	}
	if next.SideBURL != base.SideBURL {
		p.SideBURL = &next.SideBURL
	}
	if next.SplitRatio != base.SplitRatio {
		p.SplitRatio = &next.SplitRatio
	}
	if next.DividerColor != base.DividerColor {
		p.DividerColor = &next.DividerColor
	}
	if next.Swapped != base.Swapped {
		p.Swapped = &next.Swapped
	}
	return p
}
