package entity

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y int // Top-left position relative to the window content area
	W, H int // Width and height
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// OverlapsX reports whether the horizontal spans of r and o intersect.
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right()
}

// Layout holds the rectangles of one composition pass, by visual position.
type Layout struct {
	Window  Rect
	Left    Rect
	Right   Rect
	Overlay Rect
}

// At returns the pane rectangle at a visual position.
func (l Layout) At(p Position) Rect {
	if p == PositionLeft {
		return l.Left
	}
	return l.Right
}

// ForSide returns the pane rectangle of a logical side under the swap flag.
func (l Layout) ForSide(s Side, swapped bool) Rect {
	return l.At(PositionOf(s, swapped))
}

// DividerX returns the divider's x offset inside the overlay rectangle.
func (l Layout) DividerX() int {
	return l.Left.W - l.Overlay.X
}
