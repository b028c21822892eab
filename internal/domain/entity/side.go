// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSide is returned when a string does not name a logical side.
var ErrUnknownSide = errors.New("unknown side")

// Side identifies a logical pane as stored in settings, independent of
// where it is currently displayed.
type Side int

const (
	SideA Side = iota
	SideB
)

// Sides lists every logical side in stable order.
func Sides() []Side {
	return []Side{SideA, SideB}
}

// String returns the lowercase side name used in keys and logs.
func (s Side) String() string {
	switch s {
	case SideA:
		return "a"
	case SideB:
		return "b"
	default:
		return "unknown"
	}
}

// Other returns the opposite logical side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// ParseSide parses "a"/"b" (case-insensitive, "left"/"right" accepted as
// aliases of the unswapped layout).
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "left":
		return SideA, nil
	case "b", "right":
		return SideB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSide, s)
	}
}

// Position is a visual screen position.
type Position int

const (
	PositionLeft Position = iota
	PositionRight
)

// String returns "left" or "right".
func (p Position) String() string {
	if p == PositionLeft {
		return "left"
	}
	return "right"
}

// SideAt returns the logical side displayed at the given visual position.
func SideAt(p Position, swapped bool) Side {
	left := SideA
	if swapped {
		left = SideB
	}
	if p == PositionLeft {
		return left
	}
	return left.Other()
}

// PositionOf returns the visual position where a logical side is displayed.
func PositionOf(s Side, swapped bool) Position {
	if SideAt(PositionLeft, swapped) == s {
		return PositionLeft
	}
	return PositionRight
}
