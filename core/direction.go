package core

import (
	"fmt"
	"strings"
)

// Direction selects the unit step of a straight line
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Step returns the unit vector for the direction
func (d Direction) Step() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection maps a case-insensitive name to a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return DirLeft, nil
	case "right", "r", "":
		return DirRight, nil
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	}
	return DirRight, fmt.Errorf("unknown direction %q", s)
}

// TextAlignment determines the horizontal anchor of a text run
type TextAlignment uint8

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

// Offset returns how far the anchor shifts left for a run of n characters
func (a TextAlignment) Offset(n int) int {
	switch a {
	case AlignCenter:
		return n / 2
	case AlignRight:
		return n
	}
	return 0
}

func (a TextAlignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return fmt.Sprintf("TextAlignment(%d)", uint8(a))
}

// ParseAlignment maps a case-insensitive name to a TextAlignment, empty is left
func ParseAlignment(s string) (TextAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return AlignLeft, nil
	case "center", "centre", "middle":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}
