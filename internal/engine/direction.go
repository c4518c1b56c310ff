package engine

import (
	"fmt"
	"strings"
)

// Direction is the way tiles travel during a move.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection accepts a direction name or its first letter, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return DirUp, nil
	case "d", "down":
		return DirDown, nil
	case "l", "left":
		return DirLeft, nil
	case "r", "right":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("engine: unknown direction %q", s)
	}
}

// cell maps slot k of the given line onto board coordinates for an n x n board.
// Slot 0 is always the edge the tiles travel toward.
func (d Direction) cell(line, k, n int) (row, col int) {
	switch d {
	case DirUp:
		return k, line
	case DirDown:
		return n - 1 - k, line
	case DirRight:
		return line, n - 1 - k
	default: // DirLeft
		return line, k
	}
}
