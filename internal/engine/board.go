package engine

import (
	"strconv"
	"strings"
)

// Cell addresses a single board position.
type Cell struct {
	Row int
	Col int
}

// Board is a read-only snapshot of the engine grid, indexed [row][col].
// A value of 0 is an empty cell; any other value is a tile.
type Board [][]int

// newGrid allocates an n x n grid with every cell empty.
func newGrid(n int) [][]int {
	grid := make([][]int, n)
	for row := range grid {
		grid[row] = make([]int, n)
	}
	return grid
}

// Size returns the board dimension.
func (b Board) Size() int {
	return len(b)
}

// At returns the tile at (row, col), or 0 for out-of-range coordinates.
func (b Board) At(row, col int) int {
	if row < 0 || row >= len(b) || col < 0 || col >= len(b[row]) {
		return 0
	}
	return b[row][col]
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for row := range b {
		out[row] = append([]int(nil), b[row]...)
	}
	return out
}

// Equal reports whether both boards hold the same tiles.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for row := range b {
		if len(b[row]) != len(other[row]) {
			return false
		}
		for col := range b[row] {
			if b[row][col] != other[row][col] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns the empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for row := range b {
		for col, v := range b[row] {
			if v == 0 {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// MaxTile returns the largest tile on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for row := range b {
		for _, v := range b[row] {
			maxVal = max(maxVal, v)
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for row := range b {
		for _, v := range b[row] {
			total += v
		}
	}
	return total
}

// String renders the board as right-aligned columns, one row per line.
// Empty cells are shown as dots.
func (b Board) String() string {
	width := len(strconv.Itoa(b.MaxTile()))

	var sb strings.Builder
	for row := range b {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col, v := range b[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			s := "."
			if v != 0 {
				s = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(s)))
			sb.WriteString(s)
		}
	}
	return sb.String()
}
