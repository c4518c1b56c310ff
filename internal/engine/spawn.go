package engine

// TileValue is the value of every spawned tile.
const TileValue = 2

// Rand is the random source used to place new tiles.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// spawnTile places a new tile in an empty cell of grid chosen uniformly at
// random. It returns false and leaves grid untouched when no cell is empty.
func spawnTile(grid [][]int, rng Rand) (Cell, bool) {
	empty := Board(grid).EmptyCells()
	if len(empty) == 0 {
		return Cell{}, false
	}

	cell := empty[rng.Intn(len(empty))]
	grid[cell.Row][cell.Col] = TileValue
	return cell, true
}
