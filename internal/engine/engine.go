// Package engine implements the 2048 board: an NxN grid of tiles that slide
// and merge in one of four directions, with a new tile spawned after every
// move that changes the board. It has no dependencies on rendering or input;
// frontends observe it through listeners.
package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	// DefaultSize is the classic 4x4 board.
	DefaultSize = 4
	// MaxSize is the largest board the engine accepts.
	MaxSize = 16
)

// ErrInvalidConfiguration is returned when an engine cannot be built from
// the given parameters.
var ErrInvalidConfiguration = errors.New("engine: invalid configuration")

// Listener is called with a fresh snapshot after every board change.
type Listener func(Board)

// Engine owns the board and applies moves to it.
// It is not safe for concurrent use; callers serialize access.
type Engine struct {
	size      int
	grid      [][]int
	rng       Rand
	listeners []Listener
	revision  uint64
	lastSpawn Cell
	spawned   bool
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithRand sets the random source used for tile placement.
func WithRand(rng Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithSeed uses a math/rand source seeded with seed.
// A zero seed is replaced by the current time.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithListener registers l before the initial tile is spawned, so it also
// sees the construction notification.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		if l != nil {
			e.listeners = append(e.listeners, l)
		}
	}
}

// ValidateSize reports whether size is an acceptable board dimension.
func ValidateSize(size int) error {
	if size <= 0 || size > MaxSize {
		return fmt.Errorf("%w: board size %d out of range 1..%d", ErrInvalidConfiguration, size, MaxSize)
	}
	return nil
}

// New creates a size x size board, spawns the first tile and notifies
// listeners registered through WithListener.
func New(size int, opts ...Option) (*Engine, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}

	e := &Engine{
		size: size,
		grid: newGrid(size),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		WithSeed(0)(e)
	}

	e.spawn()
	e.notify()
	return e, nil
}

// Size returns the board dimension.
func (e *Engine) Size() int {
	return e.size
}

// Board returns a snapshot of the current grid. Mutating it does not affect
// the engine.
func (e *Engine) Board() Board {
	return Board(e.grid).Clone()
}

// Revision counts the notifications sent so far, including the one sent at
// construction.
func (e *Engine) Revision() uint64 {
	return e.revision
}

// LastSpawn returns the cell that received the most recent tile.
func (e *Engine) LastSpawn() (Cell, bool) {
	return e.lastSpawn, e.spawned
}

// Subscribe registers l. Listeners run synchronously in registration order.
func (e *Engine) Subscribe(l Listener) {
	if l == nil {
		return
	}
	e.listeners = append(e.listeners, l)
}

// Move slides every line toward dir. When anything moved or merged a new
// tile is spawned and listeners are notified; otherwise the board is left
// exactly as it was and Move returns false.
func (e *Engine) Move(dir Direction) bool {
	if !e.shift(dir) {
		return false
	}
	e.spawn()
	e.notify()
	return true
}

// MoveUp slides tiles toward row 0.
func (e *Engine) MoveUp() bool { return e.Move(DirUp) }

// MoveDown slides tiles toward the last row.
func (e *Engine) MoveDown() bool { return e.Move(DirDown) }

// MoveLeft slides tiles toward column 0.
func (e *Engine) MoveLeft() bool { return e.Move(DirLeft) }

// MoveRight slides tiles toward the last column.
func (e *Engine) MoveRight() bool { return e.Move(DirRight) }

// shift compacts every row or column in the direction of travel without
// spawning. It reports whether any line changed.
func (e *Engine) shift(dir Direction) bool {
	if !dir.Valid() {
		return false
	}

	n := e.size
	buf := make([]int, n)
	changed := false

	for line := range n {
		for k := range n {
			row, col := dir.cell(line, k, n)
			buf[k] = e.grid[row][col]
		}

		if CompactLine(buf) {
			changed = true
		}

		for k := range n {
			row, col := dir.cell(line, k, n)
			e.grid[row][col] = buf[k]
		}
	}

	return changed
}

// spawn adds one tile. A move that changed the board always leaves at least
// one empty cell, so the full-board case only guards against misuse.
func (e *Engine) spawn() {
	cell, ok := spawnTile(e.grid, e.rng)
	if !ok {
		return
	}
	e.lastSpawn = cell
	e.spawned = true
}

func (e *Engine) notify() {
	e.revision++
	for _, l := range e.listeners {
		l(e.Board())
	}
}
