// Package t2048 adapts the board engine to the platform's Game interface:
// it maps input to moves, mirrors the board through an engine listener and
// draws it on a core.Screen.
package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// highlightTicks is how long a freshly spawned tile stays highlighted (~200ms at 60fps).
const highlightTicks = 12

// Variant describes a registered board configuration.
type Variant struct {
	ID    string
	Title string
	Size  int // 0 = take the size from RuntimeConfig
}

// Variants lists every registered board configuration.
var Variants = []Variant{
	{ID: "2048", Title: "2048", Size: 0},
	{ID: "2048_3x3", Title: "2048 (3x3)", Size: 3},
	{ID: "2048_5x5", Title: "2048 (5x5)", Size: 5},
	{ID: "2048_6x6", Title: "2048 (6x6)", Size: 6},
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game implements the 2048 puzzle on top of engine.Engine.
type Game struct {
	variant Variant
	cfg     core.RuntimeConfig
	eng     *engine.Engine
	err     error // Set when the engine could not be built

	tick    uint64
	board   engine.Board // Latest snapshot delivered by the engine
	changes int          // Notifications received, construction included

	fresh      engine.Cell // Most recently spawned tile
	freshTicks int         // Remaining highlight ticks for fresh

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game for the given variant. Reset must be called before use.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// boardSize resolves the board dimension for this variant.
func (g *Game) boardSize(cfg core.RuntimeConfig) int {
	switch {
	case g.variant.Size > 0:
		return g.variant.Size
	case cfg.BoardSize != 0:
		return cfg.BoardSize
	default:
		return engine.DefaultSize
	}
}

// Reset builds a fresh engine and starts observing it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.tick = 0
	g.changes = 0
	g.board = nil
	g.freshTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false

	eng, err := engine.New(g.boardSize(cfg),
		engine.WithSeed(cfg.Seed),
		engine.WithListener(g.onBoardChange),
	)
	if err != nil {
		g.eng = nil
		g.err = fmt.Errorf("t2048: cannot start %s: %w", g.variant.ID, err)
		return
	}

	g.eng = eng
	g.err = nil
	g.highlightSpawn()
	g.checkScreenSize()
}

// onBoardChange is the engine listener; it keeps the snapshot used for rendering.
func (g *Game) onBoardChange(b engine.Board) {
	g.board = b
	g.changes++
}

// highlightSpawn marks the newest tile for a short highlight.
func (g *Game) highlightSpawn() {
	if cell, ok := g.eng.LastSpawn(); ok {
		g.fresh = cell
		g.freshTicks = highlightTicks
	}
}

// Err returns the error that prevented the last Reset from building a board.
func (g *Game) Err() error {
	return g.err
}

// Step advances the game by one tick, applying at most one move.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.freshTicks > 0 {
		g.freshTicks--
	}

	if g.eng == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	changed := g.eng.Move(dir)
	if changed {
		g.highlightSpawn()
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// directionFor picks the move requested by the frame, if any.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp, true
	case in.Has(core.ActionDown):
		return engine.DirDown, true
	case in.Has(core.ActionLeft):
		return engine.DirLeft, true
	case in.Has(core.ActionRight):
		return engine.DirRight, true
	default:
		return 0, false
	}
}

// Moves returns the number of moves that changed the board.
func (g *Game) Moves() int {
	return max(g.changes-1, 0)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:   g.Moves(),
		MaxTile: g.board.MaxTile(),
		Paused:  g.paused || g.tooSmall,
	}
}
