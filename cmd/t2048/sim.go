package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

var simCmd = &cobra.Command{
	Use:   "sim <moves>",
	Short: "Apply moves to a fresh board and print every change",
	Long: `Build a board, apply the given moves without a terminal UI and print
each board the engine publishes.

Moves are direction names or their first letters, separated by spaces or
commas. A run of letters such as "uldr" is read one move per letter.

Examples:
  t2048 --seed 42 sim uuldr
  t2048 --size 3 --seed 1 sim "up, left, down"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSim,
}

func runSim(cmd *cobra.Command, args []string) error {
	moves, err := parseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	seed := appConfig.Board.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("simulating", "size", appConfig.Board.Size, "seed", seed, "moves", len(moves))

	return simulate(cmd.OutOrStdout(), appConfig.Board.Size, seed, moves)
}

// parseMoves splits s into directions.
func parseMoves(s string) ([]engine.Direction, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no moves given")
	}

	var moves []engine.Direction
	for _, tok := range tokens {
		if d, err := engine.ParseDirection(tok); err == nil {
			moves = append(moves, d)
			continue
		}
		for _, r := range tok {
			d, err := engine.ParseDirection(string(r))
			if err != nil {
				return nil, fmt.Errorf("move %q: %w", tok, err)
			}
			moves = append(moves, d)
		}
	}
	return moves, nil
}

// simulate plays moves on a size x size board seeded with seed and writes
// every published board to w.
func simulate(w io.Writer, size int, seed int64, moves []engine.Direction) error {
	fmt.Fprintf(w, "size %d, seed %d\n", size, seed)

	eng, err := engine.New(size,
		engine.WithSeed(seed),
		engine.WithListener(func(b engine.Board) {
			fmt.Fprintln(w, b)
		}),
	)
	if err != nil {
		return err
	}

	for i, d := range moves {
		fmt.Fprintf(w, "\n%d: %s\n", i+1, d)
		if !eng.Move(d) {
			fmt.Fprintln(w, "no change")
		}
	}

	b := eng.Board()
	fmt.Fprintf(w, "\nrevisions %d, max tile %d, sum %d\n", eng.Revision(), b.MaxTile(), b.Sum())
	return nil
}
