package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

const defaultVariant = "2048"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start playing the given variant (default: 2048).

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  P                 - Pause
  R                 - Restart with a new board
  Ctrl+S            - Save a text screenshot to ~/.t2048/screenshots
  Q/Ctrl+C          - Quit

Examples:
  t2048 play
  t2048 play 2048_3x3
  t2048 --size 8 play
  t2048 --seed 7 play 2048_5x5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultVariant
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return unknownVariant(gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	_, err = tui.Run(game, runtimeConfig(), quietLogger(), false)
	return err
}

// unknownVariant builds the error for an unregistered ID, with suggestions.
func unknownVariant(id string) error {
	msg := fmt.Sprintf("unknown variant %q", id)
	if s := registry.Suggest(id); len(s) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(s, ", "))
	}
	return fmt.Errorf("%s; run 't2048 list' to see available variants", msg)
}
