package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Esc or B in a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  ?            - Toggle full help
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()
	l := quietLogger()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit || result.GameID == "" {
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			l.Error("cannot create game", "game", result.GameID, "error", err)
			continue
		}

		if appConfig.Board.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, cfg, l, true)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
