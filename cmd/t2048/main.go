// t2048 plays the sliding-tile puzzle 2048 in the terminal.
//
// Usage:
//
//	t2048 list              - List board variants
//	t2048 play [variant]    - Play a variant (default: 2048)
//	t2048 menu              - Pick variants interactively
//	t2048 serve             - Start SSH server for remote play
//	t2048 sim <moves>       - Apply moves headlessly and print every board
//	t2048 config            - Print the effective (or default) config
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.t2048, ./configs, built-in)
//	--size <n>          - Board size for the default variant
//	--seed <value>      - RNG seed for reproducible boards
//	--fps <rate>        - Tick rate
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagConfig   string
	flagSize     int
	flagSeed     int64
	flagFPS      int
	flagLogLevel string

	// Set by the root PersistentPreRunE
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the sliding-tile puzzle 2048 for the terminal.

Slide the board up, down, left or right: equal tiles that meet merge into
their sum, and every move that changes the board adds a new 2.

Examples:
  t2048 play
  t2048 play 2048_5x5
  t2048 --size 6 play
  t2048 menu
  t2048 serve
  t2048 --seed 42 sim uuldr`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size (overrides board.size)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (overrides platform.tick_rate)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides log.level)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Board.Size = flagSize
	}
	if flags.Changed("seed") {
		cfg.Board.Seed = flagSeed
	}
	if flags.Changed("fps") {
		cfg.Platform.TickRate = flagFPS
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "t2048",
		Level:           cfg.LogLevel(),
	})
	logger.Debug("configuration loaded", "size", cfg.Board.Size, "tick_rate", cfg.Platform.TickRate)
	return nil
}

// runtimeConfig builds the game runtime settings for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = appConfig.Platform.TickRate
	cfg.Seed = appConfig.Board.Seed
	cfg.BoardSize = appConfig.Board.Size
	return cfg
}

// quietLogger keeps interactive sessions free of info chatter on the alt screen.
func quietLogger() *log.Logger {
	l := logger.With()
	if l.GetLevel() < log.WarnLevel {
		l.SetLevel(log.WarnLevel)
	}
	return l
}
