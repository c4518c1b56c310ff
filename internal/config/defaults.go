package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size: engine.DefaultSize,
			Seed: 0,
		},
		Platform: PlatformConfig{
			TickRate: 60,
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
