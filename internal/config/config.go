// Package config provides YAML-based configuration loading for the board,
// the terminal platform and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete application configuration.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Platform PlatformConfig `yaml:"platform"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// BoardConfig defines the engine parameters.
type BoardConfig struct {
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"` // 0 = seed from the clock
}

// PlatformConfig defines the terminal loop parameters.
type PlatformConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// ServerConfig defines the SSH server parameters.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty = ~/.t2048/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks every setting and returns the first problem found.
func (c Config) Validate() error {
	if err := engine.ValidateSize(c.Board.Size); err != nil {
		return fmt.Errorf("%w: board.size: %w", ErrInvalid, err)
	}
	if c.Platform.TickRate <= 0 {
		return fmt.Errorf("%w: platform.tick_rate must be positive, got %d", ErrInvalid, c.Platform.TickRate)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout must not be negative, got %s", ErrInvalid, c.Server.IdleTimeout)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q: %w", ErrInvalid, c.Log.Level, err)
	}
	return nil
}

// LogLevel returns the configured log level, falling back to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
