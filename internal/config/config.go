// Package config provides YAML-based configuration loading for blockfall.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Config is the complete file configuration.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Timing   TimingConfig   `yaml:"timing"`
	Window   DisplayConfig  `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	Keys     KeyConfig      `yaml:"keys"`
	Sound    SoundConfig    `yaml:"sound"`
}

// BoardConfig defines the grid dimensions in cells.
type BoardConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// TimingConfig holds the two speed constants.
type TimingConfig struct {
	FrameRate int     `yaml:"frame_rate"`
	FallSpeed float64 `yaml:"fall_speed"`
}

// DisplayConfig defines the canvas geometry in pixels.
type DisplayConfig struct {
	CellSize    int `yaml:"cell_size"`
	BorderWidth int `yaml:"border_width"`
}

// TerminalConfig defines the terminal canvas and key hold emulation.
type TerminalConfig struct {
	CellSize    int           `yaml:"cell_size"`
	BorderWidth int           `yaml:"border_width"`
	HoldWindow  time.Duration `yaml:"hold_window"`
}

// SoundConfig controls the synthesized event tones.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// KeyConfig lists terminal key names for each action, as Bubble Tea
// reports them ("left", "a", "ctrl+c").
type KeyConfig struct {
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
	Drop   []string `yaml:"drop"`
	Rotate []string `yaml:"rotate"`
	Quit   []string `yaml:"quit"`
	Help   []string `yaml:"help"`
}

// Validate reports every invalid value in the configuration.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Columns < 4 {
		errs = append(errs, fmt.Errorf("board.columns must be at least 4, got %d", c.Board.Columns))
	}
	if c.Board.Rows < 4 {
		errs = append(errs, fmt.Errorf("board.rows must be at least 4, got %d", c.Board.Rows))
	}
	if c.Timing.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.frame_rate must be positive, got %d", c.Timing.FrameRate))
	}
	if c.Timing.FallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("timing.fall_speed must be positive, got %g", c.Timing.FallSpeed))
	}
	if c.Window.CellSize <= 0 || c.Window.BorderWidth < 0 {
		errs = append(errs, fmt.Errorf("window: cell_size must be positive and border_width non-negative"))
	}
	if c.Terminal.CellSize <= 0 || c.Terminal.BorderWidth < 0 {
		errs = append(errs, fmt.Errorf("terminal: cell_size must be positive and border_width non-negative"))
	}
	if c.Terminal.HoldWindow <= 0 {
		errs = append(errs, fmt.Errorf("terminal.hold_window must be positive, got %s", c.Terminal.HoldWindow))
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		errs = append(errs, fmt.Errorf("sound.volume must be within [0, 1], got %g", c.Sound.Volume))
	}
	for name, keys := range c.Keys.byName() {
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s needs at least one key", name))
		}
	}
	return errors.Join(errs...)
}

func (k KeyConfig) byName() map[string][]string {
	return map[string][]string{
		"left":   k.Left,
		"right":  k.Right,
		"drop":   k.Drop,
		"rotate": k.Rotate,
		"quit":   k.Quit,
		"help":   k.Help,
	}
}

// WindowRuntime returns the game parameters for the desktop window.
func (c Config) WindowRuntime(seed int64) core.RuntimeConfig {
	return c.runtime(c.Window, seed)
}

// TerminalRuntime returns the game parameters for terminal play.
func (c Config) TerminalRuntime(seed int64) core.RuntimeConfig {
	return c.runtime(DisplayConfig{
		CellSize:    c.Terminal.CellSize,
		BorderWidth: c.Terminal.BorderWidth,
	}, seed)
}

func (c Config) runtime(d DisplayConfig, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Columns:     c.Board.Columns,
		Rows:        c.Board.Rows,
		CellSize:    d.CellSize,
		BorderWidth: d.BorderWidth,
		FrameRate:   c.Timing.FrameRate,
		FallSpeed:   c.Timing.FallSpeed,
		Seed:        seed,
	}
}
