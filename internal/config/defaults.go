package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration, matching the embedded
// YAML file.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Columns: 10,
			Rows:    20,
		},
		Timing: TimingConfig{
			FrameRate: 30,
			FallSpeed: 5,
		},
		Window: DisplayConfig{
			CellSize:    35,
			BorderWidth: 2,
		},
		Terminal: TerminalConfig{
			CellSize:    2,
			BorderWidth: 0,
			HoldWindow:  150 * time.Millisecond,
		},
		Keys: KeyConfig{
			Left:   []string{"left", "a"},
			Right:  []string{"right", "d"},
			Drop:   []string{"down", "s"},
			Rotate: []string{"up", "w"},
			Quit:   []string{"q", "ctrl+c"},
			Help:   []string{"?"},
		},
		Sound: SoundConfig{
			Enabled: false,
			Volume:  0.7,
		},
	}
}
