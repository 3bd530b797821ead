package core

import "time"

// RuntimeConfig contains the constructor parameters of a game instance.
// Front ends build it from the YAML configuration and CLI flags.
type RuntimeConfig struct {
	Columns     int     // Board width in cells
	Rows        int     // Board height in cells
	CellSize    int     // Cell edge in pixels
	BorderWidth int     // Grid line thickness in pixels (two lines per cell)
	FrameRate   int     // Simulation ticks per second
	FallSpeed   float64 // Cells per second at normal speed
	Seed        int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns the classic 10x20 board at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Columns:     10,
		Rows:        20,
		CellSize:    35,
		BorderWidth: 2,
		FrameRate:   30,
		FallSpeed:   5,
		Seed:        0, // 0 means use current time in platform layer
	}
}

// Pitch returns the pixel distance between neighbouring cells.
func (c RuntimeConfig) Pitch() int {
	return c.CellSize + 2*c.BorderWidth
}

// CanvasSize returns the drawing surface size in pixels.
func (c RuntimeConfig) CanvasSize() (width, height int) {
	return c.Columns * c.Pitch(), c.Rows * c.Pitch()
}

// FrameInterval returns the delay between two ticks.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.FrameRate)
}

// GameState summarises a running game for the front ends.
type GameState struct {
	Lines  int    // Rows cleared since process start
	Pieces int    // Pieces locked since process start
	Resets int    // Game-over resets since process start
	Tick   uint64 // Ticks since process start
}

// StepResult is returned by a simulation tick.
type StepResult struct {
	State   GameState
	Locked  bool  // A piece locked this tick
	Cleared []int // Rows collapsed this tick, in collapse order
	Reset   bool  // The game reset this tick
}
