// Package blockfall implements the falling-block rules engine: the board,
// the seven-shape catalog, the tick controller and its renderer.
package blockfall

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// fastDropFactor multiplies the fall speed while the drop key is held.
const fastDropFactor = 3

// Game owns the board, the falling piece and the input flags, and advances
// them one fixed tick at a time.
type Game struct {
	cfg   core.RuntimeConfig
	rng   *rand.Rand
	board *Board
	piece *Piece
	input Input
	frame int // Ticks since the last drop attempt

	// Session counters, kept across resets
	tick   uint64
	lines  int
	pieces int
	resets int
}

// New creates a game ready to play. A zero seed is replaced with the clock.
func New(cfg core.RuntimeConfig) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	g.Reset()
	return g
}

// Reset empties the board, clears the input flags and the frame counter,
// and spawns a fresh piece.
func (g *Game) Reset() {
	g.board = NewBoard(g.cfg.Columns, g.cfg.Rows)
	g.frame = 0
	g.input = Input{}
	g.piece = Spawn(g.rng, g.cfg.Columns)
}

// Config returns the parameters the game was built with.
func (g *Game) Config() core.RuntimeConfig {
	return g.cfg
}

// Board returns the settled cells. Callers must not modify it.
func (g *Game) Board() *Board {
	return g.board
}

// Piece returns the falling piece. Callers must not modify it.
func (g *Game) Piece() *Piece {
	return g.piece
}

// dropThreshold is the tick count between two drop attempts.
func (g *Game) dropThreshold() float64 {
	speed := g.cfg.FallSpeed
	if g.input.Down {
		speed *= fastDropFactor
	}
	return float64(g.cfg.FrameRate) / speed
}

// Step advances the simulation by one tick.
func (g *Game) Step() core.StepResult {
	var res core.StepResult
	g.update(&res)
	g.frame++
	g.tick++
	res.State = g.State()
	return res
}

func (g *Game) update(res *core.StepResult) {
	// Input is sampled every other frame
	if g.frame%2 == 0 {
		if g.input.Right {
			g.piece.MoveRight(g.board)
		}
		if g.input.Left {
			g.piece.MoveLeft(g.board)
		}
		if g.input.Rotate {
			g.input.Rotate = false
			g.piece.Rotate(g.board)
		}
	}

	if float64(g.frame) < g.dropThreshold() {
		return
	}
	g.frame = 0
	if !g.piece.MoveDown(g.board) {
		return
	}

	res.Locked = true
	g.pieces++

	// Spilled over the top
	if !g.piece.IsFullyInBounds(g.board) {
		g.gameOver(res)
		return
	}

	cells := g.piece.Cells()
	for _, c := range cells {
		g.board.Set(c.X, c.Y, g.piece.Kind)
	}

	// Rows are checked one at a time in cell order; a collapse shifts the
	// rows above it before the next check.
	var seen [4]int
	n := 0
rows:
	for _, c := range cells {
		for _, y := range seen[:n] {
			if y == c.Y {
				continue rows
			}
		}
		seen[n] = c.Y
		n++
		if g.board.IsRowComplete(c.Y) {
			g.board.CollapseRow(c.Y)
			g.lines++
			res.Cleared = append(res.Cleared, c.Y)
		}
	}

	g.piece = Spawn(g.rng, g.cfg.Columns)
	if g.piece.OverlapsSettled(g.board) {
		g.gameOver(res)
	}
}

func (g *Game) gameOver(res *core.StepResult) {
	g.resets++
	res.Reset = true
	g.Reset()
}

// State returns the session counters.
func (g *Game) State() core.GameState {
	return core.GameState{
		Lines:  g.lines,
		Pieces: g.pieces,
		Resets: g.resets,
		Tick:   g.tick,
	}
}
