// Package sim runs blockfall headless, driven by a random player.
package sim

import (
	"context"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/loop"
)

// Simulation couples a game with a random player.
type Simulation struct {
	game   *blockfall.Game
	player *RandomPlayer
	logger *log.Logger
	every  uint64 // Progress log interval in ticks
}

// New creates a simulation. The config seed drives both the game and the
// player, so a seed replays identically.
func New(rc core.RuntimeConfig, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := blockfall.New(rc)
	return &Simulation{
		game:   g,
		player: NewRandomPlayer(g.Config().Seed),
		logger: logger,
		every:  uint64(rc.FrameRate) * 60,
	}
}

// Game returns the simulated game.
func (s *Simulation) Game() *blockfall.Game {
	return s.game
}

// Step lets the player act, then advances the game one tick.
func (s *Simulation) Step() core.StepResult {
	s.player.Act(s.game)
	res := s.game.Step()

	if len(res.Cleared) > 0 {
		s.logger.Debug("rows cleared", "rows", res.Cleared, "lines", res.State.Lines)
	}
	if res.Reset {
		s.logger.Info("game over", "tick", res.State.Tick, "resets", res.State.Resets, "lines", res.State.Lines)
	}
	if s.every > 0 && res.State.Tick%s.every == 0 {
		s.logger.Info("progress", "tick", res.State.Tick, "lines", res.State.Lines, "pieces", res.State.Pieces)
	}
	return res
}

// Run simulates ticks ticks. Realtime runs pace them at the game's frame
// rate; otherwise they run back to back.
func (s *Simulation) Run(ctx context.Context, ticks uint64, realtime bool) error {
	sched := loop.New(s.game.Config().FrameInterval(), nil, nil)
	sched.Update = func() bool {
		s.Step()
		return sched.Ticks() < ticks
	}
	if !realtime {
		return sched.RunFor(ctx, ticks)
	}
	if ticks == 0 {
		return nil
	}
	return sched.Run(ctx)
}

// RandomPlayer presses and releases keys at random. Its RNG is separate
// from the game's.
type RandomPlayer struct {
	rng  *rand.Rand
	held map[core.Action]bool
}

var playerActions = []core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionDrop,
	core.ActionRotate,
}

// NewRandomPlayer creates a player with its own seeded RNG.
func NewRandomPlayer(seed int64) *RandomPlayer {
	return &RandomPlayer{
		rng:  rand.New(rand.NewSource(seed ^ 0x5eed)),
		held: make(map[core.Action]bool),
	}
}

// Act toggles at most one key per tick. Rotation is a tap and is never held.
func (p *RandomPlayer) Act(g *blockfall.Game) {
	if p.rng.Intn(4) != 0 {
		return
	}
	a := playerActions[p.rng.Intn(len(playerActions))]
	if p.held[a] {
		g.KeyUp(a)
		p.held[a] = false
		return
	}
	g.KeyDown(a)
	p.held[a] = a != core.ActionRotate
}
