package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// Input holds the player's intent flags. Front ends mutate them between
// ticks through KeyDown and KeyUp; the controller reads them on its tick.
type Input struct {
	Left   bool
	Right  bool
	Down   bool
	Rotate bool // Pending single rotation, cleared once consumed
}

// KeyDown records a key press for the given action.
// Rotation is edge-triggered: it queues one rotation per press.
func (g *Game) KeyDown(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.input.Left = true
	case core.ActionRight:
		g.input.Right = true
	case core.ActionDrop:
		g.input.Down = true
	case core.ActionRotate:
		g.input.Rotate = true
	}
}

// KeyUp records a key release. Releasing rotate has no effect.
func (g *Game) KeyUp(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.input.Left = false
	case core.ActionRight:
		g.input.Right = false
	case core.ActionDrop:
		g.input.Down = false
	}
}

// Input returns the current intent flags.
func (g *Game) Input() Input {
	return g.input
}
