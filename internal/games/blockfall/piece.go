package blockfall

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Piece is the falling shape. It owns a mutable copy of its catalog offsets;
// Pos is the top-left corner of the bounding box in board cells.
type Piece struct {
	Kind    Kind
	Offsets [4]core.Point
	BoxSize int
	Pos     core.Point
}

// NewPiece instances a catalog shape at the given position.
func NewPiece(s Shape, pos core.Point) *Piece {
	return &Piece{
		Kind:    s.Kind,
		Offsets: s.Offsets,
		BoxSize: s.BoxSize,
		Pos:     pos,
	}
}

// Spawn picks a catalog shape uniformly at random and places it at the top
// of a board with the given column count, horizontally centred.
func Spawn(rng *rand.Rand, cols int) *Piece {
	s := Shapes[rng.Intn(len(Shapes))]
	return NewPiece(s, SpawnPosition(s, cols))
}

// SpawnPosition returns where a shape enters the board.
func SpawnPosition(s Shape, cols int) core.Point {
	return core.Point{X: (cols+s.BoxSize+1)/2 - s.BoxSize, Y: 0}
}

// Cells returns the absolute board coordinates of the four occupied cells,
// in offset order.
func (p *Piece) Cells() [4]core.Point {
	var out [4]core.Point
	for i, o := range p.Offsets {
		out[i] = o.Add(p.Pos)
	}
	return out
}

// IsFullyInBounds reports whether every cell lies on the board.
func (p *Piece) IsFullyInBounds(b *Board) bool {
	for _, c := range p.Cells() {
		if !b.InBounds(c.X, c.Y) {
			return false
		}
	}
	return true
}

// TouchesRightWall reports whether any on-board cell sits in the last column
// or has a settled right neighbour. Off-board cells never block.
func (p *Piece) TouchesRightWall(b *Board) bool {
	return p.touches(b, 1, 0)
}

// TouchesLeftWall is the mirror of TouchesRightWall.
func (p *Piece) TouchesLeftWall(b *Board) bool {
	return p.touches(b, -1, 0)
}

// TouchesFloor reports whether any on-board cell sits on the bottom row or
// rests on a settled cell.
func (p *Piece) TouchesFloor(b *Board) bool {
	return p.touches(b, 0, 1)
}

// touches checks whether moving by (dx, dy) would leave the board or hit a
// settled cell, looking only at cells currently on the board.
func (p *Piece) touches(b *Board, dx, dy int) bool {
	for _, c := range p.Cells() {
		if !b.InBounds(c.X, c.Y) {
			continue
		}
		nx, ny := c.X+dx, c.Y+dy
		if !b.InBounds(nx, ny) {
			return true
		}
		if b.IsOccupied(nx, ny) {
			return true
		}
	}
	return false
}

// OverlapsSettled reports whether any on-board cell coincides with a settled cell.
func (p *Piece) OverlapsSettled(b *Board) bool {
	for _, c := range p.Cells() {
		if b.IsOccupied(c.X, c.Y) {
			return true
		}
	}
	return false
}

// MoveDown advances the piece one row. It returns true, without moving,
// when the piece rests on the floor or on settled cells.
func (p *Piece) MoveDown(b *Board) (locked bool) {
	if p.TouchesFloor(b) {
		return true
	}
	p.Pos.Y++
	return false
}

// MoveLeft shifts the piece one column left unless blocked.
func (p *Piece) MoveLeft(b *Board) {
	if !p.TouchesLeftWall(b) {
		p.Pos.X--
	}
}

// MoveRight shifts the piece one column right unless blocked.
func (p *Piece) MoveRight(b *Board) {
	if !p.TouchesRightWall(b) {
		p.Pos.X++
	}
}

// Rotate turns the piece a quarter turn inside its bounding box. If the
// result overlaps settled cells or leaves the board, the turn is undone with
// the inverse mapping, so each call is one atomic attempt.
func (p *Piece) Rotate(b *Board) {
	n := p.BoxSize - 1
	for i, o := range p.Offsets {
		p.Offsets[i] = core.Point{X: n - o.Y, Y: o.X}
	}

	if p.OverlapsSettled(b) || !p.IsFullyInBounds(b) {
		for i, o := range p.Offsets {
			p.Offsets[i] = core.Point{X: o.Y, Y: n - o.X}
		}
	}
}
