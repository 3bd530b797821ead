package blockfall

// Snapshot captures the complete game state for determinism testing and
// debugging output.
type Snapshot struct {
	Tick    uint64
	Frame   int
	Lines   int
	Pieces  int
	Resets  int
	Kind    Kind
	PieceX  int
	PieceY  int
	Input   Input
	Settled int    // Occupied board cells
	Board   string // Board dump with the falling piece overlaid
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Frame:   g.frame,
		Lines:   g.lines,
		Pieces:  g.pieces,
		Resets:  g.resets,
		Kind:    g.piece.Kind,
		PieceX:  g.piece.Pos.X,
		PieceY:  g.piece.Pos.Y,
		Input:   g.input,
		Settled: g.board.Count(),
		Board:   g.DebugBoard(),
	}
}

// DebugBoard renders the board with the falling piece drawn as '@' cells,
// one line per row.
func (g *Game) DebugBoard() string {
	out := []byte(g.board.String())
	stride := g.board.Width() + 1
	for _, c := range g.piece.Cells() {
		if g.board.InBounds(c.X, c.Y) {
			out[c.Y*stride+c.X] = '@'
		}
	}
	return string(out)
}
