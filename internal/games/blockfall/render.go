package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// GridColor paints the separator lines between cells.
const GridColor = core.ColorGray

// Render paints the grid, the settled cells and the falling piece. It only
// reads game state.
func (g *Game) Render(dst core.Surface) {
	dst.Clear()
	g.renderGrid(dst)

	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if k := g.board.At(x, y); k != Empty {
				dst.FillRect(g.cellRect(x, y), k.Color())
			}
		}
	}

	for _, c := range g.piece.Cells() {
		if g.board.InBounds(c.X, c.Y) {
			dst.FillRect(g.cellRect(c.X, c.Y), g.piece.Kind.Color())
		}
	}
}

// renderGrid draws two lines per column and per row: one on each side of
// the cell.
func (g *Game) renderGrid(dst core.Surface) {
	bw := g.cfg.BorderWidth
	if bw <= 0 {
		return
	}
	pitch := g.cfg.Pitch()
	w, h := g.cfg.CanvasSize()

	for col := 0; col < g.cfg.Columns; col++ {
		x := col * pitch
		dst.FillRect(core.NewRect(x, 0, bw, h), GridColor)
		dst.FillRect(core.NewRect(x+g.cfg.CellSize+bw, 0, bw, h), GridColor)
	}
	for row := 0; row < g.cfg.Rows; row++ {
		y := row * pitch
		dst.FillRect(core.NewRect(0, y, w, bw), GridColor)
		dst.FillRect(core.NewRect(0, y+g.cfg.CellSize+bw, w, bw), GridColor)
	}
}

// cellRect returns the pixel area of the cell at column x, row y.
func (g *Game) cellRect(x, y int) core.Rect {
	pitch := g.cfg.Pitch()
	bw := g.cfg.BorderWidth
	return core.NewRect(pitch*x+bw, pitch*y+bw, g.cfg.CellSize, g.cfg.CellSize)
}
