package blockfall

import (
	"strings"
)

// Board is the fixed grid of settled cells, indexed [row][column].
type Board struct {
	cols  int
	rows  int
	cells [][]Kind
}

// NewBoard creates an empty board.
func NewBoard(cols, rows int) *Board {
	b := &Board{cols: cols, rows: rows}
	b.cells = make([][]Kind, rows)
	for y := range b.cells {
		b.cells[y] = make([]Kind, cols)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.cols
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.rows
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// IsOccupied reports whether a settled cell exists at (x, y).
// Off-board coordinates read as empty.
func (b *Board) IsOccupied(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return b.cells[y][x] != Empty
}

// At returns the cell at (x, y), Empty when off-board.
func (b *Board) At(x, y int) Kind {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[y][x]
}

// Set writes a cell. Off-board writes are ignored.
func (b *Board) Set(x, y int, k Kind) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y][x] = k
}

// IsRowComplete reports whether every cell of the row is occupied.
func (b *Board) IsRowComplete(row int) bool {
	if row < 0 || row >= b.rows {
		return false
	}
	for _, k := range b.cells[row] {
		if k == Empty {
			return false
		}
	}
	return true
}

// CollapseRow removes a row: every row above it shifts down by one and the
// top row becomes empty. Rows below are untouched.
func (b *Board) CollapseRow(row int) {
	if row < 0 || row >= b.rows {
		return
	}
	for y := row; y > 0; y-- {
		copy(b.cells[y], b.cells[y-1])
	}
	clear(b.cells[0])
}

// Clear empties the whole board.
func (b *Board) Clear() {
	for y := range b.cells {
		clear(b.cells[y])
	}
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, row := range b.cells {
		for _, k := range row {
			if k != Empty {
				n++
			}
		}
	}
	return n
}

// Row returns a copy of one row.
func (b *Board) Row(y int) []Kind {
	out := make([]Kind, b.cols)
	if y >= 0 && y < b.rows {
		copy(out, b.cells[y])
	}
	return out
}

// String renders the board one character per cell, '.' for empty.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, k := range row {
			sb.WriteString(k.String())
		}
	}
	return sb.String()
}
