// Package board implements the playfield grid: collision queries, locking,
// line clears and garbage insertion.
//
// Row 0 is the top of the hidden buffer and row Rows-1 is the bottom of the
// visible field. Rows grow downward, so a piece falls by increasing its row.
package board

import "github.com/plus3/tetra/piece"

const (
	Rows    = 40
	Columns = 10
	// Hidden is the number of buffer rows above the visible field.
	Hidden = 20
)

// Board is a fixed grid of cells. It is a plain array, so assigning a Board
// copies it.
type Board [Rows][Columns]piece.Kind

// Cell returns the contents of a cell. Coordinates outside the grid read as
// Empty.
func (b *Board) Cell(row, col int) piece.Kind {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return piece.Empty
	}
	return b[row][col]
}

// Solid reports whether a cell is occupied or lies outside the walls or below
// the floor. Rows above the top of the grid are open.
func (b *Board) Solid(row, col int) bool {
	if col < 0 || col >= Columns || row >= Rows {
		return true
	}
	if row < 0 {
		return false
	}
	return b[row][col] != piece.Empty
}

// Valid reports whether p, displaced by dCol columns and dRow rows, fits on
// the board. Positions above the top row are always allowed so pieces may
// hang partially off the top.
func (b *Board) Valid(p piece.Piece, dCol, dRow int) bool {
	for _, blk := range p.Blocks {
		r := p.Row + blk.Row + dRow
		c := p.Col + blk.Col + dCol
		if c < 0 || c >= Columns || r >= Rows {
			return false
		}
		if r < 0 {
			continue
		}
		if b[r][c] != piece.Empty {
			return false
		}
	}
	return true
}

// Lock writes the piece into the grid. Blocks above row 0 are discarded.
func (b *Board) Lock(p piece.Piece) {
	for _, c := range p.Cells() {
		if c.Row < 0 || c.Row >= Rows || c.Col < 0 || c.Col >= Columns {
			continue
		}
		b[c.Row][c.Col] = p.Kind
	}
}

// Drop returns how many rows p can fall before it is blocked.
func (b *Board) Drop(p piece.Piece) int {
	n := 0
	for b.Valid(p, 0, n+1) {
		n++
	}
	return n
}

// Ghost returns p moved to where a hard drop would leave it.
func (b *Board) Ghost(p piece.Piece) piece.Piece {
	return p.Moved(b.Drop(p), 0)
}

func (b *Board) rowFull(row int) bool {
	for _, c := range b[row] {
		if c == piece.Empty {
			return false
		}
	}
	return true
}

// RowEmpty reports whether every cell of row is free.
func (b *Board) RowEmpty(row int) bool {
	for _, c := range b[row] {
		if c != piece.Empty {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifts the rows above down into the gap
// and returns the number of rows removed.
func (b *Board) ClearLines() int {
	return len(b.ClearLinesIndexed())
}

// ClearLinesIndexed is ClearLines that also reports the indices of the
// cleared rows, as they were before compaction.
func (b *Board) ClearLinesIndexed() []int {
	var full []int
	for r := 0; r < Rows; r++ {
		if b.rowFull(r) {
			full = append(full, r)
		}
	}
	if len(full) == 0 {
		return nil
	}

	// Walk upward from the bottom, copying each surviving row to the next
	// free slot. Survivors keep their relative order.
	dst := Rows - 1
	next := len(full) - 1
	for src := Rows - 1; src >= 0; src-- {
		if next >= 0 && full[next] == src {
			next--
			continue
		}
		b[dst] = b[src]
		dst--
	}
	for ; dst >= 0; dst-- {
		b[dst] = [Columns]piece.Kind{}
	}
	return full
}

// InsertGarbage pushes the whole grid up one row and fills the bottom row
// with garbage except for the hole column. It reports whether the row pushed
// off the top held any blocks.
func (b *Board) InsertGarbage(hole int) bool {
	overflow := !b.RowEmpty(0)
	copy(b[:Rows-1], b[1:])
	for c := range b[Rows-1] {
		b[Rows-1][c] = piece.Garbage
	}
	if hole >= 0 && hole < Columns {
		b[Rows-1][hole] = piece.Empty
	}
	return overflow
}

// Empty reports whether no cell of the board is occupied.
func (b *Board) Empty() bool {
	for r := range Rows {
		if !b.RowEmpty(r) {
			return false
		}
	}
	return true
}
