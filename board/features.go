package board

import "github.com/plus3/tetra/piece"

// Heights returns the height of each column, measured from the floor to the
// topmost occupied cell. An empty column has height 0.
func (b *Board) Heights() [Columns]int {
	var h [Columns]int
	for c := range Columns {
		for r := range Rows {
			if b[r][c] != piece.Empty {
				h[c] = Rows - r
				break
			}
		}
	}
	return h
}

// AggregateHeight is the sum of all column heights.
func (b *Board) AggregateHeight() int {
	total := 0
	for _, h := range b.Heights() {
		total += h
	}
	return total
}

// Holes counts empty cells that have at least one occupied cell above them
// in the same column.
func (b *Board) Holes() int {
	holes := 0
	for c := range Columns {
		covered := false
		for r := range Rows {
			if b[r][c] != piece.Empty {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return holes
}

// Bumpiness is the sum of absolute height differences between neighbouring
// columns.
func (b *Board) Bumpiness() int {
	h := b.Heights()
	total := 0
	for c := 0; c < Columns-1; c++ {
		d := h[c] - h[c+1]
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total
}

// WellDepth sums, for every column, the triangular depth of runs of empty
// cells walled in on both sides. Walls count as occupied.
func (b *Board) WellDepth() int {
	total := 0
	for c := range Columns {
		depth := 0
		for r := range Rows {
			left := c == 0 || b[r][c-1] != piece.Empty
			right := c == Columns-1 || b[r][c+1] != piece.Empty
			if b[r][c] == piece.Empty && left && right {
				depth++
				total += depth
			} else {
				depth = 0
			}
		}
	}
	return total
}

// FullLines counts rows that are completely occupied.
func (b *Board) FullLines() int {
	n := 0
	for r := range Rows {
		if b.rowFull(r) {
			n++
		}
	}
	return n
}
