package srs

import "github.com/plus3/tetra/piece"

// kick is a wall-kick translation in guideline coordinates: x grows to the
// right and y grows upward, so it is applied as (col += x, row -= y).
type kick struct {
	x, y int
}

// Tables are indexed by the rotation state the piece starts from.
var (
	jlstzCW = [4][]kick{
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // 0 -> 1
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 1 -> 2
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},    // 2 -> 3
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 3 -> 0
	}
	jlstzCCW = [4][]kick{
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},    // 0 -> 3
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 1 -> 0
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // 2 -> 1
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 3 -> 2
	}
	iCW = [4][]kick{
		{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}}, // 0 -> 1
		{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}}, // 1 -> 2
		{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}}, // 2 -> 3
		{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}}, // 3 -> 0
	}
	iCCW = [4][]kick{
		{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}}, // 0 -> 3
		{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}}, // 1 -> 0
		{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}}, // 2 -> 1
		{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}}, // 3 -> 2
	}
	half = [4][]kick{
		{{0, 0}, {0, 1}, {1, 1}, {-1, 1}, {1, 0}, {-1, 0}},    // 0 -> 2
		{{0, 0}, {1, 0}, {1, 2}, {1, 1}, {0, 2}, {0, 1}},      // 1 -> 3
		{{0, 0}, {0, -1}, {-1, -1}, {1, -1}, {-1, 0}, {1, 0}}, // 2 -> 0
		{{0, 0}, {-1, 0}, {-1, 2}, {-1, 1}, {0, 2}, {0, 1}},   // 3 -> 1
	}
	none = []kick{{0, 0}}
)

func kicks(k piece.Kind, from int, d Direction) []kick {
	if k == piece.O {
		return none
	}
	switch d {
	case CW:
		if k == piece.I {
			return iCW[from]
		}
		return jlstzCW[from]
	case CCW:
		if k == piece.I {
			return iCCW[from]
		}
		return jlstzCCW[from]
	case Half:
		return half[from]
	}
	panic("srs: invalid rotation direction")
}
