// Package piece defines tetromino kinds, their rotation-state geometry and
// the 7-bag queue that feeds a game session.
package piece

// Kind identifies a tetromino. It doubles as the contents of a board cell,
// where Empty marks a free cell and Garbage marks an inserted garbage block.
type Kind uint8

const (
	Empty Kind = iota
	I
	O
	T
	S
	Z
	J
	L
	Garbage
)

// Kinds is the ordered set of playable kinds, one full bag.
var Kinds = [7]Kind{I, O, T, S, Z, J, L}

func (k Kind) String() string {
	switch k {
	case Empty:
		return "."
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	case Garbage:
		return "G"
	}
	panic("unknown piece kind")
}

// Playable reports whether k is one of the seven tetrominoes.
func (k Kind) Playable() bool {
	return k >= I && k <= L
}

// Symmetric reports whether the kind's 180 degree rotation covers the same
// cells as its spawn orientation, give or take a one-cell shift.
func (k Kind) Symmetric() bool {
	return k == I || k == S || k == Z
}
