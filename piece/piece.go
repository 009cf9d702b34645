package piece

// Spawn position of every piece. Row 20 is the top row of the visible field,
// so freshly spawned pieces straddle the hidden buffer.
const (
	SpawnRow = 20
	SpawnCol = 4
)

// Offset is a (row, column) displacement. Rows grow downward.
type Offset struct {
	Row, Col int
}

// Piece is the active, movable tetromino. It is a plain value: copying a
// Piece clones it.
type Piece struct {
	Kind     Kind
	Row      int
	Col      int
	Rotation int
	Blocks   [4]Offset
}

// New returns a piece of kind k at the spawn midpoint in its spawn orientation.
func New(k Kind) Piece {
	return Piece{
		Kind:     k,
		Row:      SpawnRow,
		Col:      SpawnCol,
		Rotation: 0,
		Blocks:   shapes[k][0],
	}
}

// Rotated returns a copy of p in rotation state r. Block offsets are always
// taken from the table, never derived from the previous state.
func (p Piece) Rotated(r int) Piece {
	p.Rotation = r
	p.Blocks = shapes[p.Kind][r]
	return p
}

// Moved returns a copy of p shifted by the given rows and columns.
func (p Piece) Moved(dRow, dCol int) Piece {
	p.Row += dRow
	p.Col += dCol
	return p
}

// Cells returns the absolute board coordinates of the piece's blocks.
func (p Piece) Cells() [4]Offset {
	var cells [4]Offset
	for i, b := range p.Blocks {
		cells[i] = Offset{Row: p.Row + b.Row, Col: p.Col + b.Col}
	}
	return cells
}

// Shape returns the block offsets for kind k in rotation state r.
func Shape(k Kind, r int) [4]Offset {
	return shapes[k][r]
}

// shapes holds the SRS geometry per kind and rotation state, relative to the
// rotation midpoint. State 0 is spawn, 1 is clockwise, 2 is 180, 3 is
// counter-clockwise.
var shapes = [Garbage][4][4]Offset{
	I: {
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		{{-1, 1}, {0, 1}, {1, 1}, {2, 1}},
		{{1, -1}, {1, 0}, {1, 1}, {1, 2}},
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	},
	O: {
		{{-1, 0}, {-1, 1}, {0, 0}, {0, 1}},
		{{-1, 0}, {-1, 1}, {0, 0}, {0, 1}},
		{{-1, 0}, {-1, 1}, {0, 0}, {0, 1}},
		{{-1, 0}, {-1, 1}, {0, 0}, {0, 1}},
	},
	T: {
		{{-1, 0}, {0, -1}, {0, 0}, {0, 1}},
		{{-1, 0}, {0, 0}, {0, 1}, {1, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {1, 0}},
		{{-1, 0}, {0, -1}, {0, 0}, {1, 0}},
	},
	S: {
		{{-1, 0}, {-1, 1}, {0, -1}, {0, 0}},
		{{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, -1}, {1, 0}},
		{{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
	},
	Z: {
		{{-1, -1}, {-1, 0}, {0, 0}, {0, 1}},
		{{-1, 1}, {0, 0}, {0, 1}, {1, 0}},
		{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
		{{-1, 0}, {0, -1}, {0, 0}, {1, -1}},
	},
	J: {
		{{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
		{{-1, 0}, {-1, 1}, {0, 0}, {1, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {1, 1}},
		{{-1, 0}, {0, 0}, {1, -1}, {1, 0}},
	},
	L: {
		{{-1, 1}, {0, -1}, {0, 0}, {0, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {1, -1}},
		{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
	},
}
