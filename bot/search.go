package bot

import (
	"hash/fnv"
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/tetra/board"
	"github.com/plus3/tetra/game"
	"github.com/plus3/tetra/piece"
	"github.com/plus3/tetra/srs"
)

// MaxRotations bounds the rotations along a single search path.
const MaxRotations = 4

type node struct {
	p    piece.Piece
	path []game.Action
	rots int
	spin srs.Spin
}

func (n node) then(p piece.Piece, a game.Action) node {
	path := make([]game.Action, len(n.path), len(n.path)+2)
	copy(path, n.path)
	return node{p: p, path: append(path, a), rots: n.rots}
}

// stateKey packs a piece position into a visited-set key. Rows and columns
// are biased so that positions just outside the grid stay positive.
func stateKey(row, col, rot int) uint32 {
	return uint32(row+8)<<10 | uint32(col+8)<<2 | uint32(rot&3)
}

func boardHash(b *board.Board) uint64 {
	h := fnv.New64a()
	var buf [board.Columns]byte
	for r := range board.Rows {
		for c, k := range b[r] {
			buf[c] = byte(k)
		}
		h.Write(buf[:])
	}
	return h.Sum64()
}

// terminals collects one outcome per distinct board.
type terminals struct {
	b    *board.Board
	seen *intmap.Map[uint64, struct{}]
	outs []Outcome
}

func newTerminals(b *board.Board) *terminals {
	return &terminals{b: b, seen: intmap.New[uint64, struct{}](64)}
}

func (t *terminals) add(p piece.Piece, path []game.Action, spin srs.Spin) {
	drop := t.b.Drop(p)
	landed := p.Moved(drop, 0)

	locked := *t.b
	locked.Lock(landed)
	h := boardHash(&locked)
	if _, dup := t.seen.Get(h); dup {
		return
	}
	t.seen.Put(h, struct{}{})

	o := evaluate(t.b, landed)
	o.Inputs = append(slices.Clip(path), game.HardDrop)
	o.TSpin = drop == 0 && spin != srs.NoSpin
	t.outs = append(t.outs, o)
}

// Search explores every position reachable from p by shifting, rotating
// and soft dropping, breadth first, and returns one outcome per distinct
// resulting board in discovery order. A SoftDrop in an input sequence means
// holding soft drop until the piece is grounded.
func Search(b *board.Board, p piece.Piece) []Outcome {
	if !b.Valid(p, 0, 0) {
		return nil
	}
	visited := intmap.New[uint32, struct{}](512)
	mark := func(q piece.Piece) bool {
		k := stateKey(q.Row, q.Col, q.Rotation)
		if _, ok := visited.Get(k); ok {
			return false
		}
		visited.Put(k, struct{}{})
		if q.Kind.Symmetric() {
			visited.Put(stateKey(q.Row, q.Col, (q.Rotation+2)%4), struct{}{})
		}
		return true
	}

	term := newTerminals(b)
	queue := []node{{p: p}}
	mark(p)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		term.add(cur.p, cur.path, cur.spin)

		for _, s := range [...]struct {
			a    game.Action
			dCol int
		}{{game.MoveLeft, -1}, {game.MoveRight, 1}} {
			if !b.Valid(cur.p, s.dCol, 0) {
				continue
			}
			next := cur.p.Moved(0, s.dCol)
			if mark(next) {
				queue = append(queue, cur.then(next, s.a))
			}
		}

		if cur.rots < MaxRotations && cur.p.Kind != piece.O {
			for _, r := range [...]struct {
				a game.Action
				d srs.Direction
			}{{game.RotateCW, srs.CW}, {game.RotateCCW, srs.CCW}} {
				next, res, ok := srs.Rotate(b, cur.p, r.d)
				if !ok || !mark(next) {
					continue
				}
				n := cur.then(next, r.a)
				n.rots = cur.rots + 1
				n.spin = res.Spin
				queue = append(queue, n)
			}
		}

		if d := b.Drop(cur.p); d > 0 {
			next := cur.p.Moved(d, 0)
			if mark(next) {
				queue = append(queue, cur.then(next, game.SoftDrop))
			}
		}
	}
	return term.outs
}

// FastSearch only tries each distinct orientation at each column followed
// by a hard drop. It misses tucks and spins but is much cheaper than Search.
func FastSearch(b *board.Board, p piece.Piece) []Outcome {
	if !b.Valid(p, 0, 0) {
		return nil
	}
	term := newTerminals(b)

	turns := [...]struct {
		a game.Action
		d srs.Direction
	}{{}, {game.RotateCW, srs.CW}, {game.Rotate180, srs.Half}, {game.RotateCCW, srs.CCW}}

	for i, turn := range turns {
		if p.Kind == piece.O && i > 0 {
			break
		}
		if p.Kind.Symmetric() && i > 1 {
			break
		}
		start := p
		var path []game.Action
		if i > 0 {
			rotated, _, ok := srs.Rotate(b, p, turn.d)
			if !ok {
				continue
			}
			start = rotated
			path = []game.Action{turn.a}
		}
		term.add(start, path, srs.NoSpin)

		for _, s := range [...]struct {
			a    game.Action
			dCol int
		}{{game.MoveLeft, -1}, {game.MoveRight, 1}} {
			cur := start
			steps := slices.Clone(path)
			for b.Valid(cur, s.dCol, 0) {
				cur = cur.Moved(0, s.dCol)
				steps = append(steps, s.a)
				term.add(cur, steps, srs.NoSpin)
			}
		}
	}
	return term.outs
}
