// Package bot plays Tetris: it enumerates reachable placements for the active
// piece, scores them with a linear heuristic and feeds the chosen input
// sequence to a session at a human-like pace. Trainer tunes the heuristic
// weights with a genetic algorithm.
package bot

import (
	"math"

	"github.com/plus3/tetra/board"
	"github.com/plus3/tetra/game"
	"github.com/plus3/tetra/piece"
)

// Outcome is a reachable placement together with the features of the board
// it leaves behind, measured after line clears.
type Outcome struct {
	Inputs          []game.Action
	Piece           piece.Piece
	Lines           float64
	AggregateHeight float64
	Holes           float64
	Bumpiness       float64
	WellDepth       float64
	TSpin           bool
	Score           float64
}

// Weights are the coefficients of the evaluation function.
type Weights struct {
	Height    float64 `json:"height"`
	Lines     float64 `json:"lines"`
	Holes     float64 `json:"holes"`
	Bumpiness float64 `json:"bumpiness"`
	Well      float64 `json:"well"`
}

// DefaultWeights are a well known hand-tuned set that ignores well depth.
func DefaultWeights() Weights {
	return Weights{
		Height:    -0.510066,
		Lines:     0.760666,
		Holes:     -0.35663,
		Bumpiness: -0.184483,
		Well:      0,
	}
}

// Score evaluates o.
func (w Weights) Score(o Outcome) float64 {
	return w.Height*o.AggregateHeight +
		w.Lines*o.Lines +
		w.Holes*o.Holes +
		w.Bumpiness*o.Bumpiness +
		w.Well*o.WellDepth
}

const genes = 5

func (w Weights) vector() [genes]float64 {
	return [genes]float64{w.Height, w.Lines, w.Holes, w.Bumpiness, w.Well}
}

func fromVector(v [genes]float64) Weights {
	return Weights{Height: v[0], Lines: v[1], Holes: v[2], Bumpiness: v[3], Well: v[4]}
}

// Normalized scales w to unit Euclidean length. The zero vector is returned
// unchanged.
func (w Weights) Normalized() Weights {
	v := w.vector()
	n := 0.0
	for _, x := range v {
		n += x * x
	}
	if n == 0 {
		return w
	}
	n = math.Sqrt(n)
	for i := range v {
		v[i] /= n
	}
	return fromVector(v)
}

// evaluate locks p into a copy of b and measures the result.
func evaluate(b *board.Board, p piece.Piece) Outcome {
	after := *b
	after.Lock(p)
	lines := after.ClearLines()
	return Outcome{
		Piece:           p,
		Lines:           float64(lines),
		AggregateHeight: float64(after.AggregateHeight()),
		Holes:           float64(after.Holes()),
		Bumpiness:       float64(after.Bumpiness()),
		WellDepth:       float64(after.WellDepth()),
	}
}

// pick returns the best scoring outcome. Ties keep the earliest.
func pick(outs []Outcome, w Weights) (Outcome, bool) {
	best := -1
	for i := range outs {
		outs[i].Score = w.Score(outs[i])
		if best < 0 || outs[i].Score > outs[best].Score {
			best = i
		}
	}
	if best < 0 {
		return Outcome{}, false
	}
	return outs[best], true
}
