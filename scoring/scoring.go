// Package scoring turns lock events into points, combo and back-to-back
// state, and garbage attack.
package scoring

import "github.com/plus3/tetra/srs"

//go:generate go tool stringer -type=ScoreType

// ScoreType is the kind of clear a lock produced.
type ScoreType int

const (
	Single ScoreType = iota
	Double
	Triple
	Tetris
	TSpinMini
	TSpin
	TSpinMiniSingle
	TSpinSingle
	TSpinDouble
	TSpinTriple
)

var basePoints = [...]int{
	Single:          100,
	Double:          300,
	Triple:          500,
	Tetris:          800,
	TSpinMini:       100,
	TSpin:           400,
	TSpinMiniSingle: 200,
	TSpinSingle:     800,
	TSpinDouble:     1200,
	TSpinTriple:     1600,
}

var labels = [...]string{
	Single:          "Single",
	Double:          "Double",
	Triple:          "Triple",
	Tetris:          "Tetris",
	TSpinMini:       "T-Spin Mini",
	TSpin:           "T-Spin",
	TSpinMiniSingle: "T-Spin Mini Single",
	TSpinSingle:     "T-Spin Single",
	TSpinDouble:     "T-Spin Double",
	TSpinTriple:     "T-Spin Triple",
}

// Label is the human readable name shown by hosts.
func (s ScoreType) Label() string {
	return labels[s]
}

// Points is the base value before combo, back-to-back and level.
func (s ScoreType) Points() int {
	return basePoints[s]
}

// Clears reports whether the score type removed at least one line.
func (s ScoreType) Clears() bool {
	return s != TSpinMini && s != TSpin
}

// Difficult reports whether the clear feeds the back-to-back chain.
func (s ScoreType) Difficult() bool {
	switch s {
	case Single, Double, Triple, TSpinMini, TSpin:
		return false
	}
	return true
}

// Classify maps a lock (lines cleared plus the spin of the last rotation)
// to a score type. It returns false when the lock earns nothing.
func Classify(lines int, spin srs.Spin) (ScoreType, bool) {
	switch spin {
	case srs.Full:
		switch lines {
		case 0:
			return TSpin, true
		case 1:
			return TSpinSingle, true
		case 2:
			return TSpinDouble, true
		default:
			return TSpinTriple, true
		}
	case srs.Mini:
		switch lines {
		case 0:
			return TSpinMini, true
		case 1:
			return TSpinMiniSingle, true
		default:
			// A mini cannot clear more than one row with a legal T; treat the
			// rare kicked case as a full double.
			return TSpinDouble, true
		}
	}
	switch lines {
	case 1:
		return Single, true
	case 2:
		return Double, true
	case 3:
		return Triple, true
	case 4:
		return Tetris, true
	}
	return 0, false
}
