// Package srs implements the Super Rotation System: kick-table rotation and
// T-spin recognition.
package srs

import (
	"github.com/plus3/tetra/board"
	"github.com/plus3/tetra/piece"
)

// Direction is a rotation amount in quarter turns clockwise.
type Direction int

const (
	CW   Direction = 1
	Half Direction = 2
	CCW  Direction = 3
)

// Spin classifies a T piece rotation.
type Spin uint8

const (
	NoSpin Spin = iota
	Mini
	Full
)

func (s Spin) String() string {
	switch s {
	case Mini:
		return "T-Spin Mini"
	case Full:
		return "T-Spin"
	}
	return "none"
}

// Result describes a successful rotation.
type Result struct {
	// Kick is the index of the kick offset that was applied. Zero means the
	// piece rotated in place.
	Kick int
	Spin Spin
}

// Rotate turns p by d on board b. The kick offsets for the transition are
// tried in order and the first position that fits wins. When nothing fits,
// p is returned untouched together with false.
func Rotate(b *board.Board, p piece.Piece, d Direction) (piece.Piece, Result, bool) {
	rotated := p.Rotated((p.Rotation + int(d)) % 4)
	for i, k := range kicks(p.Kind, p.Rotation, d) {
		if !b.Valid(rotated, k.x, -k.y) {
			continue
		}
		out := rotated.Moved(-k.y, k.x)
		res := Result{Kick: i}
		if out.Kind == piece.T {
			res.Spin = TSpin(b, out)
		}
		return out, res, true
	}
	return p, Result{}, false
}

// corners are the diagonals around the midpoint, clockwise from up-left.
// The two corners a T in rotation state r points towards are r and r+1.
var corners = [4]piece.Offset{
	{Row: -1, Col: -1},
	{Row: -1, Col: 1},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

// TSpin applies the three-corner rule to a T piece that has just rotated
// into place. Walls and the floor count as filled corners.
func TSpin(b *board.Board, p piece.Piece) Spin {
	if p.Kind != piece.T {
		return NoSpin
	}
	front, back := 0, 0
	for i, c := range corners {
		if !b.Solid(p.Row+c.Row, p.Col+c.Col) {
			continue
		}
		if i == p.Rotation || i == (p.Rotation+1)%4 {
			front++
		} else {
			back++
		}
	}
	if front+back < 3 {
		return NoSpin
	}
	if front == 1 {
		return Mini
	}
	return Full
}
