package bot

import (
	"github.com/plus3/tetra/board"
	"github.com/plus3/tetra/game"
	"github.com/plus3/tetra/piece"
)

// Options tune how Best looks for a placement.
type Options struct {
	// Fast uses FastSearch instead of the full breadth-first search.
	Fast bool
	// Hold also considers swapping with the held piece, or with the next
	// queued piece when nothing is held.
	Hold bool
}

func (o Options) search() func(*board.Board, piece.Piece) []Outcome {
	if o.Fast {
		return FastSearch
	}
	return Search
}

// Best returns the highest scoring placement for the session's active
// piece. The returned inputs start with game.Hold when swapping wins. It
// reports false when no placement exists.
func Best(s *game.Session, w Weights, opts Options) (Outcome, bool) {
	b := s.Board()
	search := opts.search()

	best, ok := pick(search(&b, s.Active()), w)

	if !opts.Hold || !s.CanHold() {
		return best, ok
	}
	alt := s.Held()
	if alt == piece.Empty {
		if next := s.Next(1); len(next) > 0 {
			alt = next[0]
		}
	}
	if alt == piece.Empty || alt == s.Active().Kind {
		return best, ok
	}
	o, found := pick(search(&b, piece.New(alt)), w)
	if found && (!ok || o.Score > best.Score) {
		o.Inputs = append([]game.Action{game.Hold}, o.Inputs...)
		return o, true
	}
	return best, ok
}
