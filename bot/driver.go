package bot

import (
	"time"

	"github.com/plus3/tetra/game"
)

// Driver plays a session. Whenever a new piece appears it plans a placement
// with Best and then releases the planned inputs one at a time, at the pace
// of its difficulty. Taps are pressed for a single tick; soft drop is held
// until the piece is grounded.
type Driver struct {
	Weights    Weights
	Difficulty Difficulty
	Options    Options

	keys     game.Keys
	plan     []game.Action
	planned  bool
	pieces   int
	elapsed  time.Duration
	tapped   game.Action
	tapping  bool
	dropping bool
}

// NewDriver returns a driver with the default weights.
func NewDriver(d Difficulty) *Driver {
	return &Driver{Weights: DefaultWeights(), Difficulty: d, Options: Options{Hold: true}}
}

// Plan returns the inputs still waiting to be sent.
func (d *Driver) Plan() []game.Action {
	return d.plan
}

// Reset forgets the current plan and lets go of every key.
func (d *Driver) Reset() {
	*d = Driver{Weights: d.Weights, Difficulty: d.Difficulty, Options: d.Options}
}

// Poll produces the snapshot for the next session update.
func (d *Driver) Poll(s *game.Session, dt time.Duration) game.Snapshot {
	d.keys.Advance()
	d.elapsed += dt

	if s.Over() || !s.Started() {
		d.keys.ReleaseAll()
		d.tapping, d.dropping = false, false
		return d.keys
	}

	if d.tapping {
		d.keys.Release(d.tapped)
		d.tapping = false
	}
	if !d.planned || s.Pieces() != d.pieces {
		d.replan(s)
	}
	if d.dropping {
		if !s.Grounded() {
			return d.keys
		}
		d.keys.Release(game.SoftDrop)
		d.dropping = false
	}

	if len(d.plan) == 0 || d.elapsed < d.Difficulty.Pace() {
		return d.keys
	}
	a := d.plan[0]
	// A key released this tick has to stay up for a tick before it can
	// register as a new press.
	if d.keys.JustReleased(a) {
		return d.keys
	}
	d.plan = d.plan[1:]
	d.elapsed = 0

	d.keys.Press(a)
	if a == game.SoftDrop {
		d.dropping = true
	} else {
		d.tapped = a
		d.tapping = true
	}
	return d.keys
}

func (d *Driver) replan(s *game.Session) {
	d.planned = true
	d.pieces = s.Pieces()
	d.keys.ReleaseAll()
	d.dropping = false

	if o, ok := Best(s, d.Weights, d.Options); ok {
		d.plan = o.Inputs
	} else {
		d.plan = []game.Action{game.HardDrop}
	}
}
