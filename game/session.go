// Package game runs a single Tetris session: input handling, gravity, lock
// delay, scoring, modes and garbage exchange. A Session is advanced with
// Update and never reads the wall clock, so it is fully deterministic for a
// given seed and input sequence.
package game

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/plus3/tetra/board"
	"github.com/plus3/tetra/piece"
	"github.com/plus3/tetra/scoring"
	"github.com/plus3/tetra/srs"
)

const (
	// LockDelay is how long a grounded piece may rest before it locks.
	LockDelay = 500 * time.Millisecond
	// MaxActions is the number of moves or rotations allowed while grounded
	// before the piece locks regardless of the lock delay.
	MaxActions = 15
	// NextPreview is how many queued kinds hosts usually show.
	NextPreview = 5
)

// Clear records the most recent scoring lock for display.
type Clear struct {
	scoring.Event
	// Rows are the board rows removed, before compaction.
	Rows []int
	// At is the play time of the lock.
	At time.Duration
}

// Session is one player's game.
type Session struct {
	board   board.Board
	active  piece.Piece
	held    piece.Kind
	canHold bool
	queue   *piece.Queue
	rng     rand.PCG

	mode     Mode
	handling Handling
	gravity  float64

	now       time.Duration
	countdown time.Duration
	started   bool
	over      bool
	completed bool

	lastFall   time.Duration
	grounded   bool
	groundedAt time.Duration
	actions    int
	lowest     int
	spin       srs.Spin

	dir        int
	dasStart   time.Duration
	dasCharged bool
	arrStart   time.Duration

	tracker    scoring.Tracker
	lastClear  Clear
	hasClear   bool
	level      int
	lines      int
	levelLines int
	pieces     int
	attack     int
	received   int

	inbound  []GarbageUnit
	outbound []GarbageUnit
}

// New creates a session. Without a countdown the first piece spawns
// immediately.
func New(opts ...Option) *Session {
	cfg := config{
		level:    1,
		handling: DefaultHandling(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seeded {
		cfg.seed = rand.Uint64()
	}

	s := &Session{
		queue:     piece.NewQueue(cfg.seed, cfg.seed^0x9e3779b97f4a7c15),
		rng:       *rand.NewPCG(cfg.seed^0xbf58476d1ce4e5b9, cfg.seed),
		canHold:   true,
		mode:      cfg.mode,
		handling:  cfg.handling,
		level:     cfg.level,
		countdown: cfg.countdown,
	}
	if s.mode != Marathon {
		s.level = 1
	}
	s.gravity = Gravity(s.mode, s.level)
	if s.countdown == 0 {
		s.start()
	}
	return s
}

func (s *Session) start() {
	s.started = true
	s.spawn(s.queue.Pop())
}

// spawn places a fresh piece of kind k. A spawn that overlaps the stack
// tops the session out.
func (s *Session) spawn(k piece.Kind) {
	s.active = piece.New(k)
	s.canHold = true
	s.spin = srs.NoSpin
	s.actions = 0
	s.lowest = s.active.Row
	s.lastFall = s.now
	s.grounded = false

	if !s.board.Valid(s.active, 0, 0) {
		s.end(false)
		return
	}
	s.checkGround()
}

func (s *Session) end(completed bool) {
	if s.over {
		return
	}
	s.over = true
	s.completed = completed
}

// End finishes the session from outside, as the match does for the
// survivor of a versus game. It has no effect once the session is over.
func (s *Session) End(completed bool) {
	s.end(completed)
}

// Board returns a copy of the locked cells.
func (s *Session) Board() board.Board { return s.board }

// Active returns the falling piece. It is meaningless before Started.
func (s *Session) Active() piece.Piece { return s.active }

// Ghost returns where the active piece would land.
func (s *Session) Ghost() piece.Piece { return s.board.Ghost(s.active) }

// Held returns the held kind, or piece.Empty.
func (s *Session) Held() piece.Kind { return s.held }

// CanHold reports whether Hold is available for the current piece.
func (s *Session) CanHold() bool { return s.canHold }

// Next returns the next n queued kinds.
func (s *Session) Next(n int) []piece.Kind { return s.queue.Peek(n) }

// Mode returns the rules the session plays under.
func (s *Session) Mode() Mode { return s.mode }

// Handling returns the movement timings in use.
func (s *Session) Handling() Handling { return s.handling }

// Score returns the points scored so far.
func (s *Session) Score() int { return s.tracker.Score }

// Combo returns the number of consecutive clearing locks after the first.
func (s *Session) Combo() int { return s.tracker.Combo }

// BackToBack reports whether the most recent clear extended a chain of
// difficult clears.
func (s *Session) BackToBack() bool { return s.tracker.BackToBack }

// Lines returns the total number of cleared lines.
func (s *Session) Lines() int { return s.lines }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// Pieces returns how many pieces have locked.
func (s *Session) Pieces() int { return s.pieces }

// Attack returns the garbage lines earned by clears, including the ones
// spent cancelling incoming garbage.
func (s *Session) Attack() int { return s.attack }

// GarbageReceived returns the garbage rows inserted into the board.
func (s *Session) GarbageReceived() int { return s.received }

// PlayTime returns the time played since the countdown ended.
func (s *Session) PlayTime() time.Duration { return s.now }

// Countdown returns the time left before the first piece spawns.
func (s *Session) Countdown() time.Duration { return s.countdown }

// Started reports whether the countdown has ended.
func (s *Session) Started() bool { return s.started }

// Over reports whether the session has ended, by top out or completion.
func (s *Session) Over() bool { return s.over }

// Completed reports whether the session ended by reaching its goal.
func (s *Session) Completed() bool { return s.over && s.completed }

// Grounded reports whether the active piece rests on something.
func (s *Session) Grounded() bool { return s.grounded }

// Gravity returns the fall speed in rows per second.
func (s *Session) Gravity() float64 { return s.gravity }

// Actions returns the moves and rotations made while grounded since the
// piece last reached a new lowest row.
func (s *Session) Actions() int { return s.actions }

// Spin returns the T-spin state of the last rotation.
func (s *Session) Spin() srs.Spin { return s.spin }

// LinesToNextLevel returns the lines still needed to level up.
func (s *Session) LinesToNextLevel() int { return LinesPerLevel - s.levelLines }

// Inbound returns a copy of the garbage waiting to be inserted.
func (s *Session) Inbound() []GarbageUnit { return slices.Clone(s.inbound) }

// OutboundLen returns the number of attacks not yet drained.
func (s *Session) OutboundLen() int { return len(s.outbound) }

// LockTimer returns how long the active piece has been grounded.
func (s *Session) LockTimer() time.Duration { return s.lockElapsed() }

// RemainingLines returns the lines left to clear in 40 lines.
func (s *Session) RemainingLines() int { return max(FortyLinesGoal-s.lines, 0) }

// LastClear returns the most recent lock that scored.
func (s *Session) LastClear() (Clear, bool) {
	return s.lastClear, s.hasClear
}

func (s *Session) lockElapsed() time.Duration {
	if !s.grounded {
		return 0
	}
	return s.now - s.groundedAt
}

// Clone returns an independent copy of the session, including its
// generators, so the copy plays out identically under the same inputs.
func (s *Session) Clone() *Session {
	c := *s
	c.queue = s.queue.Clone()
	c.inbound = slices.Clone(s.inbound)
	c.outbound = slices.Clone(s.outbound)
	c.lastClear.Rows = slices.Clone(s.lastClear.Rows)
	return &c
}
