// Package match hosts one or two game sessions and advances them together,
// one frame at a time, through a Scheduler of systems. It owns everything
// that crosses session boundaries: garbage handoff between versus players,
// the rising garbage of survival and deciding who won.
package match

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/plus3/tetra/game"
)

// MaxPlayers is the number of sessions a match can host.
const MaxPlayers = 2

// Controller feeds a player's inputs. It is polled once per frame before
// the session is updated. bot.Driver is a Controller.
type Controller interface {
	Poll(s *game.Session, dt time.Duration) game.Snapshot
}

// ControllerFunc adapts a function to a Controller.
type ControllerFunc func(s *game.Session, dt time.Duration) game.Snapshot

func (f ControllerFunc) Poll(s *game.Session, dt time.Duration) game.Snapshot {
	return f(s, dt)
}

// Player is one seat of a match.
type Player struct {
	Index      int
	Name       string
	Session    *game.Session
	Controller Controller

	snap      game.Snapshot
	toppedOut bool
}

// Snapshot is the input polled for the player this frame.
func (p *Player) Snapshot() game.Snapshot {
	return p.snap
}

// Match is a set of players sharing a mode and a clock.
type Match struct {
	ID      uuid.UUID
	Mode    game.Mode
	Players []*Player

	// Logger receives game over and match end events when set.
	Logger *log.Logger
	// OnFinish is called once, from the frame in which the match ends.
	OnFinish func(*Match)

	rng      *rand.Rand
	seed     uint64
	finished bool
	winner   *Player
	started  time.Time
}

// Option configures a Match.
type Option func(*Match)

// WithSeed makes piece sequences and garbage holes reproducible.
func WithSeed(seed uint64) Option {
	return func(m *Match) {
		m.rng = rand.New(rand.NewPCG(seed, seed^0xd6e8feb86659fd93))
	}
}

// WithLogger sets the match logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		m.Logger = l
	}
}

// New creates an empty match in mode m.
func New(mode game.Mode, opts ...Option) *Match {
	m := &Match{
		ID:      uuid.New(),
		Mode:    mode,
		started: time.Now(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	// Every player of a match is dealt the same piece sequence.
	m.seed = m.rng.Uint64()
	return m
}

// Join seats a new player with a fresh session in the match mode. Extra
// session options, such as handling or a countdown, are applied after the
// match's own seed and mode.
func (m *Match) Join(name string, c Controller, opts ...game.Option) (*Player, error) {
	if len(m.Players) >= MaxPlayers {
		return nil, fmt.Errorf("match %s is full", m.ID)
	}
	base := []game.Option{game.WithSeed(m.seed), game.WithMode(m.Mode)}
	p := &Player{
		Index:      len(m.Players),
		Name:       name,
		Session:    game.New(append(base, opts...)...),
		Controller: c,
	}
	m.Players = append(m.Players, p)
	return p, nil
}

// Opponent returns the other player of a two player match.
func (m *Match) Opponent(p *Player) (*Player, bool) {
	if len(m.Players) != MaxPlayers {
		return nil, false
	}
	return m.Players[1-p.Index], true
}

// Finished reports whether the match has ended.
func (m *Match) Finished() bool {
	return m.finished
}

// Winner is the player who completed their session, if any.
func (m *Match) Winner() (*Player, bool) {
	return m.winner, m.winner != nil
}

// Elapsed is the wall time since the match was created.
func (m *Match) Elapsed() time.Duration {
	return time.Since(m.started)
}

func (m *Match) logf(format string, args ...any) {
	if m.Logger != nil {
		m.Logger.Printf("match %s: "+format, append([]any{m.ID}, args...)...)
	}
}

func (m *Match) finish() {
	if m.finished {
		return
	}
	m.finished = true
	for _, p := range m.Players {
		if p.Session.Completed() {
			m.winner = p
			break
		}
	}
	if m.winner != nil {
		m.logf("finished, %s wins", m.winner.Name)
	} else {
		m.logf("finished without a winner")
	}
	if m.OnFinish != nil {
		m.OnFinish(m)
	}
}
