package match_test

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/plus3/tetra/board"
	"github.com/plus3/tetra/game"
	"github.com/plus3/tetra/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

func newVersus(t *testing.T, opts ...match.Option) (*match.Match, *match.Player, *match.Player) {
	t.Helper()
	m := match.New(game.Versus, append([]match.Option{match.WithSeed(7)}, opts...)...)
	alice, err := m.Join("alice", nil)
	require.NoError(t, err)
	bob, err := m.Join("bob", nil)
	require.NoError(t, err)
	return m, alice, bob
}

func TestJoin(t *testing.T) {
	m, alice, bob := newVersus(t)

	assert.Equal(t, 0, alice.Index)
	assert.Equal(t, 1, bob.Index)
	assert.Equal(t, game.Versus, bob.Session.Mode())
	assert.Equal(t, alice.Session.Next(game.NextPreview), bob.Session.Next(game.NextPreview), "players share a piece sequence")

	_, err := m.Join("carol", nil)
	assert.Error(t, err)

	opp, ok := m.Opponent(alice)
	require.True(t, ok)
	assert.Same(t, bob, opp)
}

func TestJoinAppliesSessionOptions(t *testing.T) {
	m := match.New(game.Marathon, match.WithSeed(3))
	p, err := m.Join("solo", nil, game.WithCountdown(time.Second))
	require.NoError(t, err)
	assert.False(t, p.Session.Started())
}

func TestGarbageSystemHandsOver(t *testing.T) {
	m, alice, bob := newVersus(t)
	garbage := &match.GarbageSystem{}
	s := match.NewScheduler(m)
	s.Register(&match.SessionSystem{})
	s.Register(garbage)

	require.Equal(t, 3, alice.Session.SendGarbage(3))
	s.Once(frame)

	assert.Equal(t, 0, alice.Session.OutboundLen())
	assert.Equal(t, 3, bob.Session.IncomingGarbage())
	assert.Equal(t, 3, garbage.Sent[0])
	assert.Zero(t, garbage.Sent[1])

	// Bob's counter attack cancels incoming rows before anything is sent.
	assert.Zero(t, bob.Session.SendGarbage(2))
	s.Once(frame)
	assert.Equal(t, 1, bob.Session.IncomingGarbage())
	assert.Zero(t, alice.Session.IncomingGarbage())
}

func TestGarbageSystemIgnoresOtherModes(t *testing.T) {
	m := match.New(game.Marathon, match.WithSeed(7))
	a, err := m.Join("a", nil)
	require.NoError(t, err)
	b, err := m.Join("b", nil)
	require.NoError(t, err)

	assert.Zero(t, a.Session.SendGarbage(4))
	match.NewGameplayScheduler(m).Once(frame)
	assert.Zero(t, b.Session.IncomingGarbage())
}

func TestSurvivalAddsRowEverySecond(t *testing.T) {
	m := match.New(game.Survival, match.WithSeed(5))
	p, err := m.Join("solo", nil)
	require.NoError(t, err)
	s := match.NewGameplayScheduler(m)

	s.Once(match.SurvivalInterval)
	assert.Equal(t, 1, p.Session.GarbageReceived())
	b := p.Session.Board()
	assert.False(t, b.RowEmpty(board.Rows-1))

	for range 5 {
		s.Once(100 * time.Millisecond)
	}
	assert.Equal(t, 1, p.Session.GarbageReceived())
	for range 5 {
		s.Once(100 * time.Millisecond)
	}
	assert.Equal(t, 2, p.Session.GarbageReceived())
}

func TestSurvivalWaitsForCountdown(t *testing.T) {
	m := match.New(game.Survival, match.WithSeed(5))
	p, err := m.Join("solo", nil, game.WithCountdown(2*time.Second))
	require.NoError(t, err)
	s := match.NewGameplayScheduler(m)

	s.Once(time.Second)
	s.Once(time.Second)
	assert.Zero(t, p.Session.GarbageReceived())
	s.Once(time.Second)
	assert.Equal(t, 1, p.Session.GarbageReceived())
}

func TestVersusTopOutEndsMatch(t *testing.T) {
	var buf bytes.Buffer
	m, alice, bob := newVersus(t, match.WithLogger(log.New(&buf, "", 0)))
	finished := 0
	m.OnFinish = func(*match.Match) { finished++ }
	s := match.NewGameplayScheduler(m)

	s.Once(frame)
	assert.False(t, m.Finished())

	bob.Session.End(false)
	s.Once(frame)
	s.Once(frame)

	assert.True(t, m.Finished())
	assert.Equal(t, 1, finished)
	assert.True(t, alice.Session.Completed())
	assert.False(t, bob.Session.Completed())
	winner, ok := m.Winner()
	require.True(t, ok)
	assert.Same(t, alice, winner)

	assert.Contains(t, buf.String(), "bob topped out")
	assert.Contains(t, buf.String(), "alice wins")
}

func TestSoloMatchEndsWithSession(t *testing.T) {
	m := match.New(game.FortyLines, match.WithSeed(2))
	p, err := m.Join("solo", nil)
	require.NoError(t, err)
	s := match.NewGameplayScheduler(m)

	s.Once(frame)
	assert.False(t, m.Finished())

	p.Session.End(false)
	s.Once(frame)
	assert.True(t, m.Finished())
	_, ok := m.Winner()
	assert.False(t, ok)
}

func TestControlSystemFeedsSession(t *testing.T) {
	m := match.New(game.Marathon, match.WithSeed(9))
	var keys game.Keys
	polls := 0
	p, err := m.Join("tapper", match.ControllerFunc(func(s *game.Session, dt time.Duration) game.Snapshot {
		polls++
		keys.Advance()
		keys.Set(game.HardDrop, polls == 1)
		return keys
	}))
	require.NoError(t, err)
	s := match.NewGameplayScheduler(m)

	s.Once(frame)
	assert.Equal(t, 1, p.Session.Pieces())
	assert.True(t, p.Snapshot().Held(game.HardDrop))

	s.Once(frame)
	assert.Equal(t, 2, polls)
	assert.Equal(t, 1, p.Session.Pieces())
}
