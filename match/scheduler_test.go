package match_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/tetra/game"
	"github.com/plus3/tetra/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordSystem struct {
	name  string
	log   *[]string
	delta time.Duration
}

func (s *recordSystem) Execute(frame *match.Frame) {
	*s.log = append(*s.log, s.name)
	s.delta = frame.DeltaTime
}

type deferSystem struct {
	log *[]string
}

func (s *deferSystem) Execute(frame *match.Frame) {
	frame.Commands.Defer(func() { *s.log = append(*s.log, "deferred") })
	*s.log = append(*s.log, "queued")
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		var log []string
		s := match.NewScheduler(match.New(game.Marathon, match.WithSeed(1)))
		first := &recordSystem{name: "first", log: &log}
		s.Register(first)
		s.Register(&recordSystem{name: "second", log: &log})

		s.Once(16 * time.Millisecond)
		s.Once(16 * time.Millisecond)

		assert.Equal(t, []string{"first", "second", "first", "second"}, log)
		assert.Equal(t, 16*time.Millisecond, first.delta)
	})

	t.Run("deferred commands run after every system", func(t *testing.T) {
		var log []string
		s := match.NewScheduler(match.New(game.Marathon, match.WithSeed(1)))
		s.Register(&deferSystem{log: &log})
		s.Register(&recordSystem{name: "after", log: &log})

		s.Once(time.Millisecond)

		assert.Equal(t, []string{"queued", "after", "deferred"}, log)
	})

	t.Run("stats per system", func(t *testing.T) {
		var log []string
		s := match.NewScheduler(match.New(game.Marathon, match.WithSeed(1)))
		s.Register(&recordSystem{name: "a", log: &log})
		s.Register(&deferSystem{log: &log})

		for range 3 {
			s.Once(time.Millisecond)
		}

		stats := s.Stats()
		assert.Equal(t, 2, stats.SystemCount)
		assert.Equal(t, int64(3), stats.Frames)
		assert.Equal(t, int64(6), stats.TotalExecutions)
		require.Len(t, stats.Systems, 2)
		assert.Equal(t, "recordSystem", stats.Systems[0].Name)
		assert.Equal(t, "deferSystem", stats.Systems[1].Name)
		for _, sys := range stats.Systems {
			assert.Equal(t, int64(3), sys.ExecutionCount)
			assert.LessOrEqual(t, sys.MinDuration, sys.MaxDuration)
			assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
		}
	})

	t.Run("stats before any frame", func(t *testing.T) {
		s := match.NewGameplayScheduler(match.New(game.Marathon, match.WithSeed(1)))
		stats := s.Stats()
		assert.Equal(t, 5, stats.SystemCount)
		names := make([]string, len(stats.Systems))
		for i, sys := range stats.Systems {
			names[i] = sys.Name
			assert.Zero(t, sys.MinDuration)
		}
		assert.Equal(t, []string{"ControlSystem", "SessionSystem", "GarbageSystem", "SurvivalSystem", "OutcomeSystem"}, names)
	})

	t.Run("run stops on cancel", func(t *testing.T) {
		var log []string
		s := match.NewScheduler(match.New(game.Marathon, match.WithSeed(1)))
		s.Register(&recordSystem{name: "tick", log: &log})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			s.Run(ctx, time.Millisecond)
			close(done)
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
		assert.NotEmpty(t, log)
	})

	t.Run("run stops when the match finishes", func(t *testing.T) {
		m := match.New(game.Marathon, match.WithSeed(1))
		p, err := m.Join("solo", nil)
		require.NoError(t, err)
		p.Session.End(false)

		s := match.NewGameplayScheduler(m)
		done := make(chan struct{})
		go func() {
			s.Run(context.Background(), time.Millisecond)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after the match finished")
		}
		assert.True(t, m.Finished())
	})
}

func TestCommandsFlushNested(t *testing.T) {
	var log []string
	s := match.NewScheduler(match.New(game.Marathon, match.WithSeed(1)))
	s.Register(systemFunc(func(frame *match.Frame) {
		frame.Commands.Defer(func() {
			log = append(log, "outer")
			frame.Commands.Defer(func() { log = append(log, "inner") })
		})
	}))

	s.Once(time.Millisecond)
	assert.Equal(t, []string{"outer", "inner"}, log)
}

type systemFunc func(*match.Frame)

func (f systemFunc) Execute(frame *match.Frame) { f(frame) }
