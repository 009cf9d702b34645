package match_test

import (
	"fmt"
	"time"

	"github.com/plus3/tetra/bot"
	"github.com/plus3/tetra/game"
	"github.com/plus3/tetra/match"
)

// FrameCounter is a custom system that keeps state between frames.
type FrameCounter struct {
	Frames int
	Played time.Duration
}

func (c *FrameCounter) Execute(frame *match.Frame) {
	c.Frames++
	c.Played += frame.DeltaTime
}

// ExampleScheduler shows the frame loop. Systems run in registration order
// and anything they defer runs after the last one.
func ExampleScheduler() {
	m := match.New(game.Marathon, match.WithSeed(1))
	if _, err := m.Join("solo", nil); err != nil {
		panic(err)
	}

	scheduler := match.NewGameplayScheduler(m)
	counter := &FrameCounter{}
	scheduler.Register(counter)

	for range 60 {
		scheduler.Once(time.Second / 60)
	}

	stats := scheduler.Stats()
	fmt.Printf("frames: %d\n", counter.Frames)
	fmt.Printf("systems: %d\n", stats.SystemCount)
	fmt.Printf("last system: %s\n", stats.Systems[len(stats.Systems)-1].Name)

	// Output:
	// frames: 60
	// systems: 6
	// last system: FrameCounter
}

// ExampleMatch plays a versus match between a bot and a player who hard
// drops every piece into the middle of the board.
func ExampleMatch() {
	m := match.New(game.Versus, match.WithSeed(3))
	m.OnFinish = func(m *match.Match) {
		if w, ok := m.Winner(); ok {
			fmt.Printf("winner: %s\n", w.Name)
		}
	}

	driver := bot.NewDriver(bot.Insane)
	driver.Options.Fast = true
	if _, err := m.Join("bot", driver); err != nil {
		panic(err)
	}

	var keys game.Keys
	dropper := match.ControllerFunc(func(s *game.Session, dt time.Duration) game.Snapshot {
		keys.Advance()
		keys.Set(game.HardDrop, !keys.Held(game.HardDrop))
		return keys
	})
	if _, err := m.Join("dropper", dropper); err != nil {
		panic(err)
	}

	scheduler := match.NewGameplayScheduler(m)
	for frames := 0; !m.Finished() && frames < 10000; frames++ {
		scheduler.Once(time.Second / 60)
	}
	fmt.Printf("finished: %v\n", m.Finished())

	// Output:
	// winner: bot
	// finished: true
}
