package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/tetra/bot"
	"github.com/plus3/tetra/game"
	"github.com/plus3/tetra/match"
)

const frameInterval = 16 * time.Millisecond

type tickMsg time.Time

// Model is the bubbletea model of a spectated bot match.
type Model struct {
	mode       game.Mode
	difficulty bot.Difficulty
	seed       uint64
	round      uint64

	match     *match.Match
	scheduler *match.Scheduler
	lastTick  time.Time
	speed     int
	paused    bool

	width   int
	height  int
	wins    [match.MaxPlayers]int
	counted bool
	err     error
}

func NewModel(mode game.Mode, difficulty bot.Difficulty, seed uint64) Model {
	m := Model{mode: mode, difficulty: difficulty, seed: seed, speed: 1}
	m.newMatch()
	return m
}

func (m *Model) newMatch() {
	var opts []match.Option
	if m.seed != 0 {
		// Every round of a seeded run is reproducible on its own.
		opts = append(opts, match.WithSeed(m.seed+m.round))
	}
	m.round++

	mt := match.New(m.mode, opts...)
	seats := 1
	if m.mode == game.Versus {
		seats = 2
	}
	for i := range seats {
		d := bot.NewDriver(m.difficulty)
		name := fmt.Sprintf("bot %d", i+1)
		if _, err := mt.Join(name, d, game.WithCountdown(time.Second)); err != nil {
			m.err = err
			return
		}
	}
	m.match = mt
	m.scheduler = match.NewGameplayScheduler(mt)
	m.lastTick = time.Time{}
	m.counted = false
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "r", "enter":
			m.newMatch()
		case "+", "=":
			m.speed = min(m.speed*2, 16)
		case "-":
			m.speed = max(m.speed/2, 1)
		}
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		dt := frameInterval
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick)
		}
		m.lastTick = now
		if !m.paused && m.scheduler != nil && !m.match.Finished() {
			// Fast forward in frame sized steps so the bots keep their pace.
			for range m.speed {
				m.scheduler.Once(dt)
			}
		}
		if m.match != nil && m.match.Finished() && !m.counted {
			m.counted = true
			if w, ok := m.match.Winner(); ok && m.mode == game.Versus {
				m.wins[w.Index]++
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return "error: " + m.err.Error() + "\n"
	}
	return center(m.width, m.height, renderMatch(m))
}
