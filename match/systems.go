package match

import (
	"time"

	"github.com/plus3/tetra/game"
)

// SurvivalInterval is how often survival pushes a garbage row.
const SurvivalInterval = time.Second

// ControlSystem polls every controller into the player's snapshot. Players
// without a controller send no input.
type ControlSystem struct{}

func (s *ControlSystem) Execute(frame *Frame) {
	for _, p := range frame.Match.Players {
		p.snap = nil
		if p.Controller != nil {
			p.snap = p.Controller.Poll(p.Session, frame.DeltaTime)
		}
	}
}

// SessionSystem advances every session by the frame time.
type SessionSystem struct{}

func (s *SessionSystem) Execute(frame *Frame) {
	for _, p := range frame.Match.Players {
		p.Session.Update(frame.DeltaTime, p.snap)
	}
}

// GarbageSystem moves the garbage each versus player sent this frame into
// the opponent's queue. The handoff is deferred so both players read the
// frame in the same state.
type GarbageSystem struct {
	// Sent counts rows handed over per player.
	Sent [MaxPlayers]int
}

func (s *GarbageSystem) Execute(frame *Frame) {
	m := frame.Match
	if m.Mode != game.Versus || m.finished {
		return
	}
	for _, p := range m.Players {
		target, ok := m.Opponent(p)
		if !ok {
			continue
		}
		units := p.Session.DrainOutbound()
		if len(units) == 0 {
			continue
		}
		for _, u := range units {
			s.Sent[p.Index] += u.Rows
		}
		frame.Commands.Defer(func() {
			for _, u := range units {
				target.Session.ReceiveGarbage(u)
			}
		})
	}
}

// SurvivalSystem pushes a garbage row with a random hole under every live
// survival session once per SurvivalInterval of play time. The countdown
// does not count.
type SurvivalSystem struct {
	rows [MaxPlayers]int
}

func (s *SurvivalSystem) Execute(frame *Frame) {
	if frame.Match.Mode != game.Survival {
		return
	}
	for _, p := range frame.Match.Players {
		due := int(p.Session.PlayTime() / SurvivalInterval)
		for s.rows[p.Index] < due && !p.Session.Over() {
			s.rows[p.Index]++
			p.Session.AddGarbageRow(p.Session.RandomColumn())
		}
	}
}

// OutcomeSystem decides when the match is over. In versus the first top out
// ends the match and the surviving player completes. Otherwise the match
// ends once every session has ended.
type OutcomeSystem struct{}

func (s *OutcomeSystem) Execute(frame *Frame) {
	m := frame.Match
	if m.finished || len(m.Players) == 0 {
		return
	}

	ended := 0
	anyTopOut := false
	for _, p := range m.Players {
		if !p.Session.Over() {
			continue
		}
		ended++
		if !p.Session.Completed() {
			anyTopOut = true
			if !p.toppedOut {
				p.toppedOut = true
				m.logf("%s topped out with %d lines", p.Name, p.Session.Lines())
			}
		}
	}

	if m.Mode == game.Versus && anyTopOut {
		for _, p := range m.Players {
			if !p.Session.Over() {
				p.Session.End(true)
			}
		}
		m.finish()
		return
	}
	if ended == len(m.Players) {
		m.finish()
	}
}
