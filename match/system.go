package match

import "time"

// System is one step of a match frame. Systems may keep their own state
// between frames.
type System interface {
	Execute(frame *Frame)
}

// Frame is what every system sees during one Scheduler.Once call.
type Frame struct {
	DeltaTime time.Duration
	Commands  *Commands
	Match     *Match
}

func newFrame(dt time.Duration, m *Match) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Match:     m,
	}
}
