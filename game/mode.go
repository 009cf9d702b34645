package game

import (
	"fmt"
	"math"
	"strings"
)

//go:generate go tool stringer -type=Mode

// Mode selects the rules a session ends under.
type Mode int

const (
	// Marathon levels up every LinesPerLevel lines and is completed after
	// clearing the last level.
	Marathon Mode = iota
	// FortyLines is completed once FortyLinesGoal lines are cleared.
	FortyLines
	// Survival never completes; garbage rises at a fixed rate.
	Survival
	// Versus exchanges garbage with an opponent.
	Versus
)

const (
	MaxLevel       = 15
	LinesPerLevel  = 10
	FortyLinesGoal = 40
)

// Modes lists every mode in declaration order.
var Modes = [...]Mode{Marathon, FortyLines, Survival, Versus}

// Slug is the short lowercase name used on command lines and in file names.
func (m Mode) Slug() string {
	switch m {
	case Marathon:
		return "marathon"
	case FortyLines:
		return "40l"
	case Survival:
		return "survival"
	case Versus:
		return "versus"
	}
	return strings.ToLower(m.String())
}

// ParseMode accepts either a slug or the mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(s, m.Slug()) || strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Gravity returns the fall rate in cells per second for a mode at a level.
func Gravity(m Mode, level int) float64 {
	if m != Marathon {
		return 1
	}
	l := float64(max(level, 1) - 1)
	return 1 / math.Pow(0.8-l*0.007, l)
}
