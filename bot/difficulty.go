package bot

import (
	"fmt"
	"strings"
	"time"
)

//go:generate go tool stringer -type=Difficulty

// Difficulty sets how quickly a Driver feeds inputs.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Insane
)

var paces = [...]time.Duration{
	Easy:   400 * time.Millisecond,
	Medium: 200 * time.Millisecond,
	Hard:   100 * time.Millisecond,
	Insane: 0,
}

// Pace is the delay between two inputs. Zero means one input per tick.
func (d Difficulty) Pace() time.Duration {
	if d < 0 || int(d) >= len(paces) {
		return 0
	}
	return paces[d]
}

// ParseDifficulty accepts a difficulty name in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	for d := Easy; d <= Insane; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}
