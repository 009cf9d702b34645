package scoring

// Perfect clear bonuses, before the level multiplier.
const (
	perfectSingle     = 800
	perfectDouble     = 1200
	perfectTriple     = 1800
	perfectTetris     = 2000
	perfectTetrisB2B  = 3200
	comboPointsPerHit = 50
)

// Event is the outcome of scoring a single lock.
type Event struct {
	Type         ScoreType
	Scored       bool
	Points       int
	Combo        int
	BackToBack   bool
	PerfectClear bool
}

// Tracker accumulates score together with the combo and back-to-back
// chains that span consecutive locks.
type Tracker struct {
	Score int
	// Combo counts consecutive line-clearing locks after the first.
	Combo int
	// BackToBack is set when the most recent clear extended a chain of
	// difficult clears.
	BackToBack bool
	// PerfectClear is set when the most recent clear emptied the field.
	PerfectClear bool

	prevClear     bool
	lastDifficult bool
}

// Apply scores one lock. st and ok come from Classify; perfect reports
// whether the bottom row was empty after the clear.
func (t *Tracker) Apply(st ScoreType, ok bool, level int, perfect bool) Event {
	if !ok {
		t.prevClear = false
		t.Combo = 0
		return Event{Combo: t.Combo}
	}

	ev := Event{Type: st, Scored: true}
	points := st.Points()

	if st.Clears() {
		if t.prevClear {
			t.Combo++
		}
		t.prevClear = true
	} else {
		t.prevClear = false
		t.Combo = 0
	}

	switch {
	case st.Difficult():
		if t.lastDifficult {
			points = points * 3 / 2
			t.BackToBack = true
		} else {
			t.BackToBack = false
		}
		t.lastDifficult = true
	case st.Clears():
		t.lastDifficult = false
		t.BackToBack = false
	}
	ev.BackToBack = t.BackToBack && st.Difficult()

	points += comboPointsPerHit * t.Combo

	t.PerfectClear = perfect && st.Clears()
	if t.PerfectClear {
		switch st {
		case Single:
			points += perfectSingle
		case Double:
			points += perfectDouble
		case Triple:
			points += perfectTriple
		case Tetris:
			if ev.BackToBack {
				points += perfectTetrisB2B
			} else {
				points += perfectTetris
			}
		}
	}

	ev.Points = points * level
	ev.Combo = t.Combo
	ev.PerfectClear = t.PerfectClear
	t.Score += ev.Points
	return ev
}

// Add credits points that are not tied to a clear, such as drop distance.
func (t *Tracker) Add(points int) {
	t.Score += points
}

// Reset clears the score and both chains.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
