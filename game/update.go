package game

import (
	"math"
	"time"

	"github.com/plus3/tetra/board"
	"github.com/plus3/tetra/piece"
	"github.com/plus3/tetra/scoring"
	"github.com/plus3/tetra/srs"
)

// Update advances the session by elapsed and applies the inputs in snap.
// A nil snapshot means nothing is pressed.
func (s *Session) Update(elapsed time.Duration, snap Snapshot) {
	if s.over {
		return
	}
	if snap == nil {
		snap = Keys{}
	}
	if !s.started {
		s.countdown -= elapsed
		if s.countdown <= 0 {
			s.countdown = 0
			s.start()
		}
		return
	}

	s.now += elapsed
	s.ripenGarbage()

	s.applyGravity(snap)
	if s.over {
		return
	}
	s.handleInput(snap)
	if s.over {
		return
	}
	s.autoRepeat(snap)
	if s.over {
		return
	}
	if s.grounded && (s.now-s.groundedAt >= LockDelay || s.actions >= MaxActions) {
		s.lock()
	}
}

func (s *Session) fallInterval(soft bool) time.Duration {
	rate := s.gravity
	if soft {
		rate += s.handling.SoftDropRate
	}
	if math.IsInf(rate, 1) {
		return 0
	}
	return time.Duration(float64(time.Second) / rate)
}

func (s *Session) applyGravity(snap Snapshot) {
	if s.grounded {
		s.lastFall = s.now
		return
	}
	soft := snap.Held(SoftDrop)
	interval := s.fallInterval(soft)
	if interval == 0 {
		for s.fall(soft) {
		}
		s.lastFall = s.now
		return
	}
	if snap.JustPressed(SoftDrop) {
		s.lastFall = s.now - interval
	}
	for !s.grounded && s.now-s.lastFall >= interval {
		s.lastFall += interval
		s.fall(soft)
	}
	if s.grounded {
		s.lastFall = s.now
	}
}

// fall moves the active piece down one row. Soft-dropped rows score a point
// each.
func (s *Session) fall(soft bool) bool {
	if !s.board.Valid(s.active, 0, 1) {
		return false
	}
	s.active = s.active.Moved(1, 0)
	s.spin = srs.NoSpin
	if soft {
		s.tracker.Add(1)
	}
	s.trackLowest()
	s.checkGround()
	return true
}

func (s *Session) trackLowest() {
	if s.active.Row > s.lowest {
		s.lowest = s.active.Row
		s.actions = 0
	}
}

// checkGround refreshes the grounded flag and starts the lock clock when the
// piece has just landed.
func (s *Session) checkGround() {
	was := s.grounded
	s.grounded = !s.board.Valid(s.active, 0, 1)
	if s.grounded && !was {
		s.groundedAt = s.now
	}
}

// moved is called after every successful shift or rotation.
func (s *Session) moved(wasGrounded bool) {
	s.trackLowest()
	s.checkGround()
	if !wasGrounded {
		return
	}
	s.groundedAt = s.now
	s.actions++
	if s.grounded && s.actions >= MaxActions {
		s.lock()
	}
}

func (s *Session) shift(dir int) bool {
	if s.over || !s.board.Valid(s.active, dir, 0) {
		return false
	}
	was := s.grounded
	s.active = s.active.Moved(0, dir)
	s.spin = srs.NoSpin
	s.moved(was)
	return true
}

func (s *Session) rotate(d srs.Direction) bool {
	p, res, ok := srs.Rotate(&s.board, s.active, d)
	if !ok {
		return false
	}
	was := s.grounded
	s.active = p
	s.spin = res.Spin
	s.moved(was)
	return true
}

func (s *Session) hardDrop() {
	n := s.board.Drop(s.active)
	if n > 0 {
		s.active = s.active.Moved(n, 0)
		s.spin = srs.NoSpin
	}
	s.tracker.Add(2 * n)
	s.lock()
}

func (s *Session) hold() {
	if !s.canHold {
		return
	}
	cur := s.active.Kind
	if s.held == piece.Empty {
		s.held = cur
		s.spawn(s.queue.Pop())
	} else {
		next := s.held
		s.held = cur
		s.spawn(next)
	}
	s.canHold = false
}

func (s *Session) handleInput(snap Snapshot) {
	if snap.JustPressed(MoveLeft) {
		s.startShift(-1)
	}
	if snap.JustPressed(MoveRight) {
		s.startShift(1)
	}
	if snap.JustReleased(MoveLeft) {
		s.stopShift(-1, snap.Held(MoveRight))
	}
	if snap.JustReleased(MoveRight) {
		s.stopShift(1, snap.Held(MoveLeft))
	}

	if snap.JustPressed(HardDrop) {
		s.hardDrop()
		if s.over {
			return
		}
	}

	for _, r := range [...]struct {
		a Action
		d srs.Direction
	}{{RotateCW, srs.CW}, {RotateCCW, srs.CCW}, {Rotate180, srs.Half}} {
		if snap.JustPressed(r.a) {
			s.rotate(r.d)
			if s.over {
				return
			}
		}
	}

	if snap.JustPressed(Hold) {
		s.hold()
	}
}

func (s *Session) startShift(dir int) {
	s.dir = dir
	s.dasStart = s.now
	s.dasCharged = false
	s.shift(dir)
}

func (s *Session) stopShift(dir int, otherHeld bool) {
	if s.dir != dir {
		return
	}
	if otherHeld {
		s.dir = -dir
		s.dasStart = s.now
		s.dasCharged = false
		return
	}
	s.dir = 0
	s.dasCharged = false
}

func (s *Session) autoRepeat(snap Snapshot) {
	if s.dir == 0 {
		return
	}
	key := MoveRight
	if s.dir < 0 {
		key = MoveLeft
	}
	if !snap.Held(key) {
		s.dir = 0
		s.dasCharged = false
		return
	}

	if !s.dasCharged {
		if s.now-s.dasStart < s.handling.DAS {
			return
		}
		s.dasCharged = true
		s.arrStart = s.dasStart + s.handling.DAS
		if s.handling.ARR > 0 {
			s.shift(s.dir)
		}
	}
	if s.handling.ARR <= 0 {
		for s.shift(s.dir) {
		}
		return
	}
	for s.now-s.arrStart >= s.handling.ARR {
		s.arrStart += s.handling.ARR
		if !s.shift(s.dir) {
			s.arrStart = s.now
			return
		}
	}
}

// lock writes the active piece into the board, scores it, exchanges garbage,
// checks the mode goal and spawns the next piece.
func (s *Session) lock() {
	s.board.Lock(s.active)
	rows := s.board.ClearLinesIndexed()
	n := len(rows)

	st, ok := scoring.Classify(n, s.spin)
	perfect := n > 0 && s.board.RowEmpty(board.Rows-1)
	ev := s.tracker.Apply(st, ok, s.level, perfect)
	if ok {
		s.lastClear = Clear{Event: ev, Rows: rows, At: s.now}
		s.hasClear = true
		if atk := scoring.Attack(st, ev.BackToBack, ev.Combo); atk > 0 {
			s.attack += atk
			s.SendGarbage(atk)
		}
	}

	if s.materializeGarbage() {
		s.end(false)
		return
	}

	s.pieces++
	s.lines += n
	s.levelLines += n
	s.checkGoal()
	if s.over {
		return
	}
	s.spawn(s.queue.Pop())
}

func (s *Session) checkGoal() {
	switch s.mode {
	case Marathon:
		for s.levelLines >= LinesPerLevel {
			s.levelLines -= LinesPerLevel
			if s.level >= MaxLevel {
				s.end(true)
				return
			}
			s.level++
			s.gravity = Gravity(s.mode, s.level)
		}
	case FortyLines:
		if s.lines >= FortyLinesGoal {
			s.end(true)
		}
	}
}
