package game

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/tetra/board"
)

const (
	// GarbageDelay is how long received garbage stays cancellable before it
	// can enter the board.
	GarbageDelay = 500 * time.Millisecond
	// GarbageCap is the most garbage rows inserted by a single lock.
	GarbageCap = 8
)

// GarbageUnit is a burst of garbage rows sharing one hole column.
type GarbageUnit struct {
	Column  int
	Rows    int
	Pending bool
	SentAt  time.Duration
}

// SendGarbage spends n attack rows. Pending inbound garbage is cancelled
// first, oldest unit first. In Versus the remainder is queued outbound with
// a random hole column. It returns the rows actually sent.
func (s *Session) SendGarbage(n int) int {
	kept := s.inbound[:0]
	for _, u := range s.inbound {
		if n > 0 && u.Pending {
			c := min(n, u.Rows)
			u.Rows -= c
			n -= c
		}
		if u.Rows > 0 {
			kept = append(kept, u)
		}
	}
	clear(s.inbound[len(kept):])
	s.inbound = kept

	if n <= 0 || s.mode != Versus {
		return 0
	}
	s.outbound = append(s.outbound, GarbageUnit{
		Column:  s.holeColumn(),
		Rows:    n,
		Pending: true,
		SentAt:  s.now,
	})
	return n
}

// ReceiveGarbage queues a unit from the opponent. The unit is restamped with
// this session's clock so the arrival delay runs on the receiver's time.
func (s *Session) ReceiveGarbage(u GarbageUnit) {
	if u.Rows <= 0 {
		return
	}
	u.Pending = true
	u.SentAt = s.now
	s.inbound = append(s.inbound, u)
}

// DrainOutbound returns and forgets the garbage waiting to be sent.
func (s *Session) DrainOutbound() []GarbageUnit {
	out := s.outbound
	s.outbound = nil
	return out
}

// IncomingGarbage is the total of rows queued against this session.
func (s *Session) IncomingGarbage() int {
	n := 0
	for _, u := range s.inbound {
		n += u.Rows
	}
	return n
}

// AddGarbageRow inserts one garbage row at once, bypassing the queue.
func (s *Session) AddGarbageRow(hole int) {
	if s.over || !s.started {
		return
	}
	if s.insertRow(hole) {
		s.end(false)
	}
}

func (s *Session) holeColumn() int {
	return rand.New(&s.rng).IntN(board.Columns)
}

// RandomColumn draws a hole column from the session generator.
func (s *Session) RandomColumn() int {
	return s.holeColumn()
}

func (s *Session) ripenGarbage() {
	for i := range s.inbound {
		u := &s.inbound[i]
		if u.Pending && s.now-u.SentAt >= GarbageDelay {
			u.Pending = false
		}
	}
}

// materializeGarbage moves ready rows into the board, up to GarbageCap. A
// unit only partly inserted keeps its remainder. It reports whether the
// stack was pushed out of the top.
func (s *Session) materializeGarbage() bool {
	budget := GarbageCap
	for len(s.inbound) > 0 && budget > 0 {
		u := &s.inbound[0]
		if u.Pending {
			break
		}
		for u.Rows > 0 && budget > 0 {
			u.Rows--
			budget--
			if s.insertRow(u.Column) {
				return true
			}
		}
		if u.Rows == 0 {
			s.inbound = s.inbound[1:]
		}
	}
	return false
}

// insertRow pushes a garbage row under the stack and keeps the active piece
// clear of it.
func (s *Session) insertRow(hole int) bool {
	wasGrounded := s.grounded
	overflow := s.board.InsertGarbage(hole)
	s.received++
	if wasGrounded || !s.board.Valid(s.active, 0, 0) {
		s.active = s.active.Moved(-1, 0)
		s.lowest--
	}
	s.checkGround()
	return overflow
}
