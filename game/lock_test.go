package game

import (
	"testing"

	"github.com/plus3/tetra/board"
	"github.com/plus3/tetra/piece"
	"github.com/plus3/tetra/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSingle leaves an I piece above a bottom row that it completes when
// hard dropped. With extra set, row 38 holds a block so the clear is not a
// perfect clear.
func setupSingle(s *Session, extra bool) {
	s.board = board.Board{}
	for c := range 6 {
		s.board[board.Rows-1][c] = piece.Garbage
	}
	if extra {
		s.board[board.Rows-2][0] = piece.Garbage
	}
	s.active = piece.New(piece.I).Moved(0, 3)
	s.grounded = false
}

func TestLockScoresSingle(t *testing.T) {
	s := New(WithSeed(1))
	setupSingle(s, true)
	s.hardDrop()

	require.Equal(t, 1, s.lines)
	// 19 rows of hard drop plus a Single.
	assert.Equal(t, 2*19+100, s.Score())
	clr, ok := s.LastClear()
	require.True(t, ok)
	assert.Equal(t, scoring.Single, clr.Type)
	assert.False(t, clr.PerfectClear)
	assert.Equal(t, []int{board.Rows - 1}, clr.Rows)
	assert.Equal(t, 1, s.pieces)
}

func TestLockPerfectClear(t *testing.T) {
	s := New(WithSeed(1))
	setupSingle(s, false)
	s.hardDrop()

	clr, ok := s.LastClear()
	require.True(t, ok)
	require.True(t, clr.PerfectClear, "expected a perfect clear")
	assert.Equal(t, 2*19+100+800, s.Score())
}

func TestMarathonLevelsUp(t *testing.T) {
	s := New(WithSeed(1), WithMode(Marathon))
	s.levelLines = LinesPerLevel - 1
	setupSingle(s, true)
	s.hardDrop()

	require.Equal(t, 2, s.Level())
	assert.Equal(t, LinesPerLevel, s.LinesToNextLevel())
	assert.Greater(t, s.Gravity(), Gravity(Marathon, 1), "gravity did not increase")
}

func TestMarathonCompletesAfterLastLevel(t *testing.T) {
	s := New(WithSeed(1), WithMode(Marathon), WithLevel(MaxLevel))
	s.levelLines = LinesPerLevel - 1
	setupSingle(s, true)
	s.hardDrop()

	assert.True(t, s.Over())
	assert.True(t, s.Completed())
}

func TestFortyLinesCompletes(t *testing.T) {
	s := New(WithSeed(1), WithMode(FortyLines))
	s.lines = FortyLinesGoal - 1
	setupSingle(s, true)
	s.hardDrop()

	assert.True(t, s.Completed(), "expected 40 lines to complete the game")
	assert.Zero(t, s.RemainingLines())
}

func TestTopOutOnBlockedSpawn(t *testing.T) {
	s := New(WithSeed(1))
	for r := piece.SpawnRow - 1; r <= piece.SpawnRow+1; r++ {
		for c := 1; c < board.Columns; c++ {
			s.board[r][c] = piece.Garbage
		}
	}
	s.spawn(piece.T)

	require.True(t, s.Over(), "expected top out")
	assert.False(t, s.Completed(), "top out must not count as completed")
}

func TestVersusAttackQueuesGarbage(t *testing.T) {
	s := New(WithSeed(1), WithMode(Versus))
	s.board = board.Board{}
	for r := board.Rows - 4; r < board.Rows; r++ {
		for c := range board.Columns {
			if c != 0 {
				s.board[r][c] = piece.Garbage
			}
		}
	}
	s.active = piece.New(piece.I).Rotated(3).Moved(0, -4)
	s.hardDrop()

	require.Equal(t, 4, s.lines, "expected a tetris")
	assert.Equal(t, 4, s.Attack())
	out := s.DrainOutbound()
	require.Len(t, out, 1)
	assert.Equal(t, 4, out[0].Rows)
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.Slug())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("zen")
	assert.Error(t, err)
}
