package bot_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/plus3/tetra/board"
	"github.com/plus3/tetra/bot"
	"github.com/plus3/tetra/game"
	"github.com/plus3/tetra/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bottom(rows ...string) board.Board {
	var b board.Board
	top := board.Rows - len(rows)
	for i, line := range rows {
		for c, ch := range line {
			if ch == 'x' {
				b[top+i][c] = piece.Garbage
			}
		}
	}
	return b
}

var emptyBoardPlacements = map[piece.Kind]int{
	piece.O: 9,
	piece.I: 17,
	piece.S: 17,
	piece.Z: 17,
	piece.T: 34,
	piece.J: 34,
	piece.L: 34,
}

func TestSearchCountsOnEmptyBoard(t *testing.T) {
	for k, want := range emptyBoardPlacements {
		var b board.Board
		outs := bot.Search(&b, piece.New(k))
		assert.Len(t, outs, want, k.String())
	}
}

func TestFastSearchCountsOnEmptyBoard(t *testing.T) {
	for k, want := range emptyBoardPlacements {
		var b board.Board
		outs := bot.FastSearch(&b, piece.New(k))
		assert.Len(t, outs, want, k.String())
	}
}

func TestSearchEndsEverySequenceWithHardDrop(t *testing.T) {
	b := bottom(
		"xx...xxxx.",
		"xxx.xxxxx.",
	)
	for _, k := range piece.Kinds {
		for _, o := range bot.Search(&b, piece.New(k)) {
			require.NotEmpty(t, o.Inputs)
			assert.Equal(t, game.HardDrop, o.Inputs[len(o.Inputs)-1], k.String())
			assert.NotContains(t, o.Inputs[:len(o.Inputs)-1], game.HardDrop)
		}
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	b := bottom(
		"x...xx....",
		"xx.xxxx.xx",
	)
	first := bot.Search(&b, piece.New(piece.T))
	second := bot.Search(&b, piece.New(piece.T))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("search results differ (-first +second):\n%s", diff)
	}
}

func TestSearchFindsTSpinDouble(t *testing.T) {
	b := bottom(
		"...x......",
		"xxx...xxxx",
		"xxxx.xxxxx",
	)
	var found *bot.Outcome
	outs := bot.Search(&b, piece.New(piece.T))
	for i := range outs {
		if outs[i].TSpin && outs[i].Lines == 2 {
			found = &outs[i]
			break
		}
	}
	require.NotNil(t, found, "expected a T-spin double among %d outcomes", len(outs))
	assert.Equal(t, []game.Action{game.RotateCW, game.SoftDrop, game.RotateCW, game.HardDrop}, found.Inputs)

	fast := bot.FastSearch(&b, piece.New(piece.T))
	for _, o := range fast {
		assert.False(t, o.TSpin)
	}
}

func TestSearchRejectsBlockedSpawn(t *testing.T) {
	var b board.Board
	for c := range board.Columns {
		b[piece.SpawnRow][c] = piece.Garbage
	}
	assert.Empty(t, bot.Search(&b, piece.New(piece.T)))
	assert.Empty(t, bot.FastSearch(&b, piece.New(piece.T)))
}

func TestOutcomeFeaturesAreMeasuredAfterClear(t *testing.T) {
	b := bottom(
		"xxxxxx....",
	)
	outs := bot.FastSearch(&b, piece.New(piece.I))
	var clear *bot.Outcome
	for i := range outs {
		if outs[i].Lines == 1 {
			clear = &outs[i]
		}
	}
	require.NotNil(t, clear)
	assert.Zero(t, clear.AggregateHeight)
	assert.Zero(t, clear.Holes)
	assert.Zero(t, clear.Bumpiness)
}

func BenchmarkSearch(b *testing.B) {
	brd := bottom(
		"x...xx....",
		"xx.xxxx.xx",
		"xxxxx.xxxx",
	)
	for b.Loop() {
		bot.Search(&brd, piece.New(piece.T))
	}
}

func BenchmarkFastSearch(b *testing.B) {
	brd := bottom(
		"x...xx....",
		"xx.xxxx.xx",
		"xxxxx.xxxx",
	)
	for b.Loop() {
		bot.FastSearch(&brd, piece.New(piece.T))
	}
}
