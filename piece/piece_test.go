package piece_test

import (
	"testing"

	"github.com/plus3/tetra/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpawnsInSpawnOrientation(t *testing.T) {
	for _, k := range piece.Kinds {
		p := piece.New(k)
		assert.Equal(t, piece.SpawnRow, p.Row, k.String())
		assert.Equal(t, piece.SpawnCol, p.Col, k.String())
		assert.Equal(t, 0, p.Rotation, k.String())
		assert.Equal(t, piece.Shape(k, 0), p.Blocks, k.String())
	}
}

func TestRotatedFourTimesIsIdentity(t *testing.T) {
	for _, k := range piece.Kinds {
		p := piece.New(k)
		r := p
		for range 4 {
			r = r.Rotated((r.Rotation + 1) % 4)
		}
		assert.Equal(t, p, r, k.String())
	}
}

func TestShapesHaveFourDistinctCells(t *testing.T) {
	for _, k := range piece.Kinds {
		for r := range 4 {
			seen := map[piece.Offset]bool{}
			for _, b := range piece.Shape(k, r) {
				seen[b] = true
			}
			assert.Len(t, seen, 4, "%s rotation %d", k, r)
		}
	}
}

func TestTPointsUpAtSpawn(t *testing.T) {
	p := piece.New(piece.T)
	assert.Contains(t, p.Blocks, piece.Offset{Row: -1, Col: 0})
	for _, b := range p.Blocks {
		assert.LessOrEqual(t, b.Row, 0)
	}
}

func TestCellsAreAbsolute(t *testing.T) {
	p := piece.New(piece.O).Moved(3, -2)
	cells := p.Cells()
	assert.Equal(t, piece.Offset{Row: piece.SpawnRow + 2, Col: piece.SpawnCol - 2}, cells[0])
}

func TestRotatedOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() {
		piece.New(piece.T).Rotated(4)
	})
}

func TestQueueSevenBag(t *testing.T) {
	q := piece.NewQueue(1, 2)
	for bag := 0; bag < 20; bag++ {
		seen := map[piece.Kind]int{}
		for range piece.BagSize {
			seen[q.Pop()]++
		}
		require.Len(t, seen, 7, "bag %d", bag)
		for k, n := range seen {
			assert.Equal(t, 1, n, "bag %d kind %s", bag, k)
		}
		assert.GreaterOrEqual(t, q.Len(), piece.BagSize)
	}
}

func TestQueueSeedIsReproducible(t *testing.T) {
	a := piece.NewQueue(7, 7)
	b := piece.NewQueue(7, 7)
	for range 50 {
		assert.Equal(t, a.Pop(), b.Pop())
	}
}

func TestQueueCloneIsIndependent(t *testing.T) {
	q := piece.NewQueue(3, 4)
	q.Pop()
	c := q.Clone()

	want := q.Peek(5)
	assert.Equal(t, want, c.Peek(5))

	var fromQ, fromC []piece.Kind
	for range 30 {
		fromQ = append(fromQ, q.Pop())
	}
	assert.Equal(t, want, c.Peek(5))
	for range 30 {
		fromC = append(fromC, c.Pop())
	}
	assert.Equal(t, fromQ, fromC)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "T", piece.T.String())
	assert.Equal(t, ".", piece.Empty.String())
	assert.True(t, piece.I.Playable())
	assert.False(t, piece.Garbage.Playable())
	assert.True(t, piece.S.Symmetric())
	assert.False(t, piece.T.Symmetric())
}
