package game_test

import (
	"math"
	"testing"
	"time"

	"github.com/plus3/tetra/game"
	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "0:00.000", game.FormatTime(0))
	assert.Equal(t, "0:05.042", game.FormatTime(5*time.Second+42*time.Millisecond))
	assert.Equal(t, "2:03.500", game.FormatTime(2*time.Minute+3500*time.Millisecond))
	assert.Equal(t, "61:00.000", game.FormatTime(61*time.Minute))
}

func TestFormatRates(t *testing.T) {
	assert.Equal(t, "2.50/s", game.FormatPPS(25, 10*time.Second))
	assert.Equal(t, "0.00/s", game.FormatPPS(25, 0))
	assert.Equal(t, "30.00/min", game.FormatAPM(15, 30*time.Second))
	assert.Equal(t, "0.00/min", game.FormatAPM(15, 0))
}

func TestFormatScore(t *testing.T) {
	tests := map[int]string{
		0:          "0",
		999:        "999",
		1000:       "1,000",
		12345:      "12,345",
		1234567:    "1,234,567",
		100000000:  "100,000,000",
		-4200:      "-4,200",
		-100:       "-100",
		1000000000: "1,000,000,000",
	}
	for n, want := range tests {
		assert.Equal(t, want, game.FormatScore(n), "%d", n)
	}
}

func TestGravityCurve(t *testing.T) {
	assert.Equal(t, 1.0, game.Gravity(game.Marathon, 1))
	assert.InDelta(t, 1/0.793, game.Gravity(game.Marathon, 2), 1e-9)
	assert.InDelta(t, 1/math.Pow(0.702, 14), game.Gravity(game.Marathon, 15), 1e-6)
	assert.Equal(t, 1.0, game.Gravity(game.Survival, 10))

	prev := 0.0
	for l := 1; l <= game.MaxLevel; l++ {
		g := game.Gravity(game.Marathon, l)
		assert.Greater(t, g, prev, "level %d", l)
		prev = g
	}
}

func TestKeys(t *testing.T) {
	var k game.Keys
	k.Press(game.RotateCW)
	assert.True(t, k.JustPressed(game.RotateCW))
	assert.True(t, k.Held(game.RotateCW))
	assert.False(t, k.JustReleased(game.RotateCW))

	k.Advance()
	assert.False(t, k.JustPressed(game.RotateCW))
	assert.True(t, k.Held(game.RotateCW))

	k.Advance()
	k.Release(game.RotateCW)
	assert.True(t, k.JustReleased(game.RotateCW))
	assert.False(t, k.Held(game.RotateCW))

	k.Advance()
	assert.False(t, k.JustReleased(game.RotateCW))

	tap := game.Tap(game.Hold)
	assert.True(t, tap.JustPressed(game.Hold))
	assert.False(t, tap.Held(game.HardDrop))
	assert.Equal(t, "Rotate180", game.Rotate180.String())
}
