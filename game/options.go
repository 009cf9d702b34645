package game

import (
	"math"
	"time"
)

// Handling holds the player-tunable movement timings.
type Handling struct {
	// DAS is the delay before a held shift starts repeating.
	DAS time.Duration
	// ARR is the interval between repeated shifts. Zero moves to the wall.
	ARR time.Duration
	// SoftDropRate is added to gravity while soft drop is held, in cells
	// per second. +Inf drops to the floor at once.
	SoftDropRate float64
}

// DefaultHandling returns the stock timings.
func DefaultHandling() Handling {
	return Handling{
		DAS:          167 * time.Millisecond,
		ARR:          33 * time.Millisecond,
		SoftDropRate: 20,
	}
}

// HeadlessHandling keeps the stock shift timings but soft drops to the floor
// at once. Bots driving a session with zero elapsed time use it.
func HeadlessHandling() Handling {
	h := DefaultHandling()
	h.SoftDropRate = math.Inf(1)
	return h
}

type config struct {
	seed      uint64
	seeded    bool
	mode      Mode
	level     int
	handling  Handling
	countdown time.Duration
}

// Option configures a new Session.
type Option func(*config)

// WithSeed makes the piece sequence and garbage holes reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithMode selects the game mode. The default is Marathon.
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithLevel sets the starting level, clamped to 1..MaxLevel.
func WithLevel(level int) Option {
	return func(c *config) {
		c.level = min(max(level, 1), MaxLevel)
	}
}

// WithHandling overrides DAS, ARR and the soft drop rate.
func WithHandling(h Handling) Option {
	return func(c *config) {
		c.handling = h
	}
}

// WithCountdown delays the first spawn by d.
func WithCountdown(d time.Duration) Option {
	return func(c *config) {
		c.countdown = max(d, 0)
	}
}
