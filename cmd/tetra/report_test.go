package main

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/tetra/bot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportGenerate(t *testing.T) {
	best := bot.Individual{Weights: bot.DefaultWeights(), Fitness: 42.5, Lines: 40, Pieces: 250}
	r := &Report{Result: bot.Result{
		ID:     uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Config: bot.DefaultTrainerConfig(),
		Best:   best,
		History: []bot.Generation{
			{Index: 0, Best: bot.Individual{Fitness: 21.25}, Mean: 10, Elapsed: 1500 * time.Millisecond},
			{Index: 1, Best: best, Mean: 30, Elapsed: time.Second},
		},
		Elapsed: 2500 * time.Millisecond,
	}}

	var sb strings.Builder
	require.NoError(t, r.Generate(&sb))
	out := sb.String()

	assert.Contains(t, out, "00000000-0000-0000-0000-000000000001")
	assert.Contains(t, out, "**Fitness:** 42.50")
	assert.Contains(t, out, "| 0 | 21.25 | 10.00 | 1.5s | ##########\n")
	assert.Contains(t, out, "| 1 | 42.50 | 30.00 | 1s | ####################\n")
	assert.Contains(t, out, "**Search:** fast")
	assert.NotContains(t, out, "interrupted")
}
