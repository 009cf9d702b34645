package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/tetra/bot"
	"github.com/plus3/tetra/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelPlaysMatch(t *testing.T) {
	var model tea.Model = NewModel(game.Versus, bot.Insane, 1)
	now := time.Unix(0, 0)
	for range 300 {
		now = now.Add(frameInterval)
		model, _ = model.Update(tickMsg(now))
	}

	m := model.(Model)
	require.Len(t, m.match.Players, 2)
	for _, p := range m.match.Players {
		assert.Positive(t, p.Session.Pieces(), p.Name)
	}
	assert.Contains(t, m.View(), "bot 2")
}

func TestModelKeys(t *testing.T) {
	var model tea.Model = NewModel(game.Marathon, bot.Easy, 3)

	model, _ = model.Update(key("+"))
	model, _ = model.Update(key("+"))
	assert.Equal(t, 4, model.(Model).speed)
	model, _ = model.Update(key("-"))
	assert.Equal(t, 2, model.(Model).speed)

	model, _ = model.Update(key("p"))
	assert.True(t, model.(Model).paused)

	first := model.(Model).match
	model, _ = model.Update(key("r"))
	assert.NotSame(t, first, model.(Model).match)
	assert.Len(t, model.(Model).match.Players, 1)

	_, cmd := model.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
