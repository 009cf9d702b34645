package settings_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/tetra/game"
	"github.com/plus3/tetra/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchGame(t *testing.T) {
	assert.Equal(t, game.DefaultHandling(), settings.Default().Handling())
}

func TestLoadMissing(t *testing.T) {
	s, err := settings.LoadFrom(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), s)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra", "settings.json")
	want := settings.Settings{DAS: 100, ARR: 0, SoftDrop: 0, Profile: settings.ProfileArcade, Name: "ann"}
	require.NoError(t, settings.SaveTo(path, want))

	got, err := settings.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	h := got.Handling()
	assert.Equal(t, 100*time.Millisecond, h.DAS)
	assert.Zero(t, h.ARR)
	assert.True(t, math.IsInf(h.SoftDropRate, 1))
}

func TestLoadFillsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"das": 120, "profile": "joystick", "name": ""}`), 0o644))

	s, err := settings.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 120, s.DAS)
	assert.Equal(t, settings.Default().ARR, s.ARR)
	assert.Equal(t, settings.ProfileDefault, s.Profile)
	assert.Equal(t, "player", s.Name)
}

func TestLoadDamaged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"das": `), 0o644))

	s, err := settings.LoadFrom(path)
	assert.Error(t, err)
	assert.Equal(t, settings.Default(), s)
}
