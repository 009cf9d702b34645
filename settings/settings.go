// Package settings persists player preferences as JSON under the user
// config directory.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/plus3/tetra/game"
)

// Key binding profiles understood by the host.
const (
	ProfileDefault = "default"
	ProfileArcade  = "arcade"
)

type Settings struct {
	// DAS and ARR are in milliseconds.
	DAS int `json:"das"`
	ARR int `json:"arr"`
	// SoftDrop is the soft drop speed in cells per second. Zero drops to
	// the floor at once.
	SoftDrop float64 `json:"soft_drop"`
	Profile  string  `json:"profile"`
	Name     string  `json:"name"`
	// ScoresDir overrides where high score tables live.
	ScoresDir string `json:"scores_dir,omitempty"`
}

// Default returns the stock settings.
func Default() Settings {
	h := game.DefaultHandling()
	return Settings{
		DAS:      int(h.DAS / time.Millisecond),
		ARR:      int(h.ARR / time.Millisecond),
		SoftDrop: h.SoftDropRate,
		Profile:  ProfileDefault,
		Name:     "player",
	}
}

// Handling converts the timings for game.WithHandling.
func (s Settings) Handling() game.Handling {
	h := game.Handling{
		DAS:          time.Duration(s.DAS) * time.Millisecond,
		ARR:          time.Duration(s.ARR) * time.Millisecond,
		SoftDropRate: s.SoftDrop,
	}
	if s.SoftDrop == 0 {
		h.SoftDropRate = math.Inf(1)
	}
	return h
}

func (s Settings) normalize() Settings {
	d := Default()
	if s.DAS < 0 {
		s.DAS = d.DAS
	}
	if s.ARR < 0 {
		s.ARR = d.ARR
	}
	if s.SoftDrop < 0 || math.IsNaN(s.SoftDrop) {
		s.SoftDrop = d.SoftDrop
	}
	if s.Profile != ProfileArcade {
		s.Profile = ProfileDefault
	}
	if s.Name == "" {
		s.Name = d.Name
	}
	return s
}

// Path is the settings file location.
func Path() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(root, "tetra", "settings.json"), nil
}

// Dir is the directory holding the settings file, where high score tables
// go by default.
func Dir() (string, error) {
	p, err := Path()
	if err != nil {
		return "", err
	}
	return filepath.Dir(p), nil
}

// Load reads the settings file. A missing file gives the defaults without
// an error; a damaged one gives the defaults and the error.
func Load() (Settings, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(p)
}

// Save writes s to the settings file.
func Save(s Settings) error {
	p, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(p, s)
}

// LoadFrom is Load for an explicit path.
func LoadFrom(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read settings: %w", err)
	}
	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s.normalize(), nil
}

// SaveTo is Save for an explicit path.
func SaveTo(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := json.MarshalIndent(s.normalize(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
