// Package highscore keeps a small per-mode leaderboard in CSV files with a
// name,score header.
package highscore

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/plus3/tetra/game"
)

// Size is the number of entries a table holds.
const Size = 5

// Placeholder fills unused slots.
var Placeholder = Entry{Name: "empty", Score: 0}

// Entry is one leaderboard line.
type Entry struct {
	Name  string
	Score int
}

// Order says which end of the table is best.
type Order int

const (
	HighFirst Order = iota
	// LowFirst suits times, where less is better.
	LowFirst
)

// OrderFor returns how scores of mode m rank. 40 lines records the finish
// time in milliseconds, so lower wins.
func OrderFor(m game.Mode) Order {
	if m == game.FortyLines {
		return LowFirst
	}
	return HighFirst
}

// Path is the table file of mode m inside dir.
func Path(dir string, m game.Mode) string {
	return filepath.Join(dir, "highscore_"+m.Slug()+".csv")
}

// Load reads a table. A missing file is an empty table. The header and
// rows that do not parse are skipped. The result always has Size entries,
// padded with Placeholder.
func Load(path string) ([]Entry, error) {
	entries, err := read(path)
	if err != nil {
		return nil, err
	}
	if len(entries) > Size {
		entries = entries[:Size]
	}
	for len(entries) < Size {
		entries = append(entries, Placeholder)
	}
	return entries, nil
}

func read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open high scores: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var entries []Entry
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read high scores %s: %w", path, err)
		}
		if len(rec) < 2 {
			continue
		}
		score, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil || score < 0 {
			continue
		}
		entries = append(entries, Entry{Name: rec[0], Score: score})
	}
	return entries, nil
}

// Save sorts entries by order and writes the best Size of them. Placeholder
// entries are not written.
func Save(path string, entries []Entry, order Order) error {
	entries = rank(entries, order)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create high scores: %w", err)
	}

	w := csv.NewWriter(f)
	_ = w.Write([]string{"name", "score"})
	for _, e := range entries {
		_ = w.Write([]string{e.Name, strconv.Itoa(e.Score)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write high scores %s: %w", path, err)
	}
	return f.Close()
}

// Submit adds a score to the table at path and returns the updated table.
func Submit(path, name string, score int, order Order) ([]Entry, error) {
	entries, err := read(path)
	if err != nil {
		return nil, err
	}
	entries = append(entries, Entry{Name: name, Score: score})
	if err := Save(path, entries, order); err != nil {
		return nil, err
	}
	return Load(path)
}

// Qualifies reports whether score would make it into entries.
func Qualifies(entries []Entry, score int, order Order) bool {
	ranked := rank(entries, order)
	if len(ranked) < Size {
		return true
	}
	worst := ranked[len(ranked)-1].Score
	if order == LowFirst {
		return score < worst
	}
	return score > worst
}

func rank(entries []Entry, order Order) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e != Placeholder {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		if order == LowFirst {
			return cmp.Compare(a.Score, b.Score)
		}
		return cmp.Compare(b.Score, a.Score)
	})
	if len(out) > Size {
		out = out[:Size]
	}
	return out
}
