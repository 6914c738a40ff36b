package life

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	aliveRune = 'O'
	deadRune  = '.'
)

// Snapshot is the on-disk form of a grid. Each row is a string of '.' and 'O'.
type Snapshot struct {
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Generation int      `json:"generation"`
	Rows       []string `json:"rows"`
}

// Snapshot captures the current cells
func (g *Grid) Snapshot(generation int) Snapshot {
	s := Snapshot{
		Width:      g.width,
		Height:     g.height,
		Generation: generation,
		Rows:       make([]string, g.height),
	}
	var b strings.Builder
	for y := range g.height {
		b.Reset()
		for x := range g.width {
			if g.cur[y*g.width+x] {
				b.WriteRune(aliveRune)
			} else {
				b.WriteRune(deadRune)
			}
		}
		s.Rows[y] = b.String()
	}
	return s
}

// Restore replaces the grid's cells with the snapshot's.
// The grid is left untouched when the snapshot does not fit.
func (g *Grid) Restore(s Snapshot) error {
	if s.Width != g.width || s.Height != g.height {
		return errors.Errorf("[Restore] snapshot is %dx%d, grid is %dx%d", s.Width, s.Height, g.width, g.height)
	}
	if len(s.Rows) != s.Height {
		return errors.Errorf("[Restore] snapshot has %d rows, want %d", len(s.Rows), s.Height)
	}

	cells := make([]bool, len(g.cur))
	for y, row := range s.Rows {
		if len(row) != s.Width {
			return errors.Errorf("[Restore] row %d has %d cells, want %d", y, len(row), s.Width)
		}
		for x, r := range row {
			switch r {
			case aliveRune:
				cells[y*g.width+x] = true
			case deadRune:
			default:
				return errors.Errorf("[Restore] row %d: unexpected %q at column %d", y, r, x)
			}
		}
	}

	copy(g.cur, cells)
	copy(g.nxt, cells)
	return nil
}

// SaveSnapshot writes the snapshot as JSON to filename
func SaveSnapshot(filename string, s Snapshot) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[SaveSnapshot] failed to marshal snapshot")
	}
	if err = os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrapf(err, "[SaveSnapshot] failed to write file: %+v", filename)
	}
	return nil
}

// LoadSnapshot reads a JSON snapshot from filename
func LoadSnapshot(filename string) (Snapshot, error) {
	var s Snapshot

	data, err := os.ReadFile(filename)
	if err != nil {
		return s, errors.Wrapf(err, "[LoadSnapshot] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "[LoadSnapshot] failed to unmarshal data from file: %+v", filename)
	}

	return s, nil
}
