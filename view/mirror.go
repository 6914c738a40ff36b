// Package view maps grid state onto the screen: a camera over world space
// and a per-cell mirror of what is currently displayed.
package view

import (
	"image/color"

	"github.com/olivierh59500/game-of-life-go/life"
)

var (
	// AliveColor is used for live cells
	AliveColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	// DeadColor is used for dead cells
	DeadColor = color.RGBA{0x10, 0x10, 0x14, 0xff}
)

// Mirror keeps the displayed state of every cell and an RGBA buffer with one
// pixel per cell, ready for upload.
type Mirror struct {
	width, height int
	shown         []bool
	pixels        []byte
	alive, dead   color.RGBA
}

// NewMirror creates a mirror where every cell is displayed dead
func NewMirror(width, height int, alive, dead color.RGBA) *Mirror {
	m := &Mirror{alive: alive, dead: dead}
	m.resize(width, height)
	return m
}

func (m *Mirror) resize(width, height int) {
	m.width, m.height = width, height
	m.shown = make([]bool, width*height)
	m.pixels = make([]byte, 4*width*height)
	for i := range m.shown {
		m.paint(i, false)
	}
}

func (m *Mirror) paint(i int, alive bool) {
	c := m.dead
	if alive {
		c = m.alive
	}
	p := m.pixels[4*i : 4*i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Sync brings the mirror in line with the grid and returns the number of
// cells whose displayed state changed.
func (m *Mirror) Sync(g *life.Grid) int {
	if g.Width() != m.width || g.Height() != m.height {
		m.resize(g.Width(), g.Height())
	}

	changed := 0
	for y := range m.height {
		for x := range m.width {
			i := y*m.width + x
			alive := g.Alive(x, y)
			if m.shown[i] == alive {
				continue
			}
			m.shown[i] = alive
			m.paint(i, alive)
			changed++
		}
	}
	return changed
}

// Shown reports the displayed state of a cell
func (m *Mirror) Shown(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.shown[y*m.width+x]
}

// Pixels returns the RGBA buffer, row-major, one pixel per cell
func (m *Mirror) Pixels() []byte { return m.pixels }

// Size returns the mirrored grid dimensions
func (m *Mirror) Size() (int, int) { return m.width, m.height }
