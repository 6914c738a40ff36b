package life

import (
	"crypto/md5"
	"fmt"
	"math/rand"
)

// Grid is a bounded board with a current and a next buffer.
// Cells outside the board are always dead.
type Grid struct {
	width  int
	height int
	cur    []bool
	nxt    []bool
}

// NewGrid creates an all-dead grid with the given dimensions
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cur:    make([]bool, width*height),
		nxt:    make([]bool, width*height),
	}
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Alive reports the state of a cell, false when out of bounds
func (g *Grid) Alive(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cur[y*g.width+x]
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if g.inBounds(x, y) {
		g.cur[y*g.width+x] = alive
	}
}

// Toggle flips a cell
func (g *Grid) Toggle(x, y int) {
	if g.inBounds(x, y) {
		i := y*g.width + x
		g.cur[i] = !g.cur[i]
	}
}

// Neighbors counts living cells among the eight surrounding positions
func (g *Grid) Neighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		row := g.cur[ny*g.width : (ny+1)*g.width]
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if row[nx] {
				count++
			}
		}
	}

	return count
}

// stepRows writes next-state for rows [from, to) into the next buffer
func (g *Grid) stepRows(from, to int) {
	for y := from; y < to; y++ {
		for x := 0; x < g.width; x++ {
			i := y*g.width + x
			g.nxt[i] = Next(g.cur[i], g.Neighbors(x, y))
		}
	}
}

func (g *Grid) swap() {
	g.cur, g.nxt = g.nxt, g.cur
}

// Step advances the grid by one generation
func (g *Grid) Step() {
	g.stepRows(0, g.height)
	g.swap()
}

// Randomize makes every cell alive with probability density.
// Both buffers end up holding the same state.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cur {
		alive := rng.Float64() < density
		g.cur[i] = alive
		g.nxt[i] = alive
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cur)
	clear(g.nxt)
}

// Population returns the number of living cells
func (g *Grid) Population() (count int) {
	for _, alive := range g.cur {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current cell states
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cur))
	for i, alive := range g.cur {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether two grids have the same size and cells
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cur {
		if g.cur[i] != o.cur[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	copy(c.cur, g.cur)
	copy(c.nxt, g.nxt)
	return c
}
