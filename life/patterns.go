package life

// Point is a cell offset within a pattern
type Point struct {
	X, Y int
}

// Pattern is a named shape stamped onto a grid
type Pattern struct {
	Name  string
	Cells []Point
}

var (
	// Glider travels one cell diagonally every four generations
	Glider = Pattern{
		Name:  "glider",
		Cells: []Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	}

	// Blinker oscillates with period two
	Blinker = Pattern{
		Name:  "blinker",
		Cells: []Point{{0, 0}, {1, 0}, {2, 0}},
	}

	// Block is a still life
	Block = Pattern{
		Name:  "block",
		Cells: []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	}
)

// Stamp sets the pattern's cells alive with its origin at (x, y).
// Cells falling outside the grid are dropped.
func (g *Grid) Stamp(p Pattern, x, y int) {
	for _, c := range p.Cells {
		g.Set(x+c.X, y+c.Y, true)
	}
}
