package life

/*
Next returns the state of a cell in the following generation.

A live cell survives with two or three live neighbours; a dead cell is born
with exactly three.
*/
func Next(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
