package view

import (
	"math"
	"time"
)

// Camera looks at the world from a centre point. Scale is the number of world
// units covered by one screen pixel, so a larger scale shows more of the world.
type Camera struct {
	X, Y     float64
	Scale    float64
	MinScale float64
}

// NewCamera creates a camera centred on (x, y)
func NewCamera(x, y, scale, minScale float64) *Camera {
	return &Camera{X: x, Y: y, Scale: max(scale, minScale), MinScale: minScale}
}

// Pan moves the camera along (dx, dy) at speed world units per second.
// The direction is normalized so diagonals are not faster.
func (c *Camera) Pan(dx, dy, speed float64, dt time.Duration) {
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	step := speed * dt.Seconds() / length
	c.X += dx * step
	c.Y += dy * step
}

// Zoom changes the scale by delta, never going below MinScale
func (c *Camera) Zoom(delta float64) {
	c.Scale = max(c.Scale+delta, c.MinScale)
}

// ZoomBy multiplies the scale by factor, never going below MinScale
func (c *Camera) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	c.Scale = max(c.Scale*factor, c.MinScale)
}

// Drag moves the camera so the world follows a screen-space drag
func (c *Camera) Drag(dsx, dsy float64) {
	c.X -= dsx * c.Scale
	c.Y -= dsy * c.Scale
}

// ScreenToWorld converts a screen position to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64, screenW, screenH int) (float64, float64) {
	return c.X + (sx-float64(screenW)/2)*c.Scale,
		c.Y + (sy-float64(screenH)/2)*c.Scale
}

// CellAt returns the grid cell under a screen position. The result may lie
// outside the grid.
func (c *Camera) CellAt(sx, sy, cellSize float64, screenW, screenH int) (int, int) {
	wx, wy := c.ScreenToWorld(sx, sy, screenW, screenH)
	return int(math.Floor(wx / cellSize)), int(math.Floor(wy / cellSize))
}

// WorldToScreen converts a world position to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64, screenW, screenH int) (float64, float64) {
	return (wx-c.X)/c.Scale + float64(screenW)/2,
		(wy-c.Y)/c.Scale + float64(screenH)/2
}
