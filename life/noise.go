package life

import (
	"github.com/aquilax/go-perlin"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
)

// FillNoise seeds the grid from 2D Perlin noise: a cell is alive where the
// noise sampled at (x*scale, y*scale) exceeds threshold. Both buffers receive
// the same state.
func (g *Grid) FillNoise(seed int64, scale, threshold float64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	for y := range g.height {
		for x := range g.width {
			i := y*g.width + x
			alive := p.Noise2D(float64(x)*scale, float64(y)*scale) > threshold
			g.cur[i] = alive
			g.nxt[i] = alive
		}
	}
}
