package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const controlsHelp = `SPACE play/pause  N step  R random  P noise  C clear
WASD pan  J/K or wheel zoom  right-drag pan
click toggle cell  G glider  F5 save  F9 load  H hide`

// hudText renders the status overlay
func (g *Game) hudText() string {
	st := g.sim.Stats()
	return fmt.Sprintf("Gen: %d | Living: %d | Avg Pop: %.1f | Status: %s\n"+
		"Step: %v | %.1f gen/sec | TPS: %.0f | FPS: %.0f | Scale: %.2f | Runtime: %.0fs\n%s",
		g.sim.Generation(), st.Population, st.AveragePopulation, g.sim.Status(),
		g.cfg.Interval(), st.GenerationsPerSecond, ebiten.ActualTPS(), ebiten.ActualFPS(), g.cam.Scale,
		time.Since(st.StartTime).Seconds(), controlsHelp)
}
