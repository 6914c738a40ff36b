// Package sim holds the interactive Game of Life session: the grid, the
// auto-play timer and the bookkeeping around each generation.
package sim

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/olivierh59500/game-of-life-go/config"
	"github.com/olivierh59500/game-of-life-go/life"
)

// Status values reported by Simulation.Status
const (
	StatusRunning = "running"
	StatusPaused  = "paused"
	StatusStable  = "stable"
	StatusExtinct = "extinct"
)

// Simulation holds the game state
type Simulation struct {
	cfg        config.Config
	grid       *life.Grid
	rng        *rand.Rand
	timer      *Timer
	autoPlay   bool
	generation int
	stagnant   int // consecutive generations that repeated or were empty
	sinceStep  time.Duration
	history    life.History
	stats      *Stats
}

// New creates a simulation with a randomly seeded grid
func New(cfg config.Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[New] invalid configuration")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Simulation{
		cfg:      cfg,
		grid:     life.NewGrid(cfg.Width, cfg.Height),
		rng:      rand.New(rand.NewSource(seed)),
		timer:    NewTimer(cfg.Interval()),
		autoPlay: cfg.AutoPlay,
		stats:    NewStats(),
	}
	s.grid.Randomize(s.rng, cfg.Density)
	s.history.Push(s.grid.Hash())
	return s, nil
}

// Grid exposes the board
func (s *Simulation) Grid() *life.Grid { return s.grid }

// AutoPlay reports whether generations advance on the timer
func (s *Simulation) AutoPlay() bool { return s.autoPlay }

// Generation returns the number of generations since the last reseed
func (s *Simulation) Generation() int { return s.generation }

// Stats returns a copy of the current statistics
func (s *Simulation) Stats() Stats { return *s.stats }

// TogglePlay flips auto-play and restarts the step timer
func (s *Simulation) TogglePlay() {
	s.autoPlay = !s.autoPlay
	s.timer.Reset()
	s.sinceStep = 0
}

// Advance moves simulated time forward by dt, stepping once when the timer
// finishes. It does nothing while auto-play is off.
func (s *Simulation) Advance(ctx context.Context, dt time.Duration) (bool, error) {
	if !s.autoPlay {
		return false, nil
	}

	s.sinceStep += dt
	if !s.timer.Tick(dt) {
		return false, nil
	}
	return true, s.Step(ctx)
}

// Step computes one generation
func (s *Simulation) Step(ctx context.Context) error {
	if err := s.grid.StepParallel(ctx, s.cfg.Workers); err != nil {
		return errors.Wrapf(err, "[Step] generation %d failed", s.generation+1)
	}
	s.generation++

	// only timer driven steps have a meaningful rate
	var spacing time.Duration
	if s.autoPlay {
		spacing = s.sinceStep
	}
	population := s.grid.Population()
	s.stats.Update(s.generation, population, spacing)
	s.sinceStep = 0

	hash := s.grid.Hash()
	if population == 0 || s.history.Repeats(hash) {
		s.stagnant++
	} else {
		s.stagnant = 0
	}
	s.history.Push(hash)

	if s.cfg.AutoReseed && s.stagnant >= s.cfg.StagnationThreshold {
		log.Printf("generation %d: %s for %d generations, reseeding", s.generation, s.Status(), s.stagnant)
		s.Reseed()
	}
	return nil
}

// Reseed fills the grid randomly at the configured density
func (s *Simulation) Reseed() {
	s.grid.Randomize(s.rng, s.cfg.Density)
	s.restart()
}

// ReseedNoise fills the grid from Perlin noise with a fresh seed
func (s *Simulation) ReseedNoise() {
	s.grid.FillNoise(s.rng.Int63(), s.cfg.NoiseScale, s.cfg.NoiseThreshold)
	s.restart()
}

// Clear kills every cell
func (s *Simulation) Clear() {
	s.grid.Clear()
	s.restart()
}

func (s *Simulation) restart() {
	s.generation = 0
	s.stagnant = 0
	s.sinceStep = 0
	s.history.Reset()
	s.history.Push(s.grid.Hash())
	s.stats = NewStats()
	s.stats.Population = s.grid.Population()
}

// ToggleCell flips a single cell
func (s *Simulation) ToggleCell(x, y int) {
	s.grid.Toggle(x, y)
	s.edited()
}

// StampGlider places a glider with its origin at (x, y)
func (s *Simulation) StampGlider(x, y int) {
	s.grid.Stamp(life.Glider, x, y)
	s.edited()
}

func (s *Simulation) edited() {
	s.stagnant = 0
	s.history.Reset()
	s.history.Push(s.grid.Hash())
	s.stats.Population = s.grid.Population()
}

// Save writes the grid to a snapshot file
func (s *Simulation) Save(path string) error {
	return life.SaveSnapshot(path, s.grid.Snapshot(s.generation))
}

// Load replaces the grid with a snapshot file
func (s *Simulation) Load(path string) error {
	snap, err := life.LoadSnapshot(path)
	if err != nil {
		return err
	}
	if err = s.grid.Restore(snap); err != nil {
		return errors.Wrapf(err, "[Load] cannot restore %s", path)
	}
	s.restart()
	s.generation = snap.Generation
	s.stats.TotalGenerations = snap.Generation
	return nil
}

// Status summarizes the session for display
func (s *Simulation) Status() string {
	switch {
	case s.grid.Population() == 0:
		return StatusExtinct
	case s.stagnant > 0:
		return StatusStable
	case s.autoPlay:
		return StatusRunning
	default:
		return StatusPaused
	}
}
