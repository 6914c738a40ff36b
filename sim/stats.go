package sim

import "time"

// populationWeight is the share of the newest sample in AveragePopulation
const populationWeight = 0.1

// Stats tracks generation throughput and population for the HUD
type Stats struct {
	GenerationsPerSecond float64 // 0 when the last step was not timer driven
	AveragePopulation    float64 // exponential moving average
	Population           int
	TotalGenerations     int
	StartTime            time.Time

	samples int
}

// NewStats returns empty statistics starting now
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a finished generation. spacing is the simulated time since
// the previous generation; zero means the step was manual and no rate applies.
func (s *Stats) Update(generation, population int, spacing time.Duration) {
	s.TotalGenerations = generation
	s.Population = population

	s.GenerationsPerSecond = 0
	if spacing > 0 {
		s.GenerationsPerSecond = 1 / spacing.Seconds()
	}

	if s.samples == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation += populationWeight * (float64(population) - s.AveragePopulation)
	}
	s.samples++
}
