package sim

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivierh59500/game-of-life-go/config"
	"github.com/olivierh59500/game-of-life-go/life"
)

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Width = 12
	cfg.Height = 10
	cfg.Seed = 1
	cfg.Workers = 2
	return cfg
}

func newSim(t *testing.T, cfg config.Config) *Simulation {
	t.Helper()
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

// blinkerSim returns a paused simulation holding a single horizontal blinker
func blinkerSim(t *testing.T, cfg config.Config) *Simulation {
	t.Helper()
	s := newSim(t, cfg)
	s.Clear()
	s.Grid().Stamp(life.Blinker, 4, 4)
	return s
}

func TestTimer(t *testing.T) {
	tm := NewTimer(200 * time.Millisecond)

	assert.False(t, tm.Tick(100*time.Millisecond))
	assert.True(t, tm.Tick(100*time.Millisecond))
	assert.Equal(t, time.Duration(0), tm.Elapsed())

	assert.True(t, tm.Tick(450*time.Millisecond), "several periods yield one finish")
	assert.Equal(t, 50*time.Millisecond, tm.Elapsed())

	tm.Reset()
	assert.Equal(t, time.Duration(0), tm.Elapsed())
	assert.Equal(t, 200*time.Millisecond, tm.Duration())
}

func TestNewSeedsDeterministically(t *testing.T) {
	a := newSim(t, testConfig())
	b := newSim(t, testConfig())
	assert.True(t, a.Grid().Equal(b.Grid()))
	assert.False(t, a.AutoPlay())
	assert.Equal(t, 0, a.Generation())
}

func TestAdvanceIdleWhenPaused(t *testing.T) {
	s := blinkerSim(t, testConfig())
	before := s.Grid().Hash()

	stepped, err := s.Advance(context.Background(), time.Second)
	require.NoError(t, err)
	assert.False(t, stepped)
	assert.Equal(t, before, s.Grid().Hash())
	assert.Equal(t, StatusPaused, s.Status())
}

func TestAdvanceStepsOnInterval(t *testing.T) {
	s := blinkerSim(t, testConfig())
	s.TogglePlay()
	require.True(t, s.AutoPlay())
	assert.Equal(t, StatusRunning, s.Status())

	ctx := context.Background()
	for range 3 {
		stepped, err := s.Advance(ctx, 50*time.Millisecond)
		require.NoError(t, err)
		assert.False(t, stepped)
	}
	stepped, err := s.Advance(ctx, 50*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, stepped)
	assert.Equal(t, 1, s.Generation())
	assert.True(t, s.Grid().Alive(5, 3))
	assert.InDelta(t, 5.0, s.Stats().GenerationsPerSecond, 1e-9)
}

func TestTogglePlayResetsTimer(t *testing.T) {
	s := blinkerSim(t, testConfig())
	ctx := context.Background()

	s.TogglePlay()
	_, err := s.Advance(ctx, 150*time.Millisecond)
	require.NoError(t, err)

	s.TogglePlay()
	s.TogglePlay()

	stepped, err := s.Advance(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, stepped)
	assert.Equal(t, 0, s.Generation())
}

func TestStepDetectsOscillation(t *testing.T) {
	s := blinkerSim(t, testConfig())
	ctx := context.Background()

	require.NoError(t, s.Step(ctx))
	require.NoError(t, s.Step(ctx))
	assert.Equal(t, StatusPaused, s.Status())

	require.NoError(t, s.Step(ctx))
	assert.Equal(t, StatusStable, s.Status())
	assert.Equal(t, 3, s.Generation())
	assert.Equal(t, 3, s.Stats().Population)
}

func TestAutoReseedAfterExtinction(t *testing.T) {
	cfg := testConfig()
	cfg.AutoReseed = true
	cfg.StagnationThreshold = 2
	cfg.Density = 1

	s := newSim(t, cfg)
	s.Clear()
	assert.Equal(t, StatusExtinct, s.Status())

	ctx := context.Background()
	require.NoError(t, s.Step(ctx))
	assert.Equal(t, 1, s.Generation())

	require.NoError(t, s.Step(ctx))
	assert.Equal(t, 0, s.Generation(), "reseed restarts the generation count")
	assert.Equal(t, cfg.Width*cfg.Height, s.Grid().Population())
}

func TestNoAutoReseedByDefault(t *testing.T) {
	s := newSim(t, testConfig())
	s.Clear()

	for range 10 {
		require.NoError(t, s.Step(context.Background()))
	}
	assert.Equal(t, 10, s.Generation())
	assert.Equal(t, StatusExtinct, s.Status())
}

func TestEditing(t *testing.T) {
	s := newSim(t, testConfig())
	s.Clear()

	s.ToggleCell(3, 3)
	assert.True(t, s.Grid().Alive(3, 3))
	s.ToggleCell(3, 3)
	assert.False(t, s.Grid().Alive(3, 3))

	s.StampGlider(0, 0)
	assert.Equal(t, 5, s.Grid().Population())
	assert.Equal(t, 5, s.Stats().Population)
}

func TestReseedNoise(t *testing.T) {
	cfg := testConfig()
	cfg.NoiseThreshold = -2
	s := newSim(t, cfg)
	require.NoError(t, s.Step(context.Background()))

	s.ReseedNoise()
	assert.Equal(t, 0, s.Generation())
	assert.Equal(t, cfg.Width*cfg.Height, s.Grid().Population())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	s := blinkerSim(t, testConfig())
	require.NoError(t, s.Step(context.Background()))
	require.NoError(t, s.Save(path))
	saved := s.Grid().Hash()

	s.Reseed()
	require.NoError(t, s.Load(path))
	assert.Equal(t, saved, s.Grid().Hash())
	assert.Equal(t, 1, s.Generation())
	assert.Equal(t, s.Generation(), s.Stats().TotalGenerations)

	other := testConfig()
	other.Width = 20
	err := newSim(t, other).Load(path)
	assert.Error(t, err)
}

func TestStatsUpdate(t *testing.T) {
	st := NewStats()
	st.Update(1, 100, 500*time.Millisecond)
	assert.Equal(t, 100.0, st.AveragePopulation)
	assert.Equal(t, 2.0, st.GenerationsPerSecond)

	st.Update(2, 200, 0)
	assert.InDelta(t, 110.0, st.AveragePopulation, 1e-9)
	assert.Equal(t, 0.0, st.GenerationsPerSecond, "manual steps carry no rate")
	assert.Equal(t, 2, st.TotalGenerations)
}

func TestStatsAverageBlendsAfterEmptyGeneration(t *testing.T) {
	st := NewStats()
	st.Update(1, 0, time.Second)
	st.Update(2, 100, time.Second)
	assert.InDelta(t, 10.0, st.AveragePopulation, 1e-9)
}

func TestAverageAfterClearAndGlider(t *testing.T) {
	s := newSim(t, testConfig())
	ctx := context.Background()

	s.Clear()
	require.NoError(t, s.Step(ctx))
	s.StampGlider(2, 2)
	require.NoError(t, s.Step(ctx))

	assert.InDelta(t, 0.5, s.Stats().AveragePopulation, 1e-9)
}

func TestManualStepClearsRate(t *testing.T) {
	s := blinkerSim(t, testConfig())
	ctx := context.Background()

	s.TogglePlay()
	for range 4 {
		_, err := s.Advance(ctx, 50*time.Millisecond)
		require.NoError(t, err)
	}
	require.InDelta(t, 5.0, s.Stats().GenerationsPerSecond, 1e-9)

	s.TogglePlay()
	require.NoError(t, s.Step(ctx))
	assert.Equal(t, 0.0, s.Stats().GenerationsPerSecond)
}

func TestStillLifeStableAfterOneStep(t *testing.T) {
	s := newSim(t, testConfig())
	s.Clear()
	for _, c := range life.Block.Cells {
		s.ToggleCell(3+c.X, 3+c.Y)
	}

	require.NoError(t, s.Step(context.Background()))
	assert.Equal(t, StatusStable, s.Status())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.StepInterval = 0

	s, err := New(cfg)
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestTimerWithoutPeriod(t *testing.T) {
	tm := NewTimer(0)
	assert.True(t, tm.Tick(time.Millisecond))
	assert.True(t, tm.Tick(0))
	assert.Equal(t, time.Duration(0), tm.Elapsed())
}

func TestStepCancelled(t *testing.T) {
	s := blinkerSim(t, testConfig())
	before := s.Grid().Hash()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Step(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, s.Generation())
	assert.Equal(t, before, s.Grid().Hash())
}
