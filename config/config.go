package config

import (
	"encoding/json"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
)

// MaxGridSide bounds each grid dimension; the board is uploaded as one
// pixel per cell and must fit in a single texture.
const MaxGridSide = 4096

// Duration is a time.Duration that reads and writes as a string like "200ms"
type Duration time.Duration

// MarshalJSON encodes the duration as a string
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON accepts either a duration string or nanoseconds
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "invalid duration %q", value)
		}
		*d = Duration(parsed)
	default:
		return errors.Errorf("invalid duration %s", string(b))
	}
	return nil
}

// Config holds the configuration for the game
type Config struct {
	Width               int      `json:"width"`
	Height              int      `json:"height"`
	CellSize            float64  `json:"cell_size"`
	Density             float64  `json:"density"`
	StepInterval        Duration `json:"step_interval"`
	AutoPlay            bool     `json:"auto_play"`
	Seed                int64    `json:"seed"` // 0 picks a time based seed
	Workers             int      `json:"workers"`
	CameraSpeed         float64  `json:"camera_speed"`
	ZoomSpeed           float64  `json:"zoom_speed"`
	InitialZoom         float64  `json:"initial_zoom"`
	MinZoom             float64  `json:"min_zoom"`
	WindowWidth         int      `json:"window_width"`
	WindowHeight        int      `json:"window_height"`
	TPS                 int      `json:"tps"`
	AutoReseed          bool     `json:"auto_reseed"`
	StagnationThreshold int      `json:"stagnation_threshold"`
	NoiseScale          float64  `json:"noise_scale"`
	NoiseThreshold      float64  `json:"noise_threshold"`
	SnapshotPath        string   `json:"snapshot_path"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               200,
		Height:              200,
		CellSize:            10,
		Density:             0.1,
		StepInterval:        Duration(200 * time.Millisecond),
		AutoPlay:            false,
		Seed:                0,
		Workers:             runtime.NumCPU(),
		CameraSpeed:         300,
		ZoomSpeed:           0.5,
		InitialZoom:         0.1,
		MinZoom:             0.1,
		WindowWidth:         1280,
		WindowHeight:        800,
		TPS:                 60,
		AutoReseed:          false,
		StagnationThreshold: 5,
		NoiseScale:          0.08,
		NoiseThreshold:      0.1,
		SnapshotPath:        "snapshot.json",
	}
}

// LoadConfig loads configuration from JSON file over the defaults.
// The defaults are returned alongside any error.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks that every value is usable
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Width > MaxGridSide:
		return errors.Errorf("width must be in [1, %d], got %d", MaxGridSide, c.Width)
	case c.Height < 1 || c.Height > MaxGridSide:
		return errors.Errorf("height must be in [1, %d], got %d", MaxGridSide, c.Height)
	case c.CellSize <= 0:
		return errors.Errorf("cell_size must be positive, got %v", c.CellSize)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density must be in [0, 1], got %v", c.Density)
	case c.StepInterval <= 0:
		return errors.Errorf("step_interval must be positive, got %v", time.Duration(c.StepInterval))
	case c.Workers < 1:
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	case c.CameraSpeed < 0 || c.ZoomSpeed < 0:
		return errors.New("camera_speed and zoom_speed must not be negative")
	case c.MinZoom <= 0:
		return errors.Errorf("min_zoom must be positive, got %v", c.MinZoom)
	case c.InitialZoom < c.MinZoom:
		return errors.Errorf("initial_zoom %v is below min_zoom %v", c.InitialZoom, c.MinZoom)
	case c.WindowWidth < 1 || c.WindowHeight < 1:
		return errors.New("window size must be positive")
	case c.TPS < 1:
		return errors.Errorf("tps must be at least 1, got %d", c.TPS)
	case c.StagnationThreshold < 1:
		return errors.Errorf("stagnation_threshold must be at least 1, got %d", c.StagnationThreshold)
	case c.NoiseScale <= 0:
		return errors.Errorf("noise_scale must be positive, got %v", c.NoiseScale)
	case c.SnapshotPath == "":
		return errors.New("snapshot_path must not be empty")
	}
	return nil
}

// Interval returns the auto-step period
func (c Config) Interval() time.Duration {
	return time.Duration(c.StepInterval)
}

// TickDuration returns the simulated time of one engine tick
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}
