package config

import (
	"log/slog"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Prefix is prepended to every environment variable name
const Prefix = "RT"

// Config holds every render setting. MaxBounce -1 keeps each scene's own bounce limit,
// and MeshCells 0 keeps the tessellation resolution of the loaders package.
type Config struct {
	Width     int     `envconfig:"WIDTH" default:"400"`
	Height    int     `envconfig:"HEIGHT" default:"300"`
	Samples   int     `envconfig:"SAMPLES" default:"4"`
	MaxBounce int     `envconfig:"MAX_BOUNCE" default:"-1"`
	Seed      int64   `envconfig:"SEED" default:"42"`
	Workers   int     `envconfig:"WORKERS" default:"0"`
	TileSize  int     `envconfig:"TILE_SIZE" default:"32"`
	Scene     string  `envconfig:"SCENE" default:"default"`
	Output    string  `envconfig:"OUTPUT" default:"output.ppm"`
	Format    string  `envconfig:"FORMAT"`
	Gamma     float64 `envconfig:"GAMMA" default:"1"`
	Mesh      string  `envconfig:"MESH"`
	MeshCells int     `envconfig:"MESH_CELLS" default:"0"`
	Ortho     bool    `envconfig:"ORTHO"`
	LogLevel  string  `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from RT_* environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}
	return &cfg, nil
}

// Validate checks ranges that flags or the environment could get wrong
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Samples <= 0 {
		return errors.Errorf("samples must be positive, got %d", c.Samples)
	}
	if c.MaxBounce < -1 {
		return errors.Errorf("max bounce must be -1 (scene default) or more, got %d", c.MaxBounce)
	}
	if c.MeshCells < 0 {
		return errors.Errorf("mesh cells must not be negative, got %d", c.MeshCells)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Gamma <= 0 {
		return errors.Errorf("gamma must be positive, got %g", c.Gamma)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	return level, nil
}

// Usage prints the supported environment variables
func Usage() error {
	return envconfig.Usage(Prefix, &Config{})
}
