package config

import (
	"log/slog"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 300 {
		t.Errorf("Expected 400x300, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Scene != "default" || cfg.Output != "output.ppm" {
		t.Errorf("Unexpected scene/output defaults: %q %q", cfg.Scene, cfg.Output)
	}
	if cfg.MaxBounce != -1 || cfg.Gamma != 1 {
		t.Errorf("Unexpected shading defaults: bounce %d gamma %g", cfg.MaxBounce, cfg.Gamma)
	}
	if cfg.MeshCells != 0 {
		t.Errorf("Expected mesh cells to defer to the loader default, got %d", cfg.MeshCells)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults should validate: %v", err)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("RT_WIDTH", "64")
	t.Setenv("RT_MAX_BOUNCE", "9")
	t.Setenv("RT_SEED", "-7")
	t.Setenv("RT_SCENE", "mirrors")
	t.Setenv("RT_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Width != 64 || cfg.MaxBounce != 9 || cfg.Seed != -7 || cfg.Scene != "mirrors" {
		t.Errorf("Environment not applied: %+v", cfg)
	}
	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v (%v)", level, err)
	}
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("RT_SAMPLES", "many")
	if _, err := Load(); err == nil {
		t.Error("Expected error for non-numeric RT_SAMPLES")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Width: 10, Height: 10, Samples: 1, Gamma: 1, LogLevel: "info"}
	}

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"no samples", func(c *Config) { c.Samples = 0 }},
		{"negative bounce", func(c *Config) { c.MaxBounce = -2 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
		{"negative mesh cells", func(c *Config) { c.MeshCells = -1 }},
		{"zero gamma", func(c *Config) { c.Gamma = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("Expected valid config, got %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
