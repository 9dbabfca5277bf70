package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/starfield/internal/field"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		t.Error("default window size should be positive")
	}
	if cfg.Sim.TicksPerSecond != 60 {
		t.Errorf("expected 60 ticks per second, got %d", cfg.Sim.TicksPerSecond)
	}
	if cfg.Render.Mode != "lines" || !cfg.Render.Primary {
		t.Error("default render mode should be lines with the primary connector on")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	cfg := Default()
	cfg.Sim.SpawnInterval = 0.25
	cfg.Render.Secondary = true

	path := filepath.Join(t.TempDir(), "starfield.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Sim.SpawnInterval != 0.25 {
		t.Errorf("spawn_interval = %f, want 0.25", loaded.Sim.SpawnInterval)
	}
	if !loaded.Render.Secondary {
		t.Error("secondary flag lost in roundtrip")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tps", func(c *Config) { c.Sim.TicksPerSecond = 0 }},
		{"negative spawn interval", func(c *Config) { c.Sim.SpawnInterval = -1 }},
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"bad render mode", func(c *Config) { c.Render.Mode = "wireframe" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestRenderOptions(t *testing.T) {
	cfg := Default()
	cfg.Render.Mode = "points"

	opts, err := cfg.RenderOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Mode != field.ModePoints {
		t.Errorf("mode = %v, want points", opts.Mode)
	}
}

func TestFieldParams(t *testing.T) {
	cfg := Default()
	p := cfg.FieldParams()

	if p.TickDuration != 1.0/60.0 {
		t.Errorf("tick duration = %f, want 1/60", p.TickDuration)
	}
	if p.SpawnInterval != cfg.Sim.SpawnInterval {
		t.Error("spawn interval not carried over")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("web")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if !cfg.Render.Secondary {
		t.Error("web preset should enable the secondary connector")
	}
	if cfg.Window.Width != DefaultWidth {
		t.Error("preset should keep the default window")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected presets")
	}
	for _, name := range names {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Errorf("listed preset %q not gettable", name)
			continue
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q invalid: %v", name, err)
		}
	}
}
