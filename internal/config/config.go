package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/starfield/internal/field"
)

const (
	DefaultWidth          = 1000
	DefaultHeight         = 1000
	DefaultTitle          = "starfield"
	DefaultTicksPerSecond = 60
	DefaultSpawnInterval  = 0.1
	DefaultStarSpeed      = 10.0
	DefaultAngleAccel     = 0.01
	DefaultSpeedFactor    = 1.0
	DefaultAttractorGain  = 40.0
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Sim    SimConfig    `yaml:"sim"`
	Render RenderConfig `yaml:"render"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type SimConfig struct {
	TicksPerSecond int     `yaml:"ticks_per_second"`
	SpawnInterval  float64 `yaml:"spawn_interval"`
	StarSpeed      float64 `yaml:"star_speed"`
	AngleAccel     float64 `yaml:"angle_accel"`
	SpeedFactor    float64 `yaml:"speed_factor"`
	AttractorGain  float64 `yaml:"attractor_gain"`
}

type RenderConfig struct {
	Mode      string `yaml:"mode"` // "lines" or "points"
	Primary   bool   `yaml:"primary"`
	Secondary bool   `yaml:"secondary"`
	Static    bool   `yaml:"static_color"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
		},
		Sim: SimConfig{
			TicksPerSecond: DefaultTicksPerSecond,
			SpawnInterval:  DefaultSpawnInterval,
			StarSpeed:      DefaultStarSpeed,
			AngleAccel:     DefaultAngleAccel,
			SpeedFactor:    DefaultSpeedFactor,
			AttractorGain:  DefaultAttractorGain,
		},
		Render: RenderConfig{
			Mode:    "lines",
			Primary: true,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Sim.TicksPerSecond <= 0 {
		return fmt.Errorf("ticks_per_second must be positive, got %d", c.Sim.TicksPerSecond)
	}
	if c.Sim.SpawnInterval <= 0 {
		return fmt.Errorf("spawn_interval must be positive, got %f", c.Sim.SpawnInterval)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := c.RenderOptions(); err != nil {
		return err
	}
	return nil
}

// FieldParams maps the config onto the core simulation parameters.
func (c *Config) FieldParams() field.Params {
	return field.Params{
		TickDuration:  1.0 / float64(c.Sim.TicksPerSecond),
		SpawnInterval: c.Sim.SpawnInterval,
		StarSpeed:     c.Sim.StarSpeed,
		AngleAccel:    c.Sim.AngleAccel,
		SpeedFactor:   c.Sim.SpeedFactor,
		AttractorGain: c.Sim.AttractorGain,
	}
}

// RenderOptions maps the config onto the renderer's option flags.
func (c *Config) RenderOptions() (field.Options, error) {
	opts := field.Options{
		Primary:   c.Render.Primary,
		Secondary: c.Render.Secondary,
		Static:    c.Render.Static,
	}
	switch c.Render.Mode {
	case "", "lines":
		opts.Mode = field.ModeLines
	case "points":
		opts.Mode = field.ModePoints
	default:
		return opts, fmt.Errorf("unknown render mode: %q", c.Render.Mode)
	}
	return opts, nil
}
