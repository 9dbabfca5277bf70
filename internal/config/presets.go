package config

// Presets are named tunings for the display. Each starts from Default and
// overrides the simulation and render sections.
var Presets = map[string]*Config{
	"classic": {
		Sim: SimConfig{
			TicksPerSecond: 60, SpawnInterval: 0.1, StarSpeed: 10,
			AngleAccel: 0.01, SpeedFactor: 1, AttractorGain: 40,
		},
		Render: RenderConfig{Mode: "lines", Primary: true},
	},
	"web": {
		Sim: SimConfig{
			TicksPerSecond: 60, SpawnInterval: 0.06, StarSpeed: 14,
			AngleAccel: 0.02, SpeedFactor: 1, AttractorGain: 40,
		},
		Render: RenderConfig{Mode: "lines", Primary: true, Secondary: true},
	},
	"embers": {
		Sim: SimConfig{
			TicksPerSecond: 60, SpawnInterval: 0.05, StarSpeed: 16,
			AngleAccel: 0.015, SpeedFactor: 0.999, AttractorGain: 60,
		},
		Render: RenderConfig{Mode: "points", Static: true},
	},
	"frost": {
		Sim: SimConfig{
			TicksPerSecond: 60, SpawnInterval: 0.15, StarSpeed: 6,
			AngleAccel: 0.005, SpeedFactor: 1.001, AttractorGain: 20,
		},
		Render: RenderConfig{Mode: "lines", Primary: true, Static: true},
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := Default()
	cfg.Sim = p.Sim
	cfg.Render = p.Render
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
