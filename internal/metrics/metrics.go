package metrics

import (
	"github.com/san-kum/starfield/internal/field"
)

// Metric observes the world once per tick and reduces what it saw to a
// single value for the run summary.
type Metric interface {
	Name() string
	Observe(w *field.World)
	Value() float64
	Reset()
}

// MeanCount averages the retained-star count over the run.
type MeanCount struct {
	total   int64
	samples int64
}

func NewMeanCount() *MeanCount { return &MeanCount{} }

func (m *MeanCount) Name() string { return "mean_stars" }

func (m *MeanCount) Observe(w *field.World) {
	m.total += int64(len(w.Stars))
	m.samples++
}

func (m *MeanCount) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.total) / float64(m.samples)
}

func (m *MeanCount) Reset() {
	m.total = 0
	m.samples = 0
}

// PeakCount tracks the largest retained window seen.
type PeakCount struct {
	peak int
}

func NewPeakCount() *PeakCount { return &PeakCount{} }

func (m *PeakCount) Name() string { return "peak_stars" }

func (m *PeakCount) Observe(w *field.World) {
	if len(w.Stars) > m.peak {
		m.peak = len(w.Stars)
	}
}

func (m *PeakCount) Value() float64 { return float64(m.peak) }

func (m *PeakCount) Reset() { m.peak = 0 }

// SpawnRate reports stars spawned per simulated second.
type SpawnRate struct {
	spawned int64
	now     float64
}

func NewSpawnRate() *SpawnRate { return &SpawnRate{} }

func (m *SpawnRate) Name() string { return "spawns_per_sec" }

func (m *SpawnRate) Observe(w *field.World) {
	m.spawned = w.Spawned
	m.now = w.Now()
}

func (m *SpawnRate) Value() float64 {
	if m.now == 0 {
		return 0
	}
	return float64(m.spawned) / m.now
}

func (m *SpawnRate) Reset() {
	m.spawned = 0
	m.now = 0
}

// Defaults is the metric set the run command reports.
func Defaults() []Metric {
	return []Metric{NewMeanCount(), NewPeakCount(), NewSpawnRate()}
}
