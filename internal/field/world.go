package field

import "math"

const twoPi = 2 * math.Pi

// Params holds the simulation tuning. All rates except AngleAccel are per
// second of simulated time; Advance scales them by the tick length.
type Params struct {
	TickDuration  float64 // seconds of simulated time per tick
	SpawnInterval float64 // seconds between star emissions
	StarSpeed     float64 // star speed at spawn, units per second
	AngleAccel    float64 // spawn-angle acceleration, radians/tick per second
	SpeedFactor   float64 // per-tick velocity multiplier, 1 = constant speed
	AttractorGain float64 // seed perturbation per second at zero distance
}

func DefaultParams() Params {
	return Params{
		TickDuration:  1.0 / 60.0,
		SpawnInterval: 0.1,
		StarSpeed:     10,
		AngleAccel:    0.01,
		SpeedFactor:   1,
		AttractorGain: 40,
	}
}

// World owns the star window and the spawner state. It advances in fixed
// ticks of simulated time, decoupled from wall-clock frame rate: the host
// loop calls Advance zero or more times per displayed frame to catch up.
type World struct {
	Params Params

	// Stars is ordered by spawn time, oldest first. Insertion is append-only
	// at the back, eviction only from the front.
	Stars []Star

	Angle     float64 // spawn direction, radians in [0, 2π)
	AngleVel  float64 // radians per tick, in [0, 2π)
	Ticks     int64
	LastSpawn float64
	Spawned   int64

	// Attractor is the held pointer position, nil while no button is down.
	Attractor *Vec2
}

func NewWorld(p Params) *World {
	return &World{Params: p}
}

// Now is the simulated clock. Deriving it from the tick counter keeps it
// exact: k ticks is always exactly k tick durations, however the host
// distributed those ticks across frames.
func (w *World) Now() float64 {
	return float64(w.Ticks) * w.Params.TickDuration
}

// Advance runs one fixed simulation tick against the visible bounds:
// spawn, integrate, evict, rotate, perturb.
func (w *World) Advance(bounds Bounds) {
	tick := w.Params.TickDuration
	w.Ticks++
	now := w.Now()

	if now-w.LastSpawn >= w.Params.SpawnInterval {
		w.Stars = append(w.Stars, SpawnStar(w.Angle, now, w.Params.StarSpeed))
		// Advance by the interval instead of snapping to now: tick rounding
		// then cancels out over time instead of compounding, keeping the
		// long-run cadence at one spawn per interval.
		w.LastSpawn += w.Params.SpawnInterval
		w.Spawned++
	}

	for i := range w.Stars {
		w.Stars[i].Tick(tick, w.Params.SpeedFactor)
	}

	// Only the front can leave: the oldest stars have traveled farthest.
	for len(w.Stars) > 0 && !bounds.Contains(w.Stars[0].Pos) {
		w.Stars = w.Stars[1:]
	}

	w.Angle = wrapAngle(w.Angle + w.AngleVel)
	w.AngleVel = wrapAngle(w.AngleVel + w.Params.AngleAccel*tick)

	if w.Attractor != nil {
		at := *w.Attractor
		for i := range w.Stars {
			d := w.Stars[i].Pos.Sub(at).Len()
			w.Stars[i].Seed += w.Params.AttractorGain * tick / (1 + d)
		}
	}
}

// SetAttractor places the attractor at p, replacing any previous point.
func (w *World) SetAttractor(p Vec2) {
	w.Attractor = &p
}

func (w *World) ClearAttractor() {
	w.Attractor = nil
}

// wrapAngle folds v into [0, 2π) by repeated subtraction. Subtraction keeps
// the wrapped value continuous with its neighbors, unlike math.Mod.
func wrapAngle(v float64) float64 {
	for v >= twoPi {
		v -= twoPi
	}
	for v < 0 {
		v += twoPi
	}
	return v
}
