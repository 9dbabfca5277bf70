package field

import "math"

// Per-channel phase rates for the seed-driven color cycle.
const (
	redScale   = 0.2
	greenScale = 0.3
	blueScale  = 0.5

	// colorDrift sets how fast a star's hue keeps moving after spawn.
	// 0 would freeze every star at its spawn color; 1 would march all
	// stars through the same cycle in lockstep.
	colorDrift = 0.25
)

// Star is one emitted particle. Direction is fixed at spawn; the seed
// drives the color cycle and is the only state the attractor perturbs.
type Star struct {
	Pos  Vec2
	Vel  Vec2
	Seed float64
}

// SpawnStar creates a star at the origin heading along angle at the given
// speed (units per second). The seed is the spawn timestamp, so successive
// spawns walk through a continuously shifting hue cycle.
func SpawnStar(angle, now, speed float64) Star {
	return Star{
		Vel:  Vec2{math.Cos(angle), math.Sin(angle)}.Scale(speed),
		Seed: now,
	}
}

// Tick advances the star by one fixed simulation step. Velocity is in
// units per second, so the position delta is scaled by the tick length.
func (s *Star) Tick(tickScale, speedFactor float64) {
	s.Pos = s.Pos.Add(s.Vel.Scale(tickScale))
	if speedFactor != 1 {
		s.Vel = s.Vel.Scale(speedFactor)
	}
}

// ColorAt derives the star's color at simulated time now. The phase starts
// at the spawn seed and drifts forward, so colors keep evolving after spawn
// while stars spawned at different times stay distinct.
func (s *Star) ColorAt(now float64) Color {
	p := s.Seed + (now-s.Seed)*colorDrift
	return Color{
		R: 0.5 + 0.5*math.Sin(p*redScale),
		G: 0.5 + 0.5*math.Sin(p*greenScale),
		B: 0.5 + 0.5*math.Sin(p*blueScale),
		A: 1,
	}
}

// SpawnColor is the color frozen at spawn time, used by static color mode.
func (s *Star) SpawnColor() Color { return s.ColorAt(s.Seed) }

func (s *Star) DistSqrTo(o *Star) float64 { return s.Pos.DistSqr(o.Pos) }
