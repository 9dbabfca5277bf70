package field

import "math"

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) DistSqr(o Vec2) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	return dx*dx + dy*dy
}

// Color holds linear channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Bounds is an axis-aligned rectangle in world units.
type Bounds struct {
	Min, Max Vec2
}

// CenteredBounds returns a w-by-h rectangle centered on the origin, matching
// the origin-centered coordinate space the display uses.
func CenteredBounds(w, h float64) Bounds {
	return Bounds{
		Min: Vec2{-w / 2, -h / 2},
		Max: Vec2{w / 2, h / 2},
	}
}

func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }
