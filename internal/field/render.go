package field

import "math"

const (
	// StarRadius is the point-mode circle radius.
	StarRadius = 2.0
	// LineWidth is the stroke width for every connector segment.
	LineWidth = 4.0
	// MaxSegmentLen caps the length of each flat-colored gradient piece.
	MaxSegmentLen = 5.0
)

var connectorGray = Color{R: 0.3, G: 0.3, B: 0.3, A: 1}

type Mode int

const (
	ModeLines Mode = iota
	ModePoints
)

type PrimitiveKind int

const (
	KindCircle PrimitiveKind = iota
	KindLine
)

// Primitive is one draw call for the backend: a filled circle or a solid
// line. Backends draw a single color per call, which is why gradients are
// approximated with chains of short flat-colored segments.
type Primitive struct {
	Kind     PrimitiveKind
	From, To Vec2 // line endpoints
	Center   Vec2 // circle center
	Radius   float64
	Width    float64
	RoundCap bool
	Color    Color
}

// Options selects what the renderer emits. The input layer sets it; the
// renderer only reads it, once per frame.
type Options struct {
	Mode      Mode
	Primary   bool // gradient chain to the nearest later star
	Secondary bool // gray connector to the second nearest
	Static    bool // freeze each star's color at its spawn time
}

func DefaultOptions() Options {
	return Options{Mode: ModeLines, Primary: true}
}

// Render turns a snapshot of the star window into an ordered sequence of
// draw primitives. It never mutates the snapshot, and the same input always
// produces the same output.
//
// Lines mode scans every later-spawned star per star, an O(n²) pass. The
// eviction policy keeps the window small enough that this runs comfortably
// once per displayed frame.
func Render(stars []Star, now float64, opts Options) []Primitive {
	var prims []Primitive

	if opts.Mode == ModePoints {
		for i := range stars {
			prims = append(prims, Primitive{
				Kind:   KindCircle,
				Center: stars[i].Pos,
				Radius: StarRadius,
				Color:  colorOf(&stars[i], now, opts),
			})
		}
		return prims
	}

	for i := 0; i+1 < len(stars); i++ {
		star := &stars[i]
		first, second := nearestAfter(stars, i)
		if opts.Secondary && second >= 0 {
			prims = append(prims, Primitive{
				Kind:     KindLine,
				From:     star.Pos,
				To:       stars[second].Pos,
				Width:    LineWidth,
				RoundCap: true,
				Color:    connectorGray,
			})
		}
		if opts.Primary && first >= 0 {
			prims = appendGradient(prims, star, &stars[first], now, opts)
		}
	}
	return prims
}

// nearestAfter scans the stars spawned after index i and returns the indices
// of the closest and second closest by squared distance, or -1 when absent.
// Strict comparison means the first star in scan order wins ties.
func nearestAfter(stars []Star, i int) (first, second int) {
	first, second = -1, -1
	var d1, d2 float64
	for j := i + 1; j < len(stars); j++ {
		d := stars[i].DistSqrTo(&stars[j])
		switch {
		case first < 0 || d < d1:
			second, d2 = first, d1
			first, d1 = j, d
		case second < 0 || d < d2:
			second, d2 = j, d
		}
	}
	return first, second
}

// appendGradient emits the chain of flat-colored segments approximating a
// color gradient from a to b. The segment count is the span length divided
// by MaxSegmentLen rounded up, so no piece exceeds the maximum; position
// and color advance by fixed deltas after each piece.
func appendGradient(prims []Primitive, a, b *Star, now float64, opts Options) []Primitive {
	span := b.Pos.Sub(a.Pos)
	n := math.Ceil(span.Len() / MaxSegmentLen)
	if n < 1 {
		n = 1
	}
	posDelta := span.Scale(1 / n)
	ca := colorOf(a, now, opts)
	cb := colorOf(b, now, opts)
	colorDelta := Color{
		R: (cb.R - ca.R) / n,
		G: (cb.G - ca.G) / n,
		B: (cb.B - ca.B) / n,
		A: 1,
	}

	pos, col := a.Pos, ca
	for k := 0; k < int(n); k++ {
		next := pos.Add(posDelta)
		prims = append(prims, Primitive{
			Kind:     KindLine,
			From:     pos,
			To:       next,
			Width:    LineWidth,
			RoundCap: true,
			Color:    col,
		})
		pos = next
		col = Color{R: col.R + colorDelta.R, G: col.G + colorDelta.G, B: col.B + colorDelta.B, A: 1}
	}
	return prims
}

func colorOf(s *Star, now float64, opts Options) Color {
	if opts.Static {
		return s.SpawnColor()
	}
	return s.ColorAt(now)
}
