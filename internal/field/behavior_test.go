package field_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/starfield/internal/field"
)

var _ = Describe("World", func() {
	var (
		w      *field.World
		bounds field.Bounds
	)

	BeforeEach(func() {
		w = field.NewWorld(field.DefaultParams())
		bounds = field.CenteredBounds(1e6, 1e6)
	})

	advance := func(n int) {
		for i := 0; i < n; i++ {
			w.Advance(bounds)
		}
	}

	It("spawns one star per elapsed spawn interval", func() {
		advance(600) // ten simulated seconds
		Expect(w.Spawned).To(BeNumerically("~", 100, 1))
	})

	It("seeds stars with spawn times one interval apart", func() {
		advance(600)
		Expect(len(w.Stars)).To(BeNumerically(">", 5))
		p := w.Params
		for i := 1; i < len(w.Stars); i++ {
			gap := w.Stars[i].Seed - w.Stars[i-1].Seed
			Expect(gap).To(BeNumerically("~", p.SpawnInterval, p.TickDuration))
		}
	})

	Context("with an active attractor", func() {
		It("perturbs nearby stars more than distant ones", func() {
			advance(600)
			Expect(len(w.Stars)).To(BeNumerically(">", 2), "need stars to perturb")

			near, far := 0, 0
			attractor := w.Stars[near].Pos.Add(field.Vec2{X: 1, Y: 0})
			for i, s := range w.Stars {
				if s.Pos.Sub(attractor).Len() > w.Stars[far].Pos.Sub(attractor).Len() {
					far = i
				}
			}
			Expect(far).NotTo(Equal(near))

			nearSeed := w.Stars[near].Seed
			farSeed := w.Stars[far].Seed

			w.SetAttractor(attractor)
			w.Advance(bounds)

			nearDelta := w.Stars[near].Seed - nearSeed
			farDelta := w.Stars[far].Seed - farSeed
			Expect(nearDelta).To(BeNumerically(">", 0))
			Expect(farDelta).To(BeNumerically(">", 0))
			Expect(nearDelta).To(BeNumerically(">", farDelta))
		})

		It("leaves positions untouched", func() {
			advance(600)
			w.SetAttractor(field.Vec2{})

			withAttractor := field.NewWorld(field.DefaultParams())
			withAttractor.SetAttractor(field.Vec2{})
			for i := int64(0); i < w.Ticks; i++ {
				withAttractor.Advance(bounds)
			}

			Expect(withAttractor.Stars).To(HaveLen(len(w.Stars)))
			for i := range w.Stars {
				Expect(withAttractor.Stars[i].Pos).To(Equal(w.Stars[i].Pos))
			}
		})

		It("clears back to no attractor", func() {
			w.SetAttractor(field.Vec2{X: 3, Y: 4})
			Expect(w.Attractor).NotTo(BeNil())
			w.ClearAttractor()
			Expect(w.Attractor).To(BeNil())
		})
	})
})

var _ = Describe("Star colors", func() {
	It("keep evolving after spawn", func() {
		s := field.SpawnStar(0, 5.0, 10)
		Expect(s.ColorAt(5.0)).NotTo(Equal(s.ColorAt(50.0)))
	})

	It("stay in channel range", func() {
		for now := 0.0; now < 100; now += 0.7 {
			s := field.SpawnStar(0, now, 10)
			for t := now; t < now+30; t += 1.3 {
				c := s.ColorAt(t)
				Expect(c.R).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1)))
				Expect(c.G).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1)))
				Expect(c.B).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1)))
				Expect(c.A).To(Equal(1.0))
			}
		}
	})

	It("freeze at the spawn color in static mode", func() {
		s := field.SpawnStar(0, 7.0, 10)
		Expect(s.SpawnColor()).To(Equal(s.ColorAt(7.0)))
	})
})
