package metrics

import "github.com/san-kum/wavelab/internal/sim"

// Energy integrates the squared field over the domain, a cheap proxy for
// the wave energy content visible in one time level. With absorbing edges
// it rises while the pulse is active and decays as the wave leaves.
type Energy struct {
	dx, dy float64
	last   float64
}

func NewEnergy(dx, dy float64) *Energy {
	return &Energy{dx: dx, dy: dy}
}

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Observe(s sim.Snapshot) {
	sum := 0.0
	for _, v := range s.Values {
		sum += v * v
	}
	e.last = sum * e.dx * e.dy
}

func (e *Energy) Value() float64 { return e.last }

func (e *Energy) Reset() { e.last = 0 }
