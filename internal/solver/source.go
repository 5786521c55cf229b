package solver

import (
	"math"

	"github.com/san-kum/wavelab/internal/grid"
)

// Pulse is a localized time-varying point source: a Gaussian-windowed
// sinusoid injected at a single interior node.
type Pulse struct {
	I, J       int
	Amplitude  float64
	Width      float64 // full width of the Gaussian envelope
	Wavelength float64
	Onset      float64 // center time of the envelope
}

// Value evaluates the forcing at time t for wave speed c.
func (p Pulse) Value(t, c float64) float64 {
	env := (t - p.Onset) / (p.Width / 2)
	return p.Amplitude * math.Exp(-env*env) * math.Sin(2*math.Pi*c/p.Wavelength*t)
}

// Inject overwrites next[I,J] with the forcing at t = n*dt, regardless of
// what the stencil computed there. n is the 0-based index of the current
// time level. Runs after the interior pass and before the boundary pass;
// the boundary extrapolation may read this node.
func (p Pulse) Inject(f *grid.Field, n int, cf Coeffs) {
	f.Next().Set(p.I, p.J, p.Value(float64(n)*cf.Dt, cf.C))
}
