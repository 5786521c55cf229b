package metrics

import "github.com/san-kum/wavelab/internal/sim"

// Amplitude reports the largest field magnitude in the most recent snapshot.
type Amplitude struct {
	last float64
}

func NewAmplitude() *Amplitude { return &Amplitude{} }

func (a *Amplitude) Name() string { return "max_amplitude" }

func (a *Amplitude) Observe(s sim.Snapshot) { a.last = s.MaxAbs() }

func (a *Amplitude) Value() float64 { return a.last }

func (a *Amplitude) Reset() { a.last = 0 }

// Peak tracks the largest field magnitude seen over the whole run. For a
// stable scheme with a finite pulse this stays bounded; divergence shows up
// here first.
type Peak struct {
	max float64
}

func NewPeak() *Peak { return &Peak{} }

func (p *Peak) Name() string { return "peak_amplitude" }

func (p *Peak) Observe(s sim.Snapshot) {
	if m := s.MaxAbs(); m > p.max {
		p.max = m
	}
}

func (p *Peak) Value() float64 { return p.max }

func (p *Peak) Reset() { p.max = 0 }
