package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/wavelab/internal/sim"
)

func snap(values ...float64) sim.Snapshot {
	return sim.Snapshot{Nx: 1, Ny: len(values), Values: values}
}

func TestAmplitudeTracksLastSnapshot(t *testing.T) {
	m := NewAmplitude()

	m.Observe(snap(0.1, -0.8, 0.3))
	if m.Value() != 0.8 {
		t.Errorf("expected 0.8, got %f", m.Value())
	}

	m.Observe(snap(0.05, -0.02))
	if m.Value() != 0.05 {
		t.Errorf("amplitude should follow the latest snapshot, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestPeakIsMonotone(t *testing.T) {
	p := NewPeak()

	p.Observe(snap(0.5))
	p.Observe(snap(-2.0))
	p.Observe(snap(0.1))

	if p.Value() != 2.0 {
		t.Errorf("expected running peak 2.0, got %f", p.Value())
	}
}

func TestEnergy(t *testing.T) {
	e := NewEnergy(0.5, 0.5)

	e.Observe(snap(1.0, 2.0, -1.0))
	want := (1.0 + 4.0 + 1.0) * 0.25
	if math.Abs(e.Value()-want) > 1e-12 {
		t.Errorf("expected energy %f, got %f", want, e.Value())
	}

	e.Observe(snap(0, 0))
	if e.Value() != 0 {
		t.Error("expected zero energy for a zero field")
	}
}
