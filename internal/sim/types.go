package sim

import "math"

// Snapshot is a read-only copy of the field handed to renderers and metrics
// after each completed step. Consumers never see a partially updated grid.
type Snapshot struct {
	Nx, Ny int
	Step   int
	Time   float64
	Values []float64 // row-major, Nx*Ny
}

func (s Snapshot) At(i, j int) float64 {
	return s.Values[i*s.Ny+j]
}

// MaxAbs returns the largest field magnitude in the snapshot.
func (s Snapshot) MaxAbs() float64 {
	max := 0.0
	for _, v := range s.Values {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

// IsFinite reports whether every node holds a finite value.
func (s Snapshot) IsFinite() bool {
	for _, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type Observer interface {
	OnStep(s Snapshot)
}

type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}

type Result struct {
	StepsTaken int
	Final      Snapshot
	Metrics    map[string]float64
	Series     map[string][]float64 // per-step metric values, keyed by name
	Times      []float64
}
