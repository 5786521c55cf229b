package sim

import (
	"context"

	"github.com/san-kum/wavelab/internal/config"
	"github.com/san-kum/wavelab/internal/grid"
	"github.com/san-kum/wavelab/internal/solver"
)

// Driver owns the field buffers and runs the per-step pipeline:
// interior stencil, source injection, boundary edges, boundary corners,
// snapshot publication, buffer rotation. Cancellation is honored only
// between steps so observers never see a partial update.
type Driver struct {
	field    *grid.Field
	stepper  *solver.Stepper
	pulse    solver.Pulse
	boundary solver.Boundary
	cf       solver.Coeffs

	steps     int
	n         int
	done      bool
	metrics   []Metric
	observers []Observer

	// Validate checks field finiteness after every step and stops with
	// ErrUnstable instead of silently continuing.
	Validate bool
}

// New builds a driver from a validated configuration, with dt at the CFL
// bound.
func New(cfg *config.Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cf := solver.NewCoeffs(cfg.WaveSpeed, cfg.Dx, cfg.Dy, cfg.Nx(), cfg.Ny())
	pulse := solver.Pulse{
		I:          cfg.Source.I,
		J:          cfg.Source.J,
		Amplitude:  cfg.Source.Amplitude,
		Width:      cfg.Source.Width,
		Wavelength: cfg.Source.Wavelength,
		Onset:      cfg.Source.Onset,
	}
	return NewWithCoeffs(cf, pulse, cfg.Steps), nil
}

// NewWithCoeffs builds a driver from already-derived coefficients. The
// caller is responsible for keeping dt within the stability bound.
func NewWithCoeffs(cf solver.Coeffs, pulse solver.Pulse, steps int) *Driver {
	return &Driver{
		field:    grid.NewField(cf.Nx, cf.Ny),
		stepper:  solver.NewStepper(cf),
		pulse:    pulse,
		boundary: solver.NewBoundary(cf),
		cf:       cf,
		steps:    steps,
		Validate: true,
	}
}

func (d *Driver) Coeffs() solver.Coeffs { return d.cf }
func (d *Driver) Steps() int            { return d.steps }
func (d *Driver) StepIndex() int        { return d.n }
func (d *Driver) Time() float64         { return float64(d.n) * d.cf.Dt }
func (d *Driver) Done() bool            { return d.done || d.n >= d.steps }

func (d *Driver) SetParallel(p bool) { d.stepper.Parallel = p }

func (d *Driver) AddMetric(m Metric)     { d.metrics = append(d.metrics, m) }
func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// Snapshot copies the current time level into a fresh read-only snapshot.
func (d *Driver) Snapshot() Snapshot {
	return d.capture(d.field.Cur(), d.n)
}

func (d *Driver) capture(g *grid.Grid, step int) Snapshot {
	s := Snapshot{
		Nx:     g.Nx(),
		Ny:     g.Ny(),
		Step:   step,
		Time:   float64(step) * d.cf.Dt,
		Values: make([]float64, g.Nx()*g.Ny()),
	}
	g.CopyInto(s.Values)
	return s
}

// StepOnce runs one full pipeline pass: interior stencil, source, edges,
// corners, snapshot, rotate. The published snapshot carries the step index n
// that drove the source term. Returns ErrUnstable (wrapped with the step)
// when validation finds non-finite values.
func (d *Driver) StepOnce() error {
	if d.Done() {
		return nil
	}

	d.stepper.Step(d.field)
	d.pulse.Inject(d.field, d.n, d.cf)
	d.boundary.ApplyEdges(d.field)
	d.boundary.ApplyCorners(d.field)

	snap := d.capture(d.field.Next(), d.n)
	d.field.Rotate()
	d.n++

	if d.Validate && !snap.IsFinite() {
		d.done = true
		return &StepError{Step: snap.Step, Time: snap.Time, Wrapped: ErrUnstable}
	}

	for _, m := range d.metrics {
		m.Observe(snap)
	}
	for _, o := range d.observers {
		o.OnStep(snap)
	}
	return nil
}

// Run steps until the configured step count is reached or ctx is canceled
// between steps. The result carries final metric values and their per-step
// series.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	for _, m := range d.metrics {
		m.Reset()
	}

	result := &Result{
		Metrics: make(map[string]float64),
		Series:  make(map[string][]float64, len(d.metrics)),
		Times:   make([]float64, 0, d.steps),
	}

	for !d.Done() {
		select {
		case <-ctx.Done():
			d.done = true
			d.finish(result)
			return result, ctx.Err()
		default:
		}

		if err := d.StepOnce(); err != nil {
			d.finish(result)
			return result, err
		}

		result.StepsTaken++
		result.Times = append(result.Times, float64(d.n-1)*d.cf.Dt)
		for _, m := range d.metrics {
			result.Series[m.Name()] = append(result.Series[m.Name()], m.Value())
		}
	}

	d.finish(result)
	return result, nil
}

func (d *Driver) finish(result *Result) {
	result.Final = d.Snapshot()
	for _, m := range d.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

// Reset zeroes all three buffers and rewinds the step counter.
func (d *Driver) Reset() {
	for _, g := range []*grid.Grid{d.field.Prev(), d.field.Cur(), d.field.Next()} {
		g.Zero()
	}
	d.n = 0
	d.done = false
	for _, m := range d.metrics {
		m.Reset()
	}
}
