package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/onsi/gomega"

	"github.com/san-kum/wavelab/internal/config"
	"github.com/san-kum/wavelab/internal/solver"
)

func testConfig() *config.Config {
	return &config.Config{
		Lx: 1.0, Ly: 1.0, Dx: 1.0 / 32, Dy: 1.0 / 32,
		WaveSpeed: 1.0, Steps: 40,
		Source: config.SourceConfig{
			I: 16, J: 16, Amplitude: 1.0,
			Width: 0.2, Wavelength: 0.25, Onset: 0.05,
		},
	}
}

type countingObserver struct {
	calls int
	steps []int
}

func (c *countingObserver) OnStep(s Snapshot) {
	c.calls++
	c.steps = append(c.steps, s.Step)
}

func TestDriverRunCompletes(t *testing.T) {
	g := gomega.NewWithT(t)

	driver, err := New(testConfig())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	result, err := driver.Run(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(result.StepsTaken).To(gomega.Equal(40))
	g.Expect(result.Times).To(gomega.HaveLen(40))
	g.Expect(result.Final.IsFinite()).To(gomega.BeTrue())
	g.Expect(driver.Done()).To(gomega.BeTrue())
}

func TestDriverRejectsInvalidConfig(t *testing.T) {
	g := gomega.NewWithT(t)

	cfg := testConfig()
	cfg.Source.I = 0 // on the boundary, not strictly interior

	_, err := New(cfg)
	g.Expect(err).To(gomega.HaveOccurred())
}

func TestDriverObserverCadence(t *testing.T) {
	g := gomega.NewWithT(t)

	driver, err := New(testConfig())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	obs := &countingObserver{}
	driver.AddObserver(obs)

	_, err = driver.Run(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(obs.calls).To(gomega.Equal(40))
	for i, s := range obs.steps {
		g.Expect(s).To(gomega.Equal(i), "snapshots must arrive once per step, in order")
	}
}

func TestDriverCancellationBetweenSteps(t *testing.T) {
	g := gomega.NewWithT(t)

	driver, err := New(testConfig())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := driver.Run(ctx)
	g.Expect(err).To(gomega.MatchError(context.Canceled))
	g.Expect(result.StepsTaken).To(gomega.Equal(0))
}

func TestDriverSurfacesInstability(t *testing.T) {
	g := gomega.NewWithT(t)

	dx := 1.0 / 32
	dt := 1.5 * solver.MaxStableDt(1.0, dx, dx)
	cf := solver.NewCoeffsWithDt(1.0, dx, dx, dt, 33, 33)
	pulse := solver.Pulse{I: 16, J: 16, Amplitude: 1, Width: 0.2, Wavelength: 0.25, Onset: 0.05}

	driver := NewWithCoeffs(cf, pulse, 2000)
	_, err := driver.Run(context.Background())

	g.Expect(err).To(gomega.HaveOccurred())
	g.Expect(errors.Is(err, ErrUnstable)).To(gomega.BeTrue())

	var stepErr *StepError
	g.Expect(errors.As(err, &stepErr)).To(gomega.BeTrue())
	g.Expect(stepErr.Step).To(gomega.BeNumerically("<", 2000))
}

func TestSnapshotIsACopy(t *testing.T) {
	g := gomega.NewWithT(t)

	driver, err := New(testConfig())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	var first Snapshot
	driver.AddObserver(observerFunc(func(s Snapshot) {
		if s.Step == 0 {
			first = s
		}
	}))

	_, err = driver.Run(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	// Later steps mutate the ring buffers; an earlier snapshot must not see it.
	g.Expect(first.Values).To(gomega.HaveLen(33 * 33))
	g.Expect(first.MaxAbs()).To(gomega.BeNumerically("==", 0))
}

type observerFunc func(Snapshot)

func (f observerFunc) OnStep(s Snapshot) { f(s) }

func TestFramePublisherDropsWhenFull(t *testing.T) {
	g := gomega.NewWithT(t)

	p := NewFramePublisher(1)
	for i := 0; i < 3; i++ {
		p.OnStep(Snapshot{Step: i})
	}

	g.Expect(p.Dropped()).To(gomega.Equal(int64(2)))

	s := <-p.Frames()
	g.Expect(s.Step).To(gomega.Equal(0))

	p.Close()
	_, ok := <-p.Frames()
	g.Expect(ok).To(gomega.BeFalse())
}
