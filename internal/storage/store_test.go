package storage

import (
	"testing"

	"github.com/san-kum/wavelab/internal/sim"
	"github.com/san-kum/wavelab/internal/solver"
)

func testResult() *sim.Result {
	return &sim.Result{
		StepsTaken: 3,
		Final: sim.Snapshot{
			Nx: 2, Ny: 2, Step: 2,
			Values: []float64{0, 0.5, -0.5, 0},
		},
		Metrics: map[string]float64{"max_amplitude": 0.5},
		Series: map[string][]float64{
			"max_amplitude": {0.1, 0.3, 0.5},
			"energy":        {0.01, 0.02, 0.03},
		},
		Times: []float64{0, 0.1, 0.2},
	}
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	cf := solver.NewCoeffs(1.0, 0.5, 0.5, 2, 2)
	runID, err := st.Save(cf, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Nx != 2 || meta.Ny != 2 {
		t.Errorf("expected 2x2 grid, got %dx%d", meta.Nx, meta.Ny)
	}
	if meta.Steps != 3 {
		t.Errorf("expected 3 steps, got %d", meta.Steps)
	}
	if meta.Metrics["max_amplitude"] != 0.5 {
		t.Errorf("metrics lost in round trip: %v", meta.Metrics)
	}
}

func TestLoadSeriesRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	cf := solver.NewCoeffs(1.0, 0.5, 0.5, 2, 2)
	runID, err := st.Save(cf, testResult())
	if err != nil {
		t.Fatal(err)
	}

	times, series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if len(times) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(times))
	}
	if len(series["energy"]) != 3 || series["energy"][2] != 0.03 {
		t.Errorf("energy series wrong: %v", series["energy"])
	}
	if series["max_amplitude"][1] != 0.3 {
		t.Errorf("amplitude series wrong: %v", series["max_amplitude"])
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}

	cf := solver.NewCoeffs(1.0, 0.5, 0.5, 2, 2)
	if _, err := st.Save(cf, testResult()); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("missing base dir should list empty, got error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list, got %d", len(runs))
	}
}
