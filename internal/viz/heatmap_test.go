package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/wavelab/internal/sim"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{0, -1},
		{0.049, -1},
		{-0.049, -1},
		{0.05, 3},   // (1.05/2)*7 = 3.675
		{-0.05, 3},  // (0.95/2)*7 = 3.325
		{-0.99, 0},  // bottom bucket
		{0.99, 6},   // top bucket
		{1.0, -1},  // falls out of range, dead zone
		{-1.5, -1}, // out of range
		{0.5, 5},   // (1.5/2)*7 = 5.25
		{-0.5, 1},  // (0.5/2)*7 = 1.75
	}

	for _, tt := range tests {
		if got := Bucket(tt.v); got != tt.want {
			t.Errorf("Bucket(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestHeatmapDimensions(t *testing.T) {
	s := sim.Snapshot{Nx: 4, Ny: 6, Values: make([]float64, 24)}
	out := NewHeatmap().Render(s)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 rows, got %d", len(lines))
	}
}

func TestHeatmapDownsamples(t *testing.T) {
	h := Heatmap{MaxCols: 10, MaxRows: 10, Cell: "*"}
	s := sim.Snapshot{Nx: 40, Ny: 40, Values: make([]float64, 1600)}
	out := h.Render(s)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) > 10 {
		t.Errorf("expected at most 10 rows after downsampling, got %d", len(lines))
	}
}
