package viz

import (
	"strings"

	"github.com/san-kum/wavelab/internal/sim"
)

const (
	// NumBuckets is the number of amplitude color buckets; values below
	// DeadZone in magnitude fall into a separate dead-zone bucket.
	NumBuckets = 7
	DeadZone   = 0.05
)

// Bucket maps a field value in [-1, 1] to a color bucket 0..NumBuckets-1,
// or -1 for the near-zero dead zone. Values outside [-1, 1] also land in
// the dead zone.
func Bucket(v float64) int {
	if v > -DeadZone && v < DeadZone {
		return -1
	}
	idx := int((v + 1) / 2 * NumBuckets)
	if idx < 0 || idx >= NumBuckets {
		return -1
	}
	return idx
}

// Heatmap renders a snapshot as rows of colored cells. Grids larger than
// MaxCols x MaxRows are sampled with a uniform stride so the frame fits a
// terminal; the mapping is presentation-only and never feeds back into the
// kernel.
type Heatmap struct {
	MaxCols, MaxRows int
	Cell             string
}

func NewHeatmap() Heatmap {
	return Heatmap{MaxCols: 56, MaxRows: 36, Cell: "* "}
}

func (h Heatmap) Render(s sim.Snapshot) string {
	si := 1
	for s.Nx/si > h.MaxRows {
		si++
	}
	sj := 1
	for s.Ny/sj > h.MaxCols {
		sj++
	}

	var b strings.Builder
	for i := 0; i < s.Nx; i += si {
		for j := 0; j < s.Ny; j += sj {
			bucket := Bucket(s.At(i, j))
			if bucket < 0 {
				b.WriteString(deadStyle.Render(h.Cell))
			} else {
				b.WriteString(bucketStyles[bucket].Render(h.Cell))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
