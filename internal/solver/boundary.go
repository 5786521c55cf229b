package solver

import "github.com/san-kum/wavelab/internal/grid"

// Boundary applies a first-order one-way (radiating) condition on all four
// edges, letting outgoing waves leave the domain with little artificial
// reflection. Each edge reads only already-computed interior next values and
// its own current boundary value, so the four edges are independent.
type Boundary struct {
	cf Coeffs
}

func NewBoundary(cf Coeffs) Boundary {
	return Boundary{cf: cf}
}

// ApplyEdges fills the n+1 values on the four edges, excluding corners.
// Must run after the interior pass and source injection.
func (b Boundary) ApplyEdges(f *grid.Field) {
	cur, next := f.Cur(), f.Next()
	nx, ny := b.cf.Nx, b.cf.Ny
	rx, ry := b.cf.Rx, b.cf.Ry

	for j := 1; j < ny-1; j++ {
		// left (i = 0)
		next.Set(0, j, cur.At(1, j)+rx*(next.At(1, j)-cur.At(0, j)))
		// right (i = nx-1)
		next.Set(nx-1, j, cur.At(nx-2, j)+rx*(next.At(nx-2, j)-cur.At(nx-1, j)))
	}
	for i := 1; i < nx-1; i++ {
		// bottom (j = 0)
		next.Set(i, 0, cur.At(i, 1)+ry*(next.At(i, 1)-cur.At(i, 0)))
		// top (j = ny-1)
		next.Set(i, ny-1, cur.At(i, ny-2)+ry*(next.At(i, ny-2)-cur.At(i, ny-1)))
	}
}

// ApplyCorners resolves the four corners as plain averages of their two
// edge-resolved neighbors. Not a physically derived condition, kept as a
// deliberate simplification. Must run after ApplyEdges.
func (b Boundary) ApplyCorners(f *grid.Field) {
	next := f.Next()
	nx, ny := b.cf.Nx, b.cf.Ny

	next.Set(0, 0, 0.5*(next.At(1, 0)+next.At(0, 1)))
	next.Set(nx-1, 0, 0.5*(next.At(nx-2, 0)+next.At(nx-1, 1)))
	next.Set(nx-1, ny-1, 0.5*(next.At(nx-2, ny-1)+next.At(nx-1, ny-2)))
	next.Set(0, ny-1, 0.5*(next.At(0, ny-2)+next.At(1, ny-1)))
}
