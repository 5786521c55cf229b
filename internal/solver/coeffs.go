package solver

import "math"

// Coeffs holds the scalars derived once from the physical configuration.
// They are computed at construction and never mutated afterward.
type Coeffs struct {
	Nx, Ny int
	Dx, Dy float64
	C      float64
	Dt     float64

	// Squared Courant numbers (c*dt/dx)^2 and (c*dt/dy)^2.
	ThetaX, ThetaY float64

	// Reflection coefficients for the one-way boundary extrapolation,
	// shared by each pair of opposing edges.
	Rx, Ry float64
}

// MaxStableDt returns the CFL bound 1/(c*sqrt(1/dx^2 + 1/dy^2)), the largest
// time step for which the explicit scheme stays stable. The reference scheme
// runs exactly at this bound.
func MaxStableDt(c, dx, dy float64) float64 {
	return 1.0 / (c * math.Sqrt(1.0/(dx*dx)+1.0/(dy*dy)))
}

// NewCoeffs derives the stencil and boundary scalars with dt at the CFL bound.
func NewCoeffs(c, dx, dy float64, nx, ny int) Coeffs {
	return NewCoeffsWithDt(c, dx, dy, MaxStableDt(c, dx, dy), nx, ny)
}

// NewCoeffsWithDt derives the scalars for an explicit dt. A dt above
// MaxStableDt produces an unstable scheme; callers wanting that guarded
// should validate before stepping.
func NewCoeffsWithDt(c, dx, dy, dt float64, nx, ny int) Coeffs {
	ox := c * dt / dx
	oy := c * dt / dy
	return Coeffs{
		Nx:     nx,
		Ny:     ny,
		Dx:     dx,
		Dy:     dy,
		C:      c,
		Dt:     dt,
		ThetaX: ox * ox,
		ThetaY: oy * oy,
		Rx:     (c*dt - dx) / (c*dt + dx),
		Ry:     (c*dt - dy) / (c*dt + dy),
	}
}

// Stable reports whether dt is at or below the CFL bound. A small relative
// slack absorbs floating-point rounding when dt was computed from the bound
// itself.
func (cf Coeffs) Stable() bool {
	return cf.Dt <= MaxStableDt(cf.C, cf.Dx, cf.Dy)*(1+1e-12)
}
