// Package solver implements the explicit finite-difference kernel for the
// scalar 2D wave equation.
//
// The scheme is a second-order leapfrog update on a uniform grid:
//
//   - [Coeffs]: scalars derived once from the physical configuration
//     (time step at the CFL bound, squared Courant numbers, boundary
//     reflection coefficients)
//   - [Stepper]: 5-point stencil over the interior nodes
//   - [Pulse]: Gaussian-windowed sinusoidal point source
//   - [Boundary]: one-way radiating condition on the edges, averaged corners
//
// # Step Ordering
//
// Within a step the passes are strictly ordered: interior stencil, source
// injection, edges, corners. The edges read interior next-level values
// (including the freshly injected source node) and the corners read
// edge-resolved values, so the order is load-bearing.
//
// # Stability
//
// The explicit scheme is conditionally stable: dt above
// [MaxStableDt] makes the field grow without bound within a few hundred
// steps. [NewCoeffs] always derives dt exactly at the bound.
package solver
