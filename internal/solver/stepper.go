package solver

import (
	"runtime"
	"sync"

	"github.com/san-kum/wavelab/internal/grid"
)

// Stepper applies the 5-point explicit leapfrog stencil to every interior
// node, writing time level n+1 from levels n and n-1. Boundary nodes are left
// untouched; they belong to the Boundary pass.
type Stepper struct {
	cf Coeffs

	// Parallel splits the interior rows across workers. Rows are
	// independent given the two prior levels, and Step does not return
	// until every worker finishes, so the boundary pass never observes a
	// partial interior.
	Parallel bool
}

func NewStepper(cf Coeffs) *Stepper {
	return &Stepper{cf: cf}
}

func (s *Stepper) Step(f *grid.Field) {
	if s.Parallel && s.cf.Nx >= 64 {
		parallelRows(1, s.cf.Nx-1, func(lo, hi int) {
			s.stepRows(f, lo, hi)
		})
		return
	}
	s.stepRows(f, 1, s.cf.Nx-1)
}

func (s *Stepper) stepRows(f *grid.Field, lo, hi int) {
	prev, cur, next := f.Prev(), f.Cur(), f.Next()
	tx, ty := s.cf.ThetaX, s.cf.ThetaY
	for i := lo; i < hi; i++ {
		for j := 1; j < s.cf.Ny-1; j++ {
			u := cur.At(i, j)
			next.Set(i, j, 2*u+
				tx*(cur.At(i+1, j)-2*u+cur.At(i-1, j))+
				ty*(cur.At(i, j+1)-2*u+cur.At(i, j-1))-
				prev.At(i, j))
		}
	}
}

// parallelRows runs fn over chunks of [lo, hi) and waits for all of them.
func parallelRows(lo, hi int, fn func(lo, hi int)) {
	n := hi - lo
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(lo, hi)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := lo + w*chunk
		end := start + chunk
		if end > hi {
			end = hi
		}
		go func(s, e int) {
			defer wg.Done()
			if s < e {
				fn(s, e)
			}
		}(start, end)
	}
	wg.Wait()
}
