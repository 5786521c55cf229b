package grid

// Grid is a rectangular scalar field of Nx x Ny nodes stored as a single
// contiguous row-major buffer.
type Grid struct {
	nx, ny int
	data   []float64
}

func NewGrid(nx, ny int) *Grid {
	return &Grid{nx: nx, ny: ny, data: make([]float64, nx*ny)}
}

func (g *Grid) Nx() int { return g.nx }
func (g *Grid) Ny() int { return g.ny }

// At returns the value at node (i, j). Indices outside [0,Nx) x [0,Ny)
// are a programming error and panic.
func (g *Grid) At(i, j int) float64 {
	g.check(i, j)
	return g.data[i*g.ny+j]
}

func (g *Grid) Set(i, j int, v float64) {
	g.check(i, j)
	g.data[i*g.ny+j] = v
}

func (g *Grid) check(i, j int) {
	if i < 0 || i >= g.nx || j < 0 || j >= g.ny {
		panic("grid: index out of range")
	}
}

// Values exposes the backing buffer. Callers must treat it as read-only.
func (g *Grid) Values() []float64 { return g.data }

// CopyInto copies the field values into dst, which must hold Nx*Ny elements.
func (g *Grid) CopyInto(dst []float64) {
	copy(dst, g.data)
}

// Zero resets every node to zero.
func (g *Grid) Zero() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Field holds the three time levels of the wave field as a fixed ring of
// buffers. Rotate relabels the ring; no data is ever copied or reallocated.
type Field struct {
	nx, ny int
	bufs   [3]*Grid
	cur    int
}

func NewField(nx, ny int) *Field {
	f := &Field{nx: nx, ny: ny}
	for i := range f.bufs {
		f.bufs[i] = NewGrid(nx, ny)
	}
	return f
}

func (f *Field) Nx() int { return f.nx }
func (f *Field) Ny() int { return f.ny }

// Prev is the field at time level n-1.
func (f *Field) Prev() *Grid { return f.bufs[(f.cur+2)%3] }

// Cur is the field at time level n.
func (f *Field) Cur() *Grid { return f.bufs[f.cur] }

// Next is the scratch buffer for time level n+1.
func (f *Field) Next() *Grid { return f.bufs[(f.cur+1)%3] }

// Rotate advances one time level: next becomes current, current becomes
// previous, and the old previous is reused as the next scratch buffer.
func (f *Field) Rotate() {
	f.cur = (f.cur + 1) % 3
}
