package fluid

import (
	"math"
)

// DefaultIterations is the number of Gauss-Seidel sweeps per linear solve.
const DefaultIterations = 20

// Fluid holds the full state of one simulation: the velocity field (u, v),
// the smoke density, and the previous-step buffers that double as source
// accumulators and scratch space. All grids are flat (n+2)×(n+2) slices
// indexed i*size+j, where row/column 0 and n+1 are ghost border cells.
type Fluid struct {
	n        int // interior cells per side
	size     int // n + 2, including the ghost border
	numCells int

	diff float32 // density diffusion rate
	visc float32 // velocity viscosity

	// Iterations is the number of relaxation sweeps used by the diffusion
	// and pressure solves. The reference count is 20; raise it for tighter
	// convergence, lower it for speed.
	Iterations int

	u, v           []float32
	uPrev, vPrev   []float32
	dens, densPrev []float32
}

// New allocates a zeroed simulation with n×n interior cells.
func New(n int, diff, visc float32) (*Fluid, error) {
	if n < 1 {
		return nil, ErrGridSize
	}
	if diff < 0 || visc < 0 || !finite(diff) || !finite(visc) {
		return nil, ErrRate
	}
	size := n + 2
	numCells := size * size
	return &Fluid{
		n:          n,
		size:       size,
		numCells:   numCells,
		diff:       diff,
		visc:       visc,
		Iterations: DefaultIterations,
		u:          make([]float32, numCells),
		v:          make([]float32, numCells),
		uPrev:      make([]float32, numCells),
		vPrev:      make([]float32, numCells),
		dens:       make([]float32, numCells),
		densPrev:   make([]float32, numCells),
	}, nil
}

// N returns the interior grid size.
func (f *Fluid) N() int { return f.n }

// Size returns the full grid side length including the ghost border.
func (f *Fluid) Size() int { return f.size }

// Step advances the simulation by dt: velocity first, then density
// transported through the updated velocity field.
func (f *Fluid) Step(dt float32) {
	f.VelStep(dt)
	f.DensStep(dt)
}

// VelStep advances the velocity field: force addition, viscous diffusion
// of both components, projection, self-advection through the frozen
// pre-advection field, and a second projection. Both projections are
// required; the first removes divergence before advection samples the
// field, the second removes divergence introduced by advection itself.
func (f *Fluid) VelStep(dt float32) {
	f.addSource(f.u, f.uPrev, dt)
	f.addSource(f.v, f.vPrev, dt)

	f.u, f.uPrev = f.uPrev, f.u
	f.diffuse(bndU, f.u, f.uPrev, f.visc, dt)
	f.v, f.vPrev = f.vPrev, f.v
	f.diffuse(bndV, f.v, f.vPrev, f.visc, dt)
	f.project(f.u, f.v, f.uPrev, f.vPrev)

	f.u, f.uPrev = f.uPrev, f.u
	f.v, f.vPrev = f.vPrev, f.v
	f.advect(bndU, f.u, f.uPrev, f.uPrev, f.vPrev, dt)
	f.advect(bndV, f.v, f.vPrev, f.uPrev, f.vPrev, dt)
	f.project(f.u, f.v, f.uPrev, f.vPrev)
}

// DensStep advances the smoke density: source addition, diffusion, then
// advection through the current velocity field. Density is a passive
// scalar and is never projected.
func (f *Fluid) DensStep(dt float32) {
	f.addSource(f.dens, f.densPrev, dt)
	f.dens, f.densPrev = f.densPrev, f.dens
	f.diffuse(bndScalar, f.dens, f.densPrev, f.diff, dt)
	f.dens, f.densPrev = f.densPrev, f.dens
	f.advect(bndScalar, f.dens, f.densPrev, f.u, f.v, dt)
}

// addSource accumulates x += dt*s over the whole grid, border included.
func (f *Fluid) addSource(x, s []float32, dt float32) {
	for i := range x {
		x[i] += dt * s[i]
	}
}

// AddDensity adds smoke to the density source buffer at interior cell
// (i, j). Cells outside the interior are ignored.
func (f *Fluid) AddDensity(i, j int, amount float32) {
	if i < 1 || i > f.n || j < 1 || j > f.n {
		return
	}
	f.densPrev[i*f.size+j] += amount
}

// AddForce adds a velocity impulse to the force source buffers at interior
// cell (i, j). Cells outside the interior are ignored.
func (f *Fluid) AddForce(i, j int, fu, fv float32) {
	if i < 1 || i > f.n || j < 1 || j > f.n {
		return
	}
	cell := i*f.size + j
	f.uPrev[cell] += fu
	f.vPrev[cell] += fv
}

// SetSources replaces the source buffers with caller-supplied grids. Each
// grid must be a flat (n+2)×(n+2) slice; a nil grid leaves the matching
// buffer untouched.
func (f *Fluid) SetSources(dens, u, v []float32) error {
	for _, g := range [][]float32{dens, u, v} {
		if g != nil && len(g) != f.numCells {
			return ErrShape
		}
	}
	if dens != nil {
		copy(f.densPrev, dens)
	}
	if u != nil {
		copy(f.uPrev, u)
	}
	if v != nil {
		copy(f.vPrev, v)
	}
	return nil
}

// ClearSources zeroes the source buffers. Call between steps when sources
// should act as single-frame impulses rather than continuous emitters.
func (f *Fluid) ClearSources() {
	fill(f.uPrev, 0)
	fill(f.vPrev, 0)
	fill(f.densPrev, 0)
}

// Reset zeroes every grid, returning the simulation to its initial state.
func (f *Fluid) Reset() {
	fill(f.u, 0)
	fill(f.v, 0)
	fill(f.uPrev, 0)
	fill(f.vPrev, 0)
	fill(f.dens, 0)
	fill(f.densPrev, 0)
}

// TotalDensity returns the smoke density summed over the interior cells.
func (f *Fluid) TotalDensity() float32 {
	n, sz := f.n, f.size
	var sum float32
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			sum += f.dens[i*sz+j]
		}
	}
	return sum
}

func fill(slice []float32, val float32) {
	for i := range slice {
		slice[i] = val
	}
}

func finite(v float32) bool {
	f64 := float64(v)
	return !math.IsNaN(f64) && !math.IsInf(f64, 0)
}
