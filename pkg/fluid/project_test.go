package fluid

import (
	"math"
	"testing"
)

func TestProjectRemovesDivergence(t *testing.T) {
	f := newTestFluid(t, 16, 0, 0)
	f.Iterations = 300 // tight pressure solve so the bound is on the scheme, not the sweeps
	n, sz := f.n, f.size

	// Smooth compressible field: one full sine period across the box.
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			f.u[i*sz+j] = 0.05 * float32(math.Sin(2*math.Pi*float64(i)/float64(n)))
			f.v[i*sz+j] = 0.05 * float32(math.Sin(2*math.Pi*float64(j)/float64(n)))
		}
	}
	f.setBounds(bndU, f.u)
	f.setBounds(bndV, f.v)

	before := f.MaxDivergence()
	if before <= 0 {
		t.Fatalf("test field has no divergence to remove (got %v)", before)
	}

	// The velocity step projects twice per step; mirror that here.
	f.project(f.u, f.v, f.uPrev, f.vPrev)
	f.project(f.u, f.v, f.uPrev, f.vPrev)

	after := f.MaxDivergence()
	if after >= before {
		t.Errorf("projection did not reduce divergence: %v -> %v", before, after)
	}
	if after > 1e-4 {
		t.Errorf("max divergence after projection = %v; want <= 1e-4", after)
	}
}

func TestProjectZeroFieldStaysZero(t *testing.T) {
	f := newTestFluid(t, 8, 0, 0)

	f.project(f.u, f.v, f.uPrev, f.vPrev)

	for cell, val := range f.u {
		if val != 0 {
			t.Fatalf("u[%d] = %v after projecting a zero field", cell, val)
		}
	}
	for cell, val := range f.v {
		if val != 0 {
			t.Fatalf("v[%d] = %v after projecting a zero field", cell, val)
		}
	}
}

func TestMaxDivergenceDetectsCompression(t *testing.T) {
	f := newTestFluid(t, 8, 0, 0)
	n, sz := f.n, f.size
	// Radially expanding flow from the grid center.
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			f.u[i*sz+j] = float32(i) - float32(n+1)/2
			f.v[i*sz+j] = float32(j) - float32(n+1)/2
		}
	}

	if div := f.MaxDivergence(); div <= 0 {
		t.Errorf("MaxDivergence() = %v for an expanding field; want > 0", div)
	}
}
