package fluid

import "testing"

func newTestFluid(t *testing.T, n int, diff, visc float32) *Fluid {
	t.Helper()
	f, err := New(n, diff, visc)
	if err != nil {
		t.Fatalf("New(%d, %v, %v) error: %v", n, diff, visc, err)
	}
	return f
}

func TestSetBoundsScalarCopiesInterior(t *testing.T) {
	f := newTestFluid(t, 4, 0, 0)
	n, sz := f.n, f.size
	x := make([]float32, f.numCells)
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			x[i*sz+j] = float32(i*10 + j)
		}
	}

	f.setBounds(bndScalar, x)

	for j := 1; j <= n; j++ {
		if x[0*sz+j] != x[1*sz+j] {
			t.Errorf("left border (0,%d) = %v; want copy of %v", j, x[0*sz+j], x[1*sz+j])
		}
		if x[(n+1)*sz+j] != x[n*sz+j] {
			t.Errorf("right border (%d,%d) = %v; want copy of %v", n+1, j, x[(n+1)*sz+j], x[n*sz+j])
		}
	}
	for i := 1; i <= n; i++ {
		if x[i*sz+0] != x[i*sz+1] {
			t.Errorf("top border (%d,0) = %v; want copy of %v", i, x[i*sz+0], x[i*sz+1])
		}
		if x[i*sz+n+1] != x[i*sz+n] {
			t.Errorf("bottom border (%d,%d) = %v; want copy of %v", i, n+1, x[i*sz+n+1], x[i*sz+n])
		}
	}
	if want := 0.5 * (x[1*sz+0] + x[0*sz+1]); x[0*sz+0] != want {
		t.Errorf("corner (0,0) = %v; want %v", x[0*sz+0], want)
	}
	if want := 0.5 * (x[n*sz+n+1] + x[(n+1)*sz+n]); x[(n+1)*sz+n+1] != want {
		t.Errorf("corner (%d,%d) = %v; want %v", n+1, n+1, x[(n+1)*sz+n+1], want)
	}
}

func TestSetBoundsHorizontalVelocitySign(t *testing.T) {
	f := newTestFluid(t, 6, 0, 0)
	n, sz := f.n, f.size
	u := make([]float32, f.numCells)
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			u[i*sz+j] = 2.0
		}
	}

	f.setBounds(bndU, u)

	// No flow through the vertical walls: the ghost column mirrors the
	// adjacent interior column with opposite sign.
	for j := 1; j <= n; j++ {
		if u[0*sz+j] != -2.0 {
			t.Errorf("left wall (0,%d) = %v; want -2.0", j, u[0*sz+j])
		}
		if u[(n+1)*sz+j] != -2.0 {
			t.Errorf("right wall (%d,%d) = %v; want -2.0", n+1, j, u[(n+1)*sz+j])
		}
	}
	// Free slip along the horizontal walls: plain copy.
	for i := 1; i <= n; i++ {
		if u[i*sz+0] != 2.0 {
			t.Errorf("top wall (%d,0) = %v; want 2.0", i, u[i*sz+0])
		}
		if u[i*sz+n+1] != 2.0 {
			t.Errorf("bottom wall (%d,%d) = %v; want 2.0", i, n+1, u[i*sz+n+1])
		}
	}
}

func TestSetBoundsVerticalVelocitySign(t *testing.T) {
	f := newTestFluid(t, 6, 0, 0)
	n, sz := f.n, f.size
	v := make([]float32, f.numCells)
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			v[i*sz+j] = 3.0
		}
	}

	f.setBounds(bndV, v)

	for i := 1; i <= n; i++ {
		if v[i*sz+0] != -3.0 {
			t.Errorf("top wall (%d,0) = %v; want -3.0", i, v[i*sz+0])
		}
		if v[i*sz+n+1] != -3.0 {
			t.Errorf("bottom wall (%d,%d) = %v; want -3.0", i, n+1, v[i*sz+n+1])
		}
	}
	for j := 1; j <= n; j++ {
		if v[0*sz+j] != 3.0 {
			t.Errorf("left wall (0,%d) = %v; want 3.0", j, v[0*sz+j])
		}
		if v[(n+1)*sz+j] != 3.0 {
			t.Errorf("right wall (%d,%d) = %v; want 3.0", n+1, j, v[(n+1)*sz+j])
		}
	}
}

func TestSetBoundsIdempotent(t *testing.T) {
	f := newTestFluid(t, 8, 0, 0)
	for _, b := range []boundary{bndScalar, bndU, bndV} {
		x := make([]float32, f.numCells)
		for i := range x {
			x[i] = float32((i*31)%17) - 8.0
		}

		f.setBounds(b, x)
		once := make([]float32, len(x))
		copy(once, x)
		f.setBounds(b, x)

		for i := range x {
			if x[i] != once[i] {
				t.Fatalf("kind %d: cell %d changed on second pass: %v -> %v", b, i, once[i], x[i])
			}
		}
	}
}
