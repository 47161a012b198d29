package fluid

// boundary selects which wall condition setBounds enforces on a grid.
type boundary int

const (
	// bndScalar copies the adjacent interior value onto the border
	// (zero-gradient continuity, used for density, pressure, divergence).
	bndScalar boundary = iota
	// bndU negates across the vertical walls so no flow crosses them,
	// and copies along the horizontal walls (free tangential slip).
	bndU
	// bndV negates across the horizontal walls and copies along the
	// vertical walls.
	bndV
)

// setBounds overwrites every ghost border cell of x so the field satisfies
// the solid-wall condition for its kind. Corner cells are the average of
// their two edge neighbors. The pass is idempotent: border values depend
// only on interior values.
func (f *Fluid) setBounds(b boundary, x []float32) {
	n, sz := f.n, f.size

	for j := 1; j <= n; j++ {
		if b == bndU {
			x[0*sz+j] = -x[1*sz+j]
			x[(n+1)*sz+j] = -x[n*sz+j]
		} else {
			x[0*sz+j] = x[1*sz+j]
			x[(n+1)*sz+j] = x[n*sz+j]
		}
	}
	for i := 1; i <= n; i++ {
		if b == bndV {
			x[i*sz+0] = -x[i*sz+1]
			x[i*sz+n+1] = -x[i*sz+n]
		} else {
			x[i*sz+0] = x[i*sz+1]
			x[i*sz+n+1] = x[i*sz+n]
		}
	}

	x[0*sz+0] = 0.5 * (x[1*sz+0] + x[0*sz+1])
	x[0*sz+n+1] = 0.5 * (x[1*sz+n+1] + x[0*sz+n])
	x[(n+1)*sz+0] = 0.5 * (x[n*sz+0] + x[(n+1)*sz+1])
	x[(n+1)*sz+n+1] = 0.5 * (x[n*sz+n+1] + x[(n+1)*sz+n])
}
