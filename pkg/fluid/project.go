package fluid

import "math"

// project forces the velocity field toward zero divergence. The discrete
// divergence of (u, v) is collected into div, a pressure field satisfying
// the Poisson equation ∇²p = div is relaxed into p, and the pressure
// gradient is subtracted from the velocity. p and div are caller-provided
// scratch grids; their previous contents are discarded.
func (f *Fluid) project(u, v, p, div []float32) {
	n, sz := f.n, f.size
	h := 1.0 / float32(n)

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			div[i*sz+j] = -0.5 * h * (u[(i+1)*sz+j] - u[(i-1)*sz+j] +
				v[i*sz+j+1] - v[i*sz+j-1])
			p[i*sz+j] = 0
		}
	}
	f.setBounds(bndScalar, div)
	f.setBounds(bndScalar, p)

	f.linSolve(bndScalar, p, div, 1, 4)

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			u[i*sz+j] -= 0.5 * (p[(i+1)*sz+j] - p[(i-1)*sz+j]) / h
			v[i*sz+j] -= 0.5 * (p[i*sz+j+1] - p[i*sz+j-1]) / h
		}
	}
	f.setBounds(bndU, u)
	f.setBounds(bndV, v)
}

// MaxDivergence returns the largest absolute discrete divergence over the
// interior, measured exactly as the projection stage measures it. Useful
// as a diagnostic for how incompressible the current field is.
func (f *Fluid) MaxDivergence() float32 {
	n, sz := f.n, f.size
	h := 1.0 / float32(n)
	var maxDiv float32

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			div := 0.5 * h * (f.u[(i+1)*sz+j] - f.u[(i-1)*sz+j] +
				f.v[i*sz+j+1] - f.v[i*sz+j-1])
			if a := float32(math.Abs(float64(div))); a > maxDiv {
				maxDiv = a
			}
		}
	}
	return maxDiv
}
