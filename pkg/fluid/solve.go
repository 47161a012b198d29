package fluid

// linSolve relaxes x toward the solution of
//
//	c·x[i,j] − a·(x[i−1,j] + x[i+1,j] + x[i,j−1] + x[i,j+1]) = x0[i,j]
//
// for every interior cell, running f.Iterations Gauss-Seidel sweeps. The
// sweep updates in place, so neighbors already visited this sweep
// contribute their new values. Boundary conditions are reapplied after
// every sweep. There is no convergence check; the fixed sweep count trades
// accuracy for a bounded, deterministic cost.
func (f *Fluid) linSolve(b boundary, x, x0 []float32, a, c float32) {
	n, sz := f.n, f.size
	for k := 0; k < f.Iterations; k++ {
		for i := 1; i <= n; i++ {
			for j := 1; j <= n; j++ {
				x[i*sz+j] = (x0[i*sz+j] + a*(x[(i-1)*sz+j]+x[(i+1)*sz+j]+
					x[i*sz+j-1]+x[i*sz+j+1])) / c
			}
		}
		f.setBounds(b, x)
	}
}

// diffuse relaxes x toward an implicitly diffused copy of x0. Solving the
// backward-diffusion system instead of stepping forward keeps the stage
// stable for any dt. A zero rate degenerates to copying x0 into x.
func (f *Fluid) diffuse(b boundary, x, x0 []float32, rate, dt float32) {
	a := dt * rate * float32(f.n*f.n)
	f.linSolve(b, x, x0, a, 1+4*a)
}
