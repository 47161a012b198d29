package fluid

// advect transports d0 along the velocity field (u, v) and writes the
// result into d. Each interior cell traces backward to the position that
// would have arrived here after dt, clamps it into [0.5, n+0.5] so the
// interpolation never reads past the ghost border, and bilinearly samples
// d0 there. d and d0 must be distinct buffers: every read comes from the
// old field, so no partially written cell feeds a later one.
func (f *Fluid) advect(b boundary, d, d0, u, v []float32, dt float32) {
	n, sz := f.n, f.size
	dt0 := dt * float32(n)
	hi := float32(n) + 0.5

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			x := float32(i) - dt0*u[i*sz+j]
			y := float32(j) - dt0*v[i*sz+j]

			x = min(max(x, 0.5), hi)
			i0 := int(x)
			i1 := i0 + 1
			s1 := x - float32(i0)
			s0 := 1 - s1

			y = min(max(y, 0.5), hi)
			j0 := int(y)
			j1 := j0 + 1
			t1 := y - float32(j0)
			t0 := 1 - t1

			d[i*sz+j] = s0*(t0*d0[i0*sz+j0]+t1*d0[i0*sz+j1]) +
				s1*(t0*d0[i1*sz+j0]+t1*d0[i1*sz+j1])
		}
	}
	f.setBounds(b, d)
}
