package fluid

import "fmt"

// CheckFinite scans every grid and reports the first NaN or Inf found,
// identifying the field and cell. Extreme dt/rate combinations can make
// the relaxation diverge; the solver never clamps such values away, so
// callers that want early warning run this after stepping (typically in
// tests or debug builds — the scan costs a full pass over six grids).
func (f *Fluid) CheckFinite() error {
	grids := []struct {
		name string
		data []float32
	}{
		{"u", f.u}, {"v", f.v},
		{"uPrev", f.uPrev}, {"vPrev", f.vPrev},
		{"density", f.dens}, {"densityPrev", f.densPrev},
	}
	for _, g := range grids {
		for cell, val := range g.data {
			if !finite(val) {
				return fmt.Errorf("%w: %s[%d,%d] = %v",
					ErrNotFinite, g.name, cell/f.size, cell%f.size, val)
			}
		}
	}
	return nil
}
