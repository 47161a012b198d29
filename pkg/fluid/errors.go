package fluid

import "errors"

var (
	// ErrGridSize indicates the requested interior grid size is below one cell.
	ErrGridSize = errors.New("fluid: grid size must be at least 1")
	// ErrRate indicates a diffusion or viscosity rate is negative or non-finite.
	ErrRate = errors.New("fluid: rates must be finite and non-negative")
	// ErrShape indicates an external grid does not match the (N+2)×(N+2) layout.
	ErrShape = errors.New("fluid: grid length does not match simulation size")
	// ErrNotFinite indicates a NaN or Inf was found in a simulation grid.
	ErrNotFinite = errors.New("fluid: non-finite value in grid")
)
