package fluid

import "fmt"

// ScalarField is a read-only snapshot of one scalar grid, with the value
// range precomputed for renderers that normalize colors.
type ScalarField struct {
	Size     int // full side length, ghost border included
	MinValue float32
	MaxValue float32
	values   []float32
}

// Value returns the field value at grid cell (i, j).
func (s ScalarField) Value(i, j int) (float32, error) {
	if i < 0 || i >= s.Size {
		return 0.0, fmt.Errorf("x index out of range, must be between 0 and %d", s.Size-1)
	}
	if j < 0 || j >= s.Size {
		return 0.0, fmt.Errorf("y index out of range, must be between 0 and %d", s.Size-1)
	}
	return s.values[i*s.Size+j], nil
}

// Density returns a snapshot of the smoke density field.
func (f *Fluid) Density() ScalarField {
	vals := make([]float32, f.numCells)
	copy(vals, f.dens)

	minVal, maxVal := vals[0], vals[0]
	for _, v := range vals {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return ScalarField{
		Size:     f.size,
		MinValue: minVal,
		MaxValue: maxVal,
		values:   vals,
	}
}
