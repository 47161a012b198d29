package fluid

import "fmt"

// VectorField is a read-only snapshot of the velocity field.
type VectorField struct {
	Size             int // full side length, ghost border included
	valuesU, valuesV []float32
}

// Value returns the (u, v) velocity at grid cell (i, j).
func (f VectorField) Value(i, j int) (float32, float32, error) {
	if i < 0 || i >= f.Size {
		return 0.0, 0.0, fmt.Errorf("x index out of range, must be between 0 and %d", f.Size-1)
	}
	if j < 0 || j >= f.Size {
		return 0.0, 0.0, fmt.Errorf("y index out of range, must be between 0 and %d", f.Size-1)
	}
	return f.valuesU[i*f.Size+j], f.valuesV[i*f.Size+j], nil
}

// Velocity returns a snapshot of the velocity field.
func (f *Fluid) Velocity() VectorField {
	uCopy := make([]float32, f.numCells)
	copy(uCopy, f.u)
	vCopy := make([]float32, f.numCells)
	copy(vCopy, f.v)
	return VectorField{
		Size:    f.size,
		valuesU: uCopy,
		valuesV: vCopy,
	}
}
