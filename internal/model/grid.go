package model

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when a flat array cannot be viewed as nx*ny*nz.
var ErrShapeMismatch = errors.New("shape mismatch")

// Grid is an axis-aligned sampling box. Coords are ordered with x outermost
// and z innermost, matching the body order of a cube file.
type Grid struct {
	Nx, Ny, Nz int
	Origin     Vec3
	Voxel      [3]Vec3
	Coords     []Vec3
}

// NGrid returns the number of sample points.
func (g Grid) NGrid() int {
	return g.Nx * g.Ny * g.Nz
}

// Index maps a voxel triple to its position in Coords.
func (g Grid) Index(ix, iy, iz int) int {
	return (ix*g.Ny+iy)*g.Nz + iz
}

// Field is a scalar field sampled on a grid.
type Field struct {
	Nx, Ny, Nz int
	Data       []float64
}

// Reshape views data as an nx*ny*nz field without copying.
func Reshape(data []float64, nx, ny, nz int) (Field, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 || len(data) != nx*ny*nz {
		return Field{}, fmt.Errorf("%w: %d values cannot be reshaped to (%d,%d,%d)",
			ErrShapeMismatch, len(data), nx, ny, nz)
	}

	return Field{Nx: nx, Ny: ny, Nz: nz, Data: data}, nil
}

// At returns the value at voxel (ix, iy, iz).
func (f Field) At(ix, iy, iz int) float64 {
	return f.Data[(ix*f.Ny+iy)*f.Nz+iz]
}

// Line returns the nz values of the (ix, iy) column.
func (f Field) Line(ix, iy int) []float64 {
	start := (ix*f.Ny + iy) * f.Nz
	return f.Data[start : start+f.Nz]
}
