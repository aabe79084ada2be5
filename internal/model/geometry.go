// Package model defines the data structures shared by cube generation.
package model

import "math"

// Path represents a file system path.
type Path string

// Vec3 is a point or displacement in Cartesian space, in Bohr.
type Vec3 [3]float64

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Scale returns v scaled by f.
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v[0] * f, v[1] * f, v[2] * f}
}

// Dot returns the scalar product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dist returns the distance between v and o.
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Norm()
}

// Atom is a nucleus with its position.
type Atom struct {
	Symbol   string
	Z        int
	Charge   float64
	Position Vec3
}

// Geometry is an ordered list of atoms.
type Geometry struct {
	Atoms []Atom
}

// NumAtoms returns the number of atoms.
func (g Geometry) NumAtoms() int {
	return len(g.Atoms)
}

// Bounds returns the per-axis minimum and maximum atomic coordinates.
// The result is undefined for an empty geometry.
func (g Geometry) Bounds() (Vec3, Vec3) {
	if len(g.Atoms) == 0 {
		return Vec3{}, Vec3{}
	}

	lo := g.Atoms[0].Position
	hi := g.Atoms[0].Position

	for _, atom := range g.Atoms[1:] {
		for k := range 3 {
			lo[k] = math.Min(lo[k], atom.Position[k])
			hi[k] = math.Max(hi[k], atom.Position[k])
		}
	}

	return lo, hi
}
