package model

// FieldKind identifies the quantity stored in a cube.
type FieldKind string

const (
	// FieldDensity is the electron density in e/Bohr^3.
	FieldDensity FieldKind = "density"
	// FieldPotential is the molecular electrostatic potential.
	FieldPotential FieldKind = "potential"
	// FieldOrbital is a molecular orbital amplitude.
	FieldOrbital FieldKind = "orbital"
)

// CubeHeader describes the grid and the molecule of a cube file.
type CubeHeader struct {
	Comment    string
	Identifier string
	Origin     Vec3
	Nx, Ny, Nz int
	Voxel      [3]Vec3
	Atoms      []Atom
}

// Cube is a complete cube file: header plus values in x-outer, z-inner order.
type Cube struct {
	Header CubeHeader
	Values []float64
}

// NewCubeHeader fills a header from a grid and the atoms it was built around.
func NewCubeHeader(grid Grid, atoms []Atom, comment string) CubeHeader {
	return CubeHeader{
		Comment: comment,
		Origin:  grid.Origin,
		Nx:      grid.Nx,
		Ny:      grid.Ny,
		Nz:      grid.Nz,
		Voxel:   grid.Voxel,
		Atoms:   atoms,
	}
}
