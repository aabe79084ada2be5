package model

// Units of the coordinates in a job file.
type Units string

const (
	// UnitsBohr means coordinates are already atomic units.
	UnitsBohr Units = "bohr"
	// UnitsAngstrom means coordinates are converted with BohrRadius.
	UnitsAngstrom Units = "angstrom"
)

// BohrRadius is one Bohr in Angstrom.
const BohrRadius = 0.52917721092

// ShellSpec is a user supplied contracted shell on an atom.
type ShellSpec struct {
	Atom         int
	L            int
	Exponents    []float64
	Coefficients []float64
}

// GridOverride holds grid settings chosen explicitly by a job file or on the
// command line. Nil fields leave the underlying setting alone.
type GridOverride struct {
	Nx, Ny, Nz *int
	Margin     *float64
	Resolution *float64
}

// Job is everything needed to evaluate fields for one molecule.
type Job struct {
	Name          string
	Units         Units
	Atoms         []Atom
	Basis         string
	Shells        []ShellSpec
	DensityMatrix [][]float64
	MOCoeffs      [][]float64 // nao x nmo, column k is orbital k
	Grid          GridOverride
}

// Geometry returns the atoms of the job as a Geometry.
func (j Job) Geometry() Geometry {
	return Geometry{Atoms: j.Atoms}
}
