package domain

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	m "github.com/mouse-blink/cubegen/internal/model"
)

// Molecule is the quantum chemistry service the evaluators sample.
// Implementations must allow concurrent RinvIntegrals calls.
type Molecule interface {
	NumAtoms() int
	AtomCoord(i int) m.Vec3
	AtomCharge(i int) float64
	Atoms() []m.Atom
	NAO() int
	EvalAO(coords []m.Vec3, out *mat.Dense) (*mat.Dense, error)
	EvalRho(ao *mat.Dense, dm mat.Matrix) ([]float64, error)
	EvalOrbital(ao *mat.Dense, coeff []float64) ([]float64, error)
	RinvIntegrals(origin m.Vec3, out *mat.SymDense) (*mat.SymDense, error)
}

// MoleculeFactory builds a Molecule from a loaded job.
type MoleculeFactory func(job m.Job) (Molecule, error)

// DensityMatrix converts row slices into a nao x nao matrix.
func DensityMatrix(rows [][]float64, nao int) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, ErrNoDensityMatrix
	}

	if len(rows) != nao {
		return nil, fmt.Errorf("%w: density matrix has %d rows, basis has %d functions", m.ErrBasisMismatch, len(rows), nao)
	}

	data := make([]float64, 0, nao*nao)
	for i, row := range rows {
		if len(row) != nao {
			return nil, fmt.Errorf("%w: density matrix row %d has %d columns, want %d", m.ErrBasisMismatch, i, len(row), nao)
		}

		data = append(data, row...)
	}

	return mat.NewDense(nao, nao, data), nil
}

// OrbitalCoefficients extracts column k of a nao x nmo coefficient matrix.
func OrbitalCoefficients(rows [][]float64, nao, k int) ([]float64, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: job has no mo_coeffs", ErrNoOrbital)
	}

	if len(rows) != nao {
		return nil, fmt.Errorf("%w: mo_coeffs has %d rows, basis has %d functions", m.ErrBasisMismatch, len(rows), nao)
	}

	coeff := make([]float64, nao)
	for mu, row := range rows {
		if k < 0 || k >= len(row) {
			return nil, fmt.Errorf("%w: orbital %d of %d", ErrNoOrbital, k, len(row))
		}

		coeff[mu] = row[k]
	}

	return coeff, nil
}
