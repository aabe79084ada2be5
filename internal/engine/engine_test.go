package engine

import (
	"math"
	"testing"

	"github.com/mouse-blink/cubegen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func singleShell(l int, a float64) Shell {
	return Shell{L: l, Exponents: []float64{a}, Coefficients: []float64{1}}
}

func hydrogen(pos model.Vec3) model.Atom {
	return model.Atom{Symbol: "H", Z: 1, Charge: 1, Position: pos}
}

func TestBoys_Limits(t *testing.T) {
	assert.InDelta(t, 1.0, Boys(0, 0), 1e-12)
	assert.InDelta(t, 1.0/3, Boys(1, 0), 1e-12)
	assert.InDelta(t, 1.0/5, Boys(2, 0), 1e-12)

	// F_0(t) = sqrt(pi/t)/2 * erf(sqrt(t))
	for _, x := range []float64{1e-6, 0.3, 1, 7.5, 40} {
		want := 0.5 * math.Sqrt(math.Pi/x) * math.Erf(math.Sqrt(x))
		assert.InDelta(t, want, Boys(0, x), 1e-10, "t=%g", x)
	}
}

func TestBoysTable_MatchesDirect(t *testing.T) {
	for _, x := range []float64{0, 0.01, 2.3, 19} {
		table := boysTable(4, x, nil)
		require.Len(t, table, 5)

		for n := range 5 {
			assert.InDelta(t, Boys(n, x), table[n], 1e-10, "n=%d t=%g", n, x)
		}
	}
}

func TestCartesianPowers_Order(t *testing.T) {
	assert.Equal(t, [][3]int{{0, 0, 0}}, cartesianPowers(0))
	assert.Equal(t, [][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, cartesianPowers(1))
	assert.Equal(t, [][3]int{{2, 0, 0}, {1, 1, 0}, {1, 0, 1}, {0, 2, 0}, {0, 1, 1}, {0, 0, 2}}, cartesianPowers(2))
}

func TestShell_Validate(t *testing.T) {
	tests := []struct {
		name  string
		shell Shell
	}{
		{"negative l", Shell{L: -1, Exponents: []float64{1}, Coefficients: []float64{1}}},
		{"l too high", Shell{L: 3, Exponents: []float64{1}, Coefficients: []float64{1}}},
		{"no primitives", Shell{L: 0}},
		{"length mismatch", Shell{L: 0, Exponents: []float64{1, 2}, Coefficients: []float64{1}}},
		{"non-positive exponent", Shell{L: 0, Exponents: []float64{0}, Coefficients: []float64{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.shell.Validate(), ErrInvalidShell)
		})
	}

	require.NoError(t, singleShell(1, 0.5).Validate())
}

func TestNewMolecule_NormalizedS(t *testing.T) {
	const a = 0.8

	mol, err := NewMolecule([]model.Atom{hydrogen(model.Vec3{})}, []Shell{singleShell(0, a)})
	require.NoError(t, err)
	require.Equal(t, 1, mol.NAO())

	ao, err := mol.EvalAO([]model.Vec3{{0, 0, 0}, {0.5, 0, 0}}, nil)
	require.NoError(t, err)

	norm := math.Pow(2*a/math.Pi, 0.75)
	assert.InDelta(t, norm, ao.At(0, 0), 1e-12)
	assert.InDelta(t, norm*math.Exp(-a*0.25), ao.At(1, 0), 1e-12)
}

func TestEvalAO_ReusesBuffer(t *testing.T) {
	mol, err := NewMolecule([]model.Atom{hydrogen(model.Vec3{})}, []Shell{singleShell(1, 1)})
	require.NoError(t, err)

	coords := []model.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	first, err := mol.EvalAO(coords, nil)
	require.NoError(t, err)

	second, err := mol.EvalAO(coords[:2], first)
	require.NoError(t, err)

	r, c := second.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Same(t, &first.RawMatrix().Data[0], &second.RawMatrix().Data[0])

	// px is odd in x and vanishes on the y axis.
	assert.Greater(t, second.At(0, 0), 0.0)
	assert.InDelta(t, 0, second.At(1, 0), 1e-15)
}

func TestEvalRho_SingleFunction(t *testing.T) {
	mol, err := NewMolecule([]model.Atom{hydrogen(model.Vec3{})}, []Shell{singleShell(0, 1.2)})
	require.NoError(t, err)

	coords := []model.Vec3{{0, 0, 0}, {0.3, -0.2, 0.1}}
	ao, err := mol.EvalAO(coords, nil)
	require.NoError(t, err)

	rho, err := mol.EvalRho(ao, mat.NewDense(1, 1, []float64{2}))
	require.NoError(t, err)

	for g := range coords {
		phi := ao.At(g, 0)
		assert.InDelta(t, 2*phi*phi, rho[g], 1e-14)
	}
}

func TestEvalRho_BasisMismatch(t *testing.T) {
	mol, err := NewMolecule([]model.Atom{hydrogen(model.Vec3{})}, []Shell{singleShell(0, 1)})
	require.NoError(t, err)

	ao, err := mol.EvalAO([]model.Vec3{{}}, nil)
	require.NoError(t, err)

	_, err = mol.EvalRho(ao, mat.NewDense(2, 2, nil))
	require.ErrorIs(t, err, ErrBasisMismatch)
}

func TestRinvIntegrals_SAtCenter(t *testing.T) {
	const a = 0.7

	mol, err := NewMolecule([]model.Atom{hydrogen(model.Vec3{})}, []Shell{singleShell(0, a)})
	require.NoError(t, err)

	v, err := mol.RinvIntegrals(model.Vec3{}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 2*math.Sqrt(2*a/math.Pi), v.At(0, 0), 1e-10)
}

func TestRinvIntegrals_PAtCenter(t *testing.T) {
	const a = 0.9

	mol, err := NewMolecule([]model.Atom{hydrogen(model.Vec3{})}, []Shell{singleShell(1, a)})
	require.NoError(t, err)

	v, err := mol.RinvIntegrals(model.Vec3{}, nil)
	require.NoError(t, err)

	want := 4.0 / 3 * math.Sqrt(2*a/math.Pi)
	for i := range 3 {
		assert.InDelta(t, want, v.At(i, i), 1e-10)

		for j := range 3 {
			if i != j {
				assert.InDelta(t, 0, v.At(i, j), 1e-12)
			}
		}
	}
}

func TestRinvIntegrals_FarOriginApproachesPointCharge(t *testing.T) {
	atoms := []model.Atom{hydrogen(model.Vec3{0, 0, 0}), hydrogen(model.Vec3{1.4, 0, 0})}
	shells, err := BuiltinBasis("sto-3g", atoms)
	require.NoError(t, err)

	mol, err := NewMolecule(atoms, shells)
	require.NoError(t, err)

	origin := model.Vec3{0.7, 0, 60}
	v, err := mol.RinvIntegrals(origin, nil)
	require.NoError(t, err)

	// Diagonal elements of normalized functions tend to 1/R far away.
	for i := range mol.NAO() {
		r := origin.Dist(mol.AtomCoord(i))
		assert.InDelta(t, 1/r, v.At(i, i), 1e-6)
	}
}

func TestRinvIntegrals_ReusesOutput(t *testing.T) {
	mol, err := NewMolecule([]model.Atom{hydrogen(model.Vec3{})}, []Shell{singleShell(0, 1), singleShell(1, 0.5)})
	require.NoError(t, err)

	buf := mat.NewSymDense(mol.NAO(), nil)
	got, err := mol.RinvIntegrals(model.Vec3{0.1, 0.2, 0.3}, buf)
	require.NoError(t, err)
	assert.Same(t, buf, got)
}

func TestEvalOrbital(t *testing.T) {
	mol, err := NewMolecule([]model.Atom{hydrogen(model.Vec3{})}, []Shell{singleShell(0, 1), singleShell(0, 0.3)})
	require.NoError(t, err)

	ao, err := mol.EvalAO([]model.Vec3{{0.2, 0, 0}}, nil)
	require.NoError(t, err)

	psi, err := mol.EvalOrbital(ao, []float64{0.5, -1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5*ao.At(0, 0)-ao.At(0, 1), psi[0], 1e-14)

	_, err = mol.EvalOrbital(ao, []float64{1})
	require.ErrorIs(t, err, ErrBasisMismatch)
}

func TestBuiltinBasis(t *testing.T) {
	water := []model.Atom{
		{Symbol: "O", Z: 8, Charge: 8},
		{Symbol: "H", Z: 1, Charge: 1, Position: model.Vec3{1.43, 1.1, 0}},
		{Symbol: "H", Z: 1, Charge: 1, Position: model.Vec3{-1.43, 1.1, 0}},
	}

	shells, err := BuiltinBasis("STO-3G", water)
	require.NoError(t, err)

	mol, err := NewMolecule(water, shells)
	require.NoError(t, err)
	assert.Equal(t, 7, mol.NAO())

	_, err = BuiltinBasis("6-31g*", water)
	require.ErrorIs(t, err, ErrUnknownBasis)

	_, err = BuiltinBasis("sto-3g", []model.Atom{{Symbol: "Fe", Z: 26}})
	require.ErrorIs(t, err, ErrUnknownBasis)
}

func TestNewMoleculeFromJob(t *testing.T) {
	job := model.Job{
		Atoms: []model.Atom{hydrogen(model.Vec3{}), hydrogen(model.Vec3{2, 0, 0})},
		Shells: []model.ShellSpec{
			{Atom: 1, L: 1, Exponents: []float64{0.4}, Coefficients: []float64{1}},
		},
		Basis: "sto-3g",
	}

	mol, err := NewMoleculeFromJob(job)
	require.NoError(t, err)
	assert.Equal(t, 5, mol.NAO())

	job.Shells[0].Atom = 5
	_, err = NewMoleculeFromJob(job)
	require.ErrorIs(t, err, ErrInvalidShell)
}

func TestAtomicNumber(t *testing.T) {
	z, err := AtomicNumber("o")
	require.NoError(t, err)
	assert.Equal(t, 8, z)

	sym, err := ElementSymbol(17)
	require.NoError(t, err)
	assert.Equal(t, "Cl", sym)

	_, err = AtomicNumber("Xx")
	require.ErrorIs(t, err, ErrUnknownElement)
}
