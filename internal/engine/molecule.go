package engine

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/mouse-blink/cubegen/internal/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrBasisMismatch is returned when a matrix or vector does not match the
// number of basis functions.
var ErrBasisMismatch = model.ErrBasisMismatch

// Molecule couples a geometry with a basis. It is safe for concurrent use:
// no method mutates shared state after construction.
type Molecule struct {
	atoms []model.Atom
	funcs []function

	pairsOnce sync.Once
	pairs     []pairData
}

type hermiteTerm struct {
	t, u, v int
	e       float64
}

type primPair struct {
	p      float64
	center model.Vec3
	pref   float64
	nmax   int
	terms  []hermiteTerm
}

type pairData struct {
	mu, nu int
	prims  []primPair
}

// NewMolecule builds a molecule from atoms and explicit shells.
func NewMolecule(atoms []model.Atom, shells []Shell) (*Molecule, error) {
	if len(atoms) == 0 {
		return nil, errors.New("molecule has no atoms")
	}

	funcs, err := expand(shells)
	if err != nil {
		return nil, err
	}

	if len(funcs) == 0 {
		return nil, fmt.Errorf("%w: no basis functions", ErrInvalidShell)
	}

	own := make([]model.Atom, len(atoms))
	copy(own, atoms)

	return &Molecule{atoms: own, funcs: funcs}, nil
}

// NewMoleculeFromJob builds the basis named by the job (if any) followed by
// its explicit shells.
func NewMoleculeFromJob(job model.Job) (*Molecule, error) {
	var shells []Shell

	if job.Basis != "" {
		builtin, err := BuiltinBasis(job.Basis, job.Atoms)
		if err != nil {
			return nil, err
		}

		shells = append(shells, builtin...)
	}

	for i, spec := range job.Shells {
		if spec.Atom < 0 || spec.Atom >= len(job.Atoms) {
			return nil, fmt.Errorf("%w: shell %d references atom %d of %d", ErrInvalidShell, i, spec.Atom, len(job.Atoms))
		}

		shells = append(shells, Shell{
			AtomIndex:    spec.Atom,
			Center:       job.Atoms[spec.Atom].Position,
			L:            spec.L,
			Exponents:    spec.Exponents,
			Coefficients: spec.Coefficients,
		})
	}

	return NewMolecule(job.Atoms, shells)
}

// NumAtoms returns the number of atoms.
func (m *Molecule) NumAtoms() int { return len(m.atoms) }

// AtomCoord returns the position of atom i in Bohr.
func (m *Molecule) AtomCoord(i int) model.Vec3 { return m.atoms[i].Position }

// AtomCharge returns the nuclear charge of atom i.
func (m *Molecule) AtomCharge(i int) float64 { return m.atoms[i].Charge }

// Atoms returns a copy of the atoms.
func (m *Molecule) Atoms() []model.Atom {
	out := make([]model.Atom, len(m.atoms))
	copy(out, m.atoms)

	return out
}

// NAO returns the number of basis functions.
func (m *Molecule) NAO() int { return len(m.funcs) }

// EvalAO evaluates every basis function at every coordinate. The result is
// len(coords) x NAO. When out has enough backing storage it is reused.
func (m *Molecule) EvalAO(coords []model.Vec3, out *mat.Dense) (*mat.Dense, error) {
	n, nao := len(coords), len(m.funcs)
	if n == 0 {
		return nil, errors.New("no coordinates")
	}

	var buf []float64
	if out != nil && !out.IsEmpty() {
		if raw := out.RawMatrix().Data; cap(raw) >= n*nao {
			buf = raw[:n*nao]
		}
	}

	ao := mat.NewDense(n, nao, buf)

	for g, r := range coords {
		row := ao.RawRowView(g)
		for mu := range m.funcs {
			row[mu] = m.funcs[mu].value(r)
		}
	}

	return ao, nil
}

// EvalRho contracts AO values with a density matrix: rho_g = sum_uv ao_gu D_uv ao_gv.
func (m *Molecule) EvalRho(ao *mat.Dense, dm mat.Matrix) ([]float64, error) {
	n, nao := ao.Dims()
	if r, c := dm.Dims(); r != nao || c != nao {
		return nil, fmt.Errorf("%w: density matrix is %dx%d, basis has %d functions", ErrBasisMismatch, r, c, nao)
	}

	tmp := mat.NewDense(n, nao, nil)
	tmp.Mul(ao, dm)

	rho := make([]float64, n)
	for g := range n {
		rho[g] = floats.Dot(ao.RawRowView(g), tmp.RawRowView(g))
	}

	return rho, nil
}

// EvalOrbital contracts AO values with one column of MO coefficients.
func (m *Molecule) EvalOrbital(ao *mat.Dense, coeff []float64) ([]float64, error) {
	n, nao := ao.Dims()
	if len(coeff) != nao {
		return nil, fmt.Errorf("%w: %d coefficients, basis has %d functions", ErrBasisMismatch, len(coeff), nao)
	}

	out := mat.NewVecDense(n, nil)
	out.MulVec(ao, mat.NewVecDense(nao, coeff))

	return out.RawVector().Data, nil
}

// RinvIntegrals returns <u|1/|r-origin||v> for all basis pairs. The origin is
// an argument rather than molecule state, so concurrent calls are safe. out is
// reused when it has the right size.
func (m *Molecule) RinvIntegrals(origin model.Vec3, out *mat.SymDense) (*mat.SymDense, error) {
	nao := len(m.funcs)
	if out == nil || out.IsEmpty() || out.SymmetricDim() != nao {
		out = mat.NewSymDense(nao, nil)
	}

	m.pairsOnce.Do(m.buildPairs)

	boys := make([]float64, 2*MaxL+1)

	for _, pd := range m.pairs {
		var v float64

		for i := range pd.prims {
			pp := &pd.prims[i]
			pc := pp.center.Sub(origin)
			boys = boysTable(pp.nmax, pp.p*pc.Dot(pc), boys)
			h := hermiteR{p: pp.p, pc: pc, boys: boys}

			var s float64
			for _, term := range pp.terms {
				s += term.e * h.r(term.t, term.u, term.v, 0)
			}

			v += pp.pref * s
		}

		out.SetSym(pd.mu, pd.nu, v)
	}

	return out, nil
}

// buildPairs caches the origin independent part of every primitive pair.
func (m *Molecule) buildPairs() {
	nao := len(m.funcs)
	m.pairs = make([]pairData, 0, nao*(nao+1)/2)

	for mu := range nao {
		for nu := mu; nu < nao; nu++ {
			m.pairs = append(m.pairs, newPairData(mu, nu, &m.funcs[mu], &m.funcs[nu]))
		}
	}
}

func newPairData(mu, nu int, fa, fb *function) pairData {
	ab := fa.center.Sub(fb.center)
	pd := pairData{mu: mu, nu: nu, prims: make([]primPair, 0, len(fa.exps)*len(fb.exps))}

	for i, a := range fa.exps {
		for j, b := range fb.exps {
			p := a + b
			pp := primPair{
				p:      p,
				center: fa.center.Scale(a / p).Add(fb.center.Scale(b / p)),
				pref:   fa.coefs[i] * fb.coefs[j] * 2 * math.Pi / p,
			}

			lx, ly, lz := fa.powers[0]+fb.powers[0], fa.powers[1]+fb.powers[1], fa.powers[2]+fb.powers[2]
			pp.nmax = lx + ly + lz

			for t := 0; t <= lx; t++ {
				et := hermiteE(fa.powers[0], fb.powers[0], t, ab[0], a, b)
				if et == 0 {
					continue
				}

				for u := 0; u <= ly; u++ {
					eu := hermiteE(fa.powers[1], fb.powers[1], u, ab[1], a, b)
					if eu == 0 {
						continue
					}

					for v := 0; v <= lz; v++ {
						ev := hermiteE(fa.powers[2], fb.powers[2], v, ab[2], a, b)
						if ev == 0 {
							continue
						}

						pp.terms = append(pp.terms, hermiteTerm{t: t, u: u, v: v, e: et * eu * ev})
					}
				}
			}

			pd.prims = append(pd.prims, pp)
		}
	}

	return pd
}
