package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/mouse-blink/cubegen/internal/model"
)

// ErrInvalidShell is returned for malformed shell definitions.
var ErrInvalidShell = errors.New("invalid shell")

// MaxL is the highest supported angular momentum (Cartesian d).
const MaxL = 2

// Shell is a contracted Cartesian Gaussian shell on an atom. Coefficients
// refer to normalized primitives.
type Shell struct {
	AtomIndex    int
	Center       model.Vec3
	L            int
	Exponents    []float64
	Coefficients []float64
}

// Validate reports whether the shell can be expanded into basis functions.
func (s Shell) Validate() error {
	if s.L < 0 || s.L > MaxL {
		return fmt.Errorf("%w: angular momentum %d not in [0,%d]", ErrInvalidShell, s.L, MaxL)
	}

	if len(s.Exponents) == 0 || len(s.Exponents) != len(s.Coefficients) {
		return fmt.Errorf("%w: %d exponents, %d coefficients", ErrInvalidShell, len(s.Exponents), len(s.Coefficients))
	}

	for _, a := range s.Exponents {
		if a <= 0 || math.IsNaN(a) || math.IsInf(a, 0) {
			return fmt.Errorf("%w: exponent %g", ErrInvalidShell, a)
		}
	}

	return nil
}

// cartesianPowers lists the (l, m, n) components of a shell in x, y, z order:
// L=1 gives x, y, z and L=2 gives xx, xy, xz, yy, yz, zz.
func cartesianPowers(l int) [][3]int {
	powers := make([][3]int, 0, (l+1)*(l+2)/2)

	for lx := l; lx >= 0; lx-- {
		for ly := l - lx; ly >= 0; ly-- {
			powers = append(powers, [3]int{lx, ly, l - lx - ly})
		}
	}

	return powers
}

// function is one normalized contracted Cartesian basis function.
type function struct {
	center model.Vec3
	powers [3]int
	exps   []float64
	coefs  []float64 // include primitive and contraction normalization
}

func doubleFactorial(n int) float64 {
	r := 1.0
	for k := n; k > 1; k -= 2 {
		r *= float64(k)
	}

	return r
}

func primitiveNorm(a float64, powers [3]int) float64 {
	l := powers[0] + powers[1] + powers[2]
	df := doubleFactorial(2*powers[0]-1) * doubleFactorial(2*powers[1]-1) * doubleFactorial(2*powers[2]-1)

	return math.Pow(2*a/math.Pi, 0.75) * math.Pow(4*a, float64(l)/2) / math.Sqrt(df)
}

func newFunction(s Shell, powers [3]int) function {
	l := powers[0] + powers[1] + powers[2]
	df := doubleFactorial(2*powers[0]-1) * doubleFactorial(2*powers[1]-1) * doubleFactorial(2*powers[2]-1)

	coefs := make([]float64, len(s.Coefficients))
	for k, c := range s.Coefficients {
		coefs[k] = c * primitiveNorm(s.Exponents[k], powers)
	}

	var overlap float64

	for i, ci := range coefs {
		for j, cj := range coefs {
			overlap += ci * cj / math.Pow(s.Exponents[i]+s.Exponents[j], float64(l)+1.5)
		}
	}

	overlap *= math.Pow(math.Pi, 1.5) * df / math.Pow(2, float64(l))

	scale := 1 / math.Sqrt(overlap)
	for k := range coefs {
		coefs[k] *= scale
	}

	exps := make([]float64, len(s.Exponents))
	copy(exps, s.Exponents)

	return function{center: s.Center, powers: powers, exps: exps, coefs: coefs}
}

// value returns the function at point r.
func (f *function) value(r model.Vec3) float64 {
	d := r.Sub(f.center)
	r2 := d.Dot(d)

	var radial float64
	for k, a := range f.exps {
		radial += f.coefs[k] * math.Exp(-a*r2)
	}

	angular := 1.0

	for axis, pw := range f.powers {
		for range pw {
			angular *= d[axis]
		}
	}

	return angular * radial
}

// expand turns shells into basis functions in shell order.
func expand(shells []Shell) ([]function, error) {
	var funcs []function

	for i, s := range shells {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("shell %d: %w", i, err)
		}

		for _, powers := range cartesianPowers(s.L) {
			funcs = append(funcs, newFunction(s, powers))
		}
	}

	return funcs, nil
}
