package engine

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

const boysSmallT = 1e-10

// Boys returns F_n(t) = ∫_0^1 u^{2n} exp(-t u^2) du.
func Boys(n int, t float64) float64 {
	if t < boysSmallT {
		return 1/float64(2*n+1) - t/float64(2*n+3)
	}

	a := float64(n) + 0.5

	return mathext.GammaIncReg(a, t) * math.Gamma(a) / (2 * math.Pow(t, a))
}

// boysTable fills out[0..nmax] with F_n(t) using downward recursion from F_nmax.
func boysTable(nmax int, t float64, out []float64) []float64 {
	if cap(out) < nmax+1 {
		out = make([]float64, nmax+1)
	}

	out = out[:nmax+1]
	out[nmax] = Boys(nmax, t)

	if t < boysSmallT {
		for n := nmax - 1; n >= 0; n-- {
			out[n] = Boys(n, t)
		}

		return out
	}

	et := math.Exp(-t)
	for n := nmax; n > 0; n-- {
		out[n-1] = (2*t*out[n] + et) / float64(2*n-1)
	}

	return out
}
