package engine

import (
	"math"

	"github.com/mouse-blink/cubegen/internal/model"
)

// hermiteE is the expansion coefficient of the product of two 1-D Cartesian
// Gaussians (powers i and j, exponents a and b, separation qx = Ax - Bx) in
// Hermite Gaussians of order t.
func hermiteE(i, j, t int, qx, a, b float64) float64 {
	p := a + b
	q := a * b / p

	switch {
	case t < 0 || t > i+j || i < 0 || j < 0:
		return 0
	case i == 0 && j == 0 && t == 0:
		return math.Exp(-q * qx * qx)
	case j == 0:
		return hermiteE(i-1, j, t-1, qx, a, b)/(2*p) -
			(q*qx/a)*hermiteE(i-1, j, t, qx, a, b) +
			float64(t+1)*hermiteE(i-1, j, t+1, qx, a, b)
	default:
		return hermiteE(i, j-1, t-1, qx, a, b)/(2*p) +
			(q*qx/b)*hermiteE(i, j-1, t, qx, a, b) +
			float64(t+1)*hermiteE(i, j-1, t+1, qx, a, b)
	}
}

// hermiteR evaluates the Coulomb auxiliary integrals R^n_{tuv} for one
// primitive pair about one origin.
type hermiteR struct {
	p    float64
	pc   model.Vec3
	boys []float64
}

func (h *hermiteR) r(t, u, v, n int) float64 {
	switch {
	case t == 0 && u == 0 && v == 0:
		return math.Pow(-2*h.p, float64(n)) * h.boys[n]
	case t == 0 && u == 0:
		val := h.pc[2] * h.r(t, u, v-1, n+1)
		if v > 1 {
			val += float64(v-1) * h.r(t, u, v-2, n+1)
		}

		return val
	case t == 0:
		val := h.pc[1] * h.r(t, u-1, v, n+1)
		if u > 1 {
			val += float64(u-1) * h.r(t, u-2, v, n+1)
		}

		return val
	default:
		val := h.pc[0] * h.r(t-1, u, v, n+1)
		if t > 1 {
			val += float64(t-1) * h.r(t-2, u, v, n+1)
		}

		return val
	}
}
