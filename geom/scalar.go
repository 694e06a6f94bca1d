package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float describes the scalar types that geometry in this package is generic
// over. Trigonometry is computed in float64 and converted back, which is
// exact for float64 and correctly rounded for float32.
type Float interface {
	constraints.Float
}

func sincos[S Float](angle S) (S, S) {
	sin, cos := math.Sincos(float64(angle))
	return S(sin), S(cos)
}

func hypot[S Float](x, y S) S {
	return S(math.Hypot(float64(x), float64(y)))
}

func atan2[S Float](y, x S) S {
	return S(math.Atan2(float64(y), float64(x)))
}

func isNaN[S Float](x S) bool {
	return math.IsNaN(float64(x))
}

func isInf[S Float](x S) bool {
	return math.IsInf(float64(x), 0)
}
