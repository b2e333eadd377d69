package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint satisfied by the numeric component types
// the vector types can carry.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// scalarHash maps one component to hashable bits. Negative zero folds
// to positive zero first: -0.0 == 0.0, so they must hash equally.
func scalarHash[T Scalar](v T) uint64 {
	f := float64(v)
	if f == 0 {
		f = 0
	}
	return math.Float64bits(f)
}

func absScalar[T Scalar](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
