package geom

import (
	"errors"
	"fmt"
)

// ErrComponentIndex reports indexed access to a point or vector
// component outside its valid index set. It is carried inside the
// panic value so callers can test with errors.Is.
var ErrComponentIndex = errors.New("component index out of range")

func componentErr(typeName string, index, arity int) error {
	return fmt.Errorf("%w: %s has components [0, %d), got %d", ErrComponentIndex, typeName, arity, index)
}
