package enginetypes

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrIndexOutOfRange is returned when a component index is outside [0, N-1] for a type with N components.
var ErrIndexOutOfRange = errors.New("index out of range")

type scalar interface {
	constraints.Integer | constraints.Float
}

func indexError(typeName string, index int) error {
	return fmt.Errorf("invalid %v index %v: %w", typeName, index, ErrIndexOutOfRange)
}

// component returns components[index].
func component[T scalar](typeName string, index int, components ...T) (T, error) {
	if index < 0 || index >= len(components) {
		var zero T
		return zero, indexError(typeName, index)
	}
	return components[index], nil
}

// setComponent sets *components[index] to value.
func setComponent[T scalar](typeName string, index int, value T, components ...*T) error {
	if index < 0 || index >= len(components) {
		return indexError(typeName, index)
	}
	*components[index] = value
	return nil
}
