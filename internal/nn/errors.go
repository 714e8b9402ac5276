package nn

import (
	"errors"
	"fmt"
)

// ErrShape is wrapped by every ShapeError.
var ErrShape = errors.New("input width mismatch")

// ShapeError reports an input slice whose length does not match the number
// of inputs a module was built for.
type ShapeError struct {
	Module string // Module that rejected the input (e.g., "Neuron")
	Want   int    // Expected number of inputs
	Got    int    // Actual number of inputs
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: expected %d inputs, got %d", e.Module, e.Want, e.Got)
}

// Unwrap returns ErrShape so callers can match with errors.Is.
func (e *ShapeError) Unwrap() error {
	return ErrShape
}
