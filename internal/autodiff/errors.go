package autodiff

import (
	"errors"
	"fmt"
)

// ErrDomain is wrapped by every DomainError.
var ErrDomain = errors.New("operand outside operator domain")

// DomainError reports an operator applied to a value it is not defined for,
// such as the logarithm of a non-positive number.
type DomainError struct {
	Op      string  // Operator name (e.g., "log", "pow", "div")
	Operand float64 // Offending operand value
	Reason  string  // Which constraint was violated
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: operand %g: %s", e.Op, e.Operand, e.Reason)
}

// Unwrap returns ErrDomain so callers can match with errors.Is.
func (e *DomainError) Unwrap() error {
	return ErrDomain
}
