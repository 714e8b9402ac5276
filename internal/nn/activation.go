package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Activation is the non-linearity a neuron applies to its weighted sum.
type Activation uint8

// Supported activations. The zero value is ReLU.
const (
	ReLU    Activation = iota // max(0, x)
	Sigmoid                   // 1 / (1 + exp(-x))
	Linear                    // identity
)

// Apply applies the activation to v.
func (a Activation) Apply(v autodiff.Value) autodiff.Value {
	switch a {
	case ReLU:
		return v.ReLU()
	case Sigmoid:
		return v.Sigmoid()
	default:
		return v
	}
}

// String returns the activation name accepted by ParseActivation.
func (a Activation) String() string {
	switch a {
	case ReLU:
		return "relu"
	case Sigmoid:
		return "sigmoid"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Activation(%d)", uint8(a))
	}
}

// ParseActivation parses "relu", "sigmoid" or "linear" (alias "none").
func ParseActivation(s string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relu":
		return ReLU, nil
	case "sigmoid":
		return Sigmoid, nil
	case "linear", "none":
		return Linear, nil
	default:
		return 0, fmt.Errorf("unknown activation %q", s)
	}
}
