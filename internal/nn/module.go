// Package nn implements a small multilayer perceptron on top of the scalar
// autodiff engine.
//
// This package provides:
//   - Module interface: parameters and gradient reset
//   - Neuron: weighted sum plus bias, followed by an activation
//   - Layer: a row of independent neurons
//   - MLP: layers chained so each output feeds the next input
//
// A forward pass is nothing but operator calls on autodiff.Values, so
// Backward on any value computed from the network fills in the gradient of
// every parameter. Gradients accumulate: call ZeroGrad before each backward
// pass when reusing a network across steps.
package nn

import "github.com/born-ml/scalargrad/internal/autodiff"

// Module is the base interface for all network components.
type Module interface {
	// Parameters returns every trainable leaf owned by the module,
	// including those of nested modules.
	Parameters() []autodiff.Value

	// ZeroGrad sets the gradient of every parameter to zero.
	ZeroGrad()
}

// zeroGrad resets the gradient of each parameter.
func zeroGrad(params []autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
