package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Layer is a fully connected row of neurons sharing the same input.
//
// Input: nin values. Output: one value per neuron.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each with nin inputs.
func NewLayer(g *autodiff.Graph, nin, nout int, act Activation, rng *rand.Rand) *Layer {
	return newLayer(g, nin, nout, act, rng, "")
}

func newLayer(g *autodiff.Graph, nin, nout int, act Activation, rng *rand.Rand, prefix string) *Layer {
	if nout <= 0 {
		panic(fmt.Sprintf("NewLayer: number of outputs must be positive, got %d", nout))
	}
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = newNeuron(g, nin, act, rng, fmt.Sprintf("%sn%d.", prefix, i))
	}
	return &Layer{neurons: neurons}
}

// Forward evaluates every neuron on x.
//
// Returns a *ShapeError if len(x) differs from the layer's input width.
func (l *Layer) Forward(x []autodiff.Value) ([]autodiff.Value, error) {
	if len(x) != l.NumInputs() {
		return nil, &ShapeError{Module: "Layer", Want: l.NumInputs(), Got: len(x)}
	}

	out := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		v, err := n.Forward(x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Parameters returns the parameters of every neuron, in neuron order.
func (l *Layer) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradient of every parameter.
func (l *Layer) ZeroGrad() {
	zeroGrad(l.Parameters())
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// NumInputs returns the layer's input width.
func (l *Layer) NumInputs() int {
	return l.neurons[0].NumInputs()
}

// NumOutputs returns the number of neurons.
func (l *Layer) NumOutputs() int {
	return len(l.neurons)
}
