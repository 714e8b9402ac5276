package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Config configures an MLP.
type Config struct {
	Activation Activation // Hidden-layer activation (default: ReLU)
	Seed       int64      // Seed for weight initialization when Rand is nil
	Rand       *rand.Rand // Source for weight initialization (optional)
}

// MLP chains layers so each layer's output becomes the next layer's input.
//
// Hidden layers use the configured activation; the last layer is linear so
// the network can produce unbounded outputs.
//
// Example:
//
//	g := autodiff.NewGraph()
//	model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.Config{})
//
//	out, err := model.ForwardScalars([]float64{2, 3, -1})
//	out[0].Backward()
//
// This is equivalent to:
//
//	h1, _ := layer0.Forward(x)
//	h2, _ := layer1.Forward(h1)
//	out, _ := layer2.Forward(h2)
type MLP struct {
	g      *autodiff.Graph
	layers []*Layer
}

// NewMLP creates a network with nin inputs and one layer per entry of nouts.
//
// Parameters are labelled "l<layer>.n<neuron>.w<input>" and
// "l<layer>.n<neuron>.b".
func NewMLP(g *autodiff.Graph, nin int, nouts []int, cfg Config) *MLP {
	rng := newRand(cfg)

	layers := make([]*Layer, len(nouts))
	for i, nout := range nouts {
		act := cfg.Activation
		if i == len(nouts)-1 {
			act = Linear
		}
		layers[i] = newLayer(g, nin, nout, act, rng, fmt.Sprintf("l%d.", i))
		nin = nout
	}
	return &MLP{g: g, layers: layers}
}

// Forward applies every layer in sequence.
//
// Returns a *ShapeError if len(x) differs from the network's input width.
func (m *MLP) Forward(x []autodiff.Value) ([]autodiff.Value, error) {
	out := x
	for i, l := range m.layers {
		var err error
		out, err = l.Forward(out)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return out, nil
}

// ForwardScalars wraps xs as leaves of the network's graph and applies
// Forward.
func (m *MLP) ForwardScalars(xs []float64) ([]autodiff.Value, error) {
	return m.Forward(m.g.Leaves(xs))
}

// Parameters returns the parameters of every layer, in layer order.
func (m *MLP) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradient of every parameter.
func (m *MLP) ZeroGrad() {
	zeroGrad(m.Parameters())
}

// Layers returns the network's layers.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Len returns the number of layers.
func (m *MLP) Len() int {
	return len(m.layers)
}

// Graph returns the graph that owns the network's parameters.
func (m *MLP) Graph() *autodiff.Graph {
	return m.g
}
