package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Neuron computes act(b + Σ wᵢ·xᵢ).
//
// Weights are drawn from U(-1, 1) and the bias starts at zero.
//
// Example:
//
//	g := autodiff.NewGraph()
//	n := nn.NewNeuron(g, 2, nn.ReLU, rand.New(rand.NewSource(1)))
//	out, err := n.Forward(g.Leaves([]float64{1, -2}))
type Neuron struct {
	w   []autodiff.Value
	b   autodiff.Value
	act Activation
}

// NewNeuron creates a neuron with nin inputs whose parameters are leaves
// of g.
func NewNeuron(g *autodiff.Graph, nin int, act Activation, rng *rand.Rand) *Neuron {
	return newNeuron(g, nin, act, rng, "")
}

func newNeuron(g *autodiff.Graph, nin int, act Activation, rng *rand.Rand, prefix string) *Neuron {
	if nin <= 0 {
		panic(fmt.Sprintf("NewNeuron: number of inputs must be positive, got %d", nin))
	}
	w := make([]autodiff.Value, nin)
	for i := range w {
		w[i] = Uniform(g, rng, -1, 1).SetLabel(fmt.Sprintf("%sw%d", prefix, i))
	}
	return &Neuron{
		w:   w,
		b:   g.Leaf(0).SetLabel(prefix + "b"),
		act: act,
	}
}

// Forward computes the neuron's output for x.
//
// Returns a *ShapeError if len(x) differs from the number of weights.
func (n *Neuron) Forward(x []autodiff.Value) (autodiff.Value, error) {
	if len(x) != len(n.w) {
		return autodiff.Value{}, &ShapeError{Module: "Neuron", Want: len(n.w), Got: len(x)}
	}

	sum := n.b
	for i, wi := range n.w {
		sum = sum.Add(wi.Mul(x[i]))
	}
	return n.act.Apply(sum), nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []autodiff.Value {
	params := make([]autodiff.Value, 0, len(n.w)+1)
	params = append(params, n.w...)
	return append(params, n.b)
}

// ZeroGrad resets the gradient of every parameter.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n.Parameters())
}

// Weights returns the weight leaves.
func (n *Neuron) Weights() []autodiff.Value {
	return n.w
}

// Bias returns the bias leaf.
func (n *Neuron) Bias() autodiff.Value {
	return n.b
}

// Activation returns the neuron's activation.
func (n *Neuron) Activation() Activation {
	return n.act
}

// NumInputs returns the number of inputs the neuron accepts.
func (n *Neuron) NumInputs() int {
	return len(n.w)
}
