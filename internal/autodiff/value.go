package autodiff

import (
	"fmt"
	"strconv"
)

// Value is a handle to one node of a Graph.
//
// Values are small and comparable: two handles are equal exactly when they
// refer to the same node. Numeric equality says nothing about identity, two
// leaves holding 1.0 are different nodes with independent gradients.
//
// The zero Value refers to no node; calling any method on it panics.
type Value struct {
	g     *Graph
	id    int32
	epoch uint32
}

func (v Value) node() *node {
	return v.g.at(v)
}

// Graph returns the graph that owns v.
func (v Value) Graph() *Graph {
	return v.g
}

// ID returns v's index in the graph arena.
//
// Predecessors always have smaller IDs than the nodes built from them.
func (v Value) ID() int {
	return int(v.id)
}

// Data returns the forward value.
func (v Value) Data() float64 {
	return v.node().data
}

// Grad returns the accumulated gradient.
//
// Meaningful only after a backward pass that reached v.
func (v Value) Grad() float64 {
	return v.node().grad
}

// Op returns the operation that produced v.
func (v Value) Op() Op {
	return v.node().op
}

// Exponent returns the constant exponent of an OpPow node and 0 otherwise.
func (v Value) Exponent() float64 {
	n := v.node()
	if n.op != OpPow {
		return 0
	}
	return n.exp
}

// Predecessors returns the nodes v was computed from, in operand order.
//
// The same node appears twice for expressions like x*x.
func (v Value) Predecessors() []Value {
	n := v.node()
	if n.arity == 0 {
		return nil
	}
	out := make([]Value, n.arity)
	for i := range out {
		p := n.prev[i]
		out[i] = Value{g: v.g, id: p, epoch: v.g.nodes[p].epoch}
	}
	return out
}

// IsLeaf reports whether v has no predecessors.
func (v Value) IsLeaf() bool {
	return v.node().op == OpLeaf
}

// Label returns the label set with SetLabel.
func (v Value) Label() string {
	return v.node().label
}

// SetLabel names v for debugging output and returns v.
func (v Value) SetLabel(label string) Value {
	v.node().label = label
	return v
}

// SetData overwrites the value of a leaf.
//
// This is how an optimizer moves a parameter between steps. Nodes computed
// from the leaf keep their old forward values, so the forward pass has to be
// rebuilt afterwards. Panics if v is not a leaf.
func (v Value) SetData(x float64) {
	n := v.node()
	if n.op != OpLeaf {
		panic(fmt.Sprintf("Value.SetData: node %d is not a leaf (op %q)", v.id, n.op))
	}
	n.data = x
}

// ZeroGrad resets the gradient of v to zero.
func (v Value) ZeroGrad() {
	v.node().grad = 0
}

// String implements fmt.Stringer.
func (v Value) String() string {
	n := v.node()
	return "Value(data=" + strconv.FormatFloat(n.data, 'g', -1, 64) +
		", grad=" + strconv.FormatFloat(n.grad, 'g', -1, 64) + ")"
}

// opString renders the op with its exponent, e.g. "**2".
func (n *node) opString() string {
	if n.op == OpPow {
		return n.op.String() + strconv.FormatFloat(n.exp, 'g', -1, 64)
	}
	return n.op.String()
}
