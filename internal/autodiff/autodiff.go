// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// A Graph records every elementary operation as it executes. Each operation
// appends one node to the graph's arena, so the arena doubles as the tape of
// the forward pass:
//   - Graph: arena of nodes in creation order
//   - Value: handle to one node (comparable, identity is the arena slot)
//   - Op: tag selecting the local-gradient rule of a node
//   - Backward: topological sort + chain rule in reverse order
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.Leaf(3.0)
//	y := g.Leaf(-1.0)
//	x2, _ := x.Pow(2)
//	z := x.Mul(y).Add(x2) // z = x*y + x²
//
//	z.Backward()
//	fmt.Println(x.Grad()) // dz/dx = y + 2x = 5
//	fmt.Println(y.Grad()) // dz/dy = x = 3
//
// Gradients accumulate: a second Backward call adds to the gradients left by
// the first one. Call ZeroGrad between independent passes.
package autodiff

import "fmt"

// node is one arena entry.
//
// Predecessor indices are always smaller than the node's own index because
// operators can only consume nodes that already exist.
type node struct {
	data  float64
	grad  float64
	op    Op
	exp   float64  // exponent, OpPow only
	prev  [2]int32 // predecessor indices, first arity entries are valid
	arity uint8
	epoch uint32 // graph epoch at creation, see Rewind
	label string
}

// Graph owns the nodes of one computation graph.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	nodes []node
	epoch uint32
}

// Mark identifies a position in the graph's arena. See Graph.Rewind.
type Mark struct {
	g *Graph
	n int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// Leaf creates a node with no predecessors holding x.
func (g *Graph) Leaf(x float64) Value {
	return g.push(node{data: x, op: OpLeaf})
}

// Leaves creates one leaf per element of xs.
func (g *Graph) Leaves(xs []float64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = g.Leaf(x)
	}
	return out
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// ZeroGrad resets the gradient of every live node to zero.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}

// Mark returns the current end of the arena.
//
// Typical use is to create the model parameters, take a mark, and rewind to
// it after every training step so per-step nodes do not pile up:
//
//	params := model.Parameters()
//	mark := g.Mark()
//	for step := range steps {
//	    g.Rewind(mark)
//	    loss := buildLoss(model)
//	    loss.Backward()
//	}
func (g *Graph) Mark() Mark {
	return Mark{g: g, n: len(g.nodes)}
}

// Rewind releases every node created after m, which must come from g.Mark.
//
// Handles to released nodes become invalid: using one panics, even once its
// arena slot has been reused by a newer node.
func (g *Graph) Rewind(m Mark) {
	if m.g != g {
		panic("Graph.Rewind: mark belongs to a different graph")
	}
	if m.n > len(g.nodes) {
		panic(fmt.Sprintf("Graph.Rewind: mark at %d is past the end of the graph (%d nodes)", m.n, len(g.nodes)))
	}
	if m.n < len(g.nodes) {
		g.nodes = g.nodes[:m.n]
		g.epoch++
	}
}

// push appends n to the arena and returns its handle.
func (g *Graph) push(n node) Value {
	id := len(g.nodes)
	if id > maxNodes {
		panic("Graph: node limit exceeded")
	}
	n.epoch = g.epoch
	g.nodes = append(g.nodes, n)
	return Value{g: g, id: int32(id), epoch: g.epoch} //nolint:gosec // G115: bounded by maxNodes.
}

// maxNodes is the largest index representable in a handle.
const maxNodes = 1<<31 - 1

// at resolves a handle to its arena entry, panicking on invalid handles.
func (g *Graph) at(v Value) *node {
	if v.g == nil {
		panic("autodiff: use of zero Value")
	}
	if v.g != g {
		panic("autodiff: value belongs to a different graph")
	}
	if int(v.id) >= len(g.nodes) || g.nodes[v.id].epoch != v.epoch {
		panic("autodiff: value was released by Graph.Rewind")
	}
	return &g.nodes[v.id]
}
