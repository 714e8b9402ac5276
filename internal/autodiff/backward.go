package autodiff

import (
	"fmt"
	"math"
)

// Backward computes the gradient of v with respect to every node reachable
// from it.
//
// Algorithm:
//  1. Topologically sort the reachable subgraph (depth-first, post-order)
//  2. Seed v's gradient with 1, discarding whatever it held
//  3. Apply each node's local-gradient rule in reverse topological order
//
// Every rule adds into its predecessors' gradients, so a node used by several
// successors receives the sum of their contributions. Gradients left by an
// earlier pass are added to as well, call ZeroGrad first to start fresh.
//
// The traversal uses an explicit stack, so graph depth is limited by memory
// only.
func (v Value) Backward() {
	g := v.g
	order := g.topo(v)

	g.nodes[v.id].grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		g.propagate(order[i])
	}
}

// TopoOrder returns the nodes reachable from v in topological order: every
// node appears after all of its predecessors, and v comes last.
func (v Value) TopoOrder() []Value {
	g := v.g
	order := g.topo(v)
	out := make([]Value, len(order))
	for i, id := range order {
		out[i] = Value{g: g, id: id, epoch: g.nodes[id].epoch}
	}
	return out
}

// topo returns the arena indices reachable from root in post-order.
//
// Visited state is keyed by arena index. All reachable indices are at most
// root's own, which bounds the visited slice.
func (g *Graph) topo(root Value) []int32 {
	g.at(root)

	type frame struct {
		id   int32
		done bool // predecessors already pushed
	}

	visited := make([]bool, root.id+1)
	order := make([]int32, 0, root.id+1)
	stack := []frame{{id: root.id}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.done {
			order = append(order, f.id)
			continue
		}
		if visited[f.id] {
			continue
		}
		visited[f.id] = true

		stack = append(stack, frame{id: f.id, done: true})
		n := &g.nodes[f.id]
		// Reverse push so the first operand is explored first.
		for i := int(n.arity) - 1; i >= 0; i-- {
			if p := n.prev[i]; !visited[p] {
				stack = append(stack, frame{id: p})
			}
		}
	}

	return order
}

// propagate applies the local-gradient rule of node id, adding its
// contribution to each predecessor.
func (g *Graph) propagate(id int32) {
	n := &g.nodes[id]

	switch n.op {
	case OpLeaf:
		// Nothing upstream.

	case OpAdd:
		g.nodes[n.prev[0]].grad += n.grad
		g.nodes[n.prev[1]].grad += n.grad

	case OpMul:
		a, b := &g.nodes[n.prev[0]], &g.nodes[n.prev[1]]
		// Read both before writing: a and b are the same node for x*x.
		ad, bd := a.data, b.data
		a.grad += bd * n.grad
		b.grad += ad * n.grad

	case OpPow:
		// x**0 is constant; the general formula would give 0 * 0**-1 at x = 0.
		if n.exp == 0 {
			break
		}
		a := &g.nodes[n.prev[0]]
		a.grad += n.exp * math.Pow(a.data, n.exp-1) * n.grad

	case OpReLU:
		a := &g.nodes[n.prev[0]]
		if a.data > 0 {
			a.grad += n.grad
		}

	case OpSigmoid:
		// σ'(x) = σ(x)(1 - σ(x)), and σ(x) is this node's value.
		a := &g.nodes[n.prev[0]]
		a.grad += n.data * (1 - n.data) * n.grad

	case OpExp:
		a := &g.nodes[n.prev[0]]
		a.grad += n.data * n.grad

	case OpLog:
		a := &g.nodes[n.prev[0]]
		a.grad += n.grad / a.data

	default:
		panic(fmt.Sprintf("autodiff: no backward rule for %v", n.op))
	}
}
