// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Operations on Values are recorded in a Graph as they execute. Calling
// Backward on the final Value fills in the gradient of every Value it was
// computed from.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    x := g.Leaf(3.0)
//	    y := g.Leaf(-1.0)
//
//	    x2, _ := x.Pow(2)
//	    z := x.Mul(y).Add(x2) // z = x*y + x²
//
//	    z.Backward()
//	    fmt.Println(z.Data(), x.Grad(), y.Grad()) // 6 5 3
//	}
package autodiff

import (
	"io"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Graph records the nodes of a computation.
type Graph = autodiff.Graph

// Value is a handle to one node of a Graph.
type Value = autodiff.Value

// Mark identifies a position in a Graph, see Graph.Rewind.
type Mark = autodiff.Mark

// Op identifies the operation that produced a Value.
type Op = autodiff.Op

// Supported operations.
const (
	OpLeaf    = autodiff.OpLeaf
	OpAdd     = autodiff.OpAdd
	OpMul     = autodiff.OpMul
	OpPow     = autodiff.OpPow
	OpReLU    = autodiff.OpReLU
	OpSigmoid = autodiff.OpSigmoid
	OpExp     = autodiff.OpExp
	OpLog     = autodiff.OpLog
)

// ErrDomain is wrapped by every DomainError.
var ErrDomain = autodiff.ErrDomain

// DomainError reports an operator applied outside its domain, e.g. log(0).
type DomainError = autodiff.DomainError

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// WriteDOT writes the subgraph reachable from root in Graphviz DOT format.
//
// Example:
//
//	f, _ := os.Create("loss.dot")
//	defer f.Close()
//	_ = autodiff.WriteDOT(f, loss)
func WriteDOT(w io.Writer, root Value) error {
	return autodiff.WriteDOT(w, root)
}

// MarshalDOT returns the DOT encoding of the subgraph reachable from root.
func MarshalDOT(root Value) ([]byte, error) {
	return autodiff.MarshalDOT(root)
}
