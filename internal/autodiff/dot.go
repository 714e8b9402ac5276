package autodiff

import (
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// WriteDOT writes the subgraph reachable from root in Graphviz DOT format.
//
// Edges run from predecessor to successor and the layout is left to right.
// Each node is labelled with its label, op, data and grad. The walk is
// read-only: gradients are rendered as they currently are.
//
// Render with:
//
//	dot -Tsvg graph.dot > graph.svg
func WriteDOT(w io.Writer, root Value) error {
	b, err := MarshalDOT(root)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	return nil
}

// MarshalDOT returns the DOT encoding written by WriteDOT.
func MarshalDOT(root Value) ([]byte, error) {
	g := root.g
	order := g.topo(root)

	dg := dotGraph{simple.NewDirectedGraph()}
	for _, id := range order {
		dg.AddNode(dotNode{id: int64(id), n: &g.nodes[id]})
	}
	for _, id := range order {
		n := &g.nodes[id]
		for i := 0; i < int(n.arity); i++ {
			from, to := dg.Node(int64(n.prev[i])), dg.Node(int64(id))
			// x*x contributes a single edge.
			if dg.HasEdgeFromTo(from.ID(), to.ID()) {
				continue
			}
			dg.SetEdge(dg.NewEdge(from, to))
		}
	}

	b, err := dot.Marshal(dg, "autodiff", "", "\t")
	if err != nil {
		return nil, fmt.Errorf("marshal dot: %w", err)
	}
	return b, nil
}

// dotGraph adds graph-wide attributes to a gonum graph.
type dotGraph struct {
	*simple.DirectedGraph
}

// DOTAttributers implements dot.Attributers.
func (dotGraph) DOTAttributers() (graph, node, edge encoding.Attributer) {
	return attributes{{Key: "rankdir", Value: "LR"}},
		attributes{{Key: "shape", Value: "box"}},
		attributes(nil)
}

type attributes []encoding.Attribute

func (a attributes) Attributes() []encoding.Attribute {
	return a
}

// dotNode exposes one arena entry to the gonum encoder.
type dotNode struct {
	id int64
	n  *node
}

var (
	_ graph.Node          = dotNode{}
	_ encoding.Attributer = dotNode{}
)

func (d dotNode) ID() int64 {
	return d.id
}

func (d dotNode) DOTID() string {
	return "n" + strconv.FormatInt(d.id, 10)
}

func (d dotNode) Attributes() []encoding.Attribute {
	label := fmt.Sprintf("%s\n%s\ndata %.4f\ngrad %.4f", d.n.label, d.n.opString(), d.n.data, d.n.grad)
	return []encoding.Attribute{{Key: "label", Value: label}}
}
