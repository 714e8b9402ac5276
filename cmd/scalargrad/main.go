// Package main provides the scalargrad CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
)

const version = "v0.1.0-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("scalargrad: %v", err)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		usage(w)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(w, "scalargrad %s\n", version)
		return nil
	case "dot":
		return runDOT(args[1:], w)
	case "check":
		return runCheck(args[1:], w)
	default:
		usage(w)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "scalargrad - scalar reverse-mode autodiff")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  dot        Print the graph of a small MLP in Graphviz DOT")
	fmt.Fprintln(w, "  check      Compare every operator's gradient with finite differences")
}

// runDOT builds a 3-input MLP, backpropagates one forward pass and writes
// the resulting graph.
func runDOT(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("dot", flag.ContinueOnError)
	fs.SetOutput(w)
	seed := fs.Int64("seed", 1, "Seed for weight initialization")
	activation := fs.String("activation", "relu", "Hidden-layer activation (relu, sigmoid, linear)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	act, err := nn.ParseActivation(*activation)
	if err != nil {
		return err
	}

	g := autodiff.NewGraph()
	model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.Config{Activation: act, Seed: *seed})

	out, err := model.ForwardScalars([]float64{2, 3, -1})
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	y := out[0].SetLabel("y")
	y.Backward()

	return autodiff.WriteDOT(w, y)
}
