package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/gradcheck"
)

// checkCase is one expression of the built-in suite and the point it is
// checked at.
type checkCase struct {
	name string
	x    []float64
	f    gradcheck.Func
}

func unary(name string, x float64, op func(autodiff.Value) (autodiff.Value, error)) checkCase {
	return checkCase{name: name, x: []float64{x}, f: func(_ *autodiff.Graph, in []autodiff.Value) (autodiff.Value, error) {
		return op(in[0])
	}}
}

func binary(name string, a, b float64, op func(a, b autodiff.Value) (autodiff.Value, error)) checkCase {
	return checkCase{name: name, x: []float64{a, b}, f: func(_ *autodiff.Graph, in []autodiff.Value) (autodiff.Value, error) {
		return op(in[0], in[1])
	}}
}

func infallible(op func(autodiff.Value) autodiff.Value) func(autodiff.Value) (autodiff.Value, error) {
	return func(v autodiff.Value) (autodiff.Value, error) { return op(v), nil }
}

func powOf(k float64) func(autodiff.Value) (autodiff.Value, error) {
	return func(v autodiff.Value) (autodiff.Value, error) { return v.Pow(k) }
}

func checkSuite() []checkCase {
	return []checkCase{
		binary("add", 1.5, -0.5, func(a, b autodiff.Value) (autodiff.Value, error) { return a.Add(b), nil }),
		binary("mul", 1.5, -0.5, func(a, b autodiff.Value) (autodiff.Value, error) { return a.Mul(b), nil }),
		binary("sub", 1.5, -0.5, func(a, b autodiff.Value) (autodiff.Value, error) { return a.Sub(b), nil }),
		binary("div", 1.5, -0.5, autodiff.Value.Div),
		unary("neg", 0.7, infallible(autodiff.Value.Neg)),
		unary("pow2", -1.3, powOf(2)),
		unary("pow-1", 0.8, powOf(-1)),
		unary("pow0.5", 2.5, powOf(0.5)),
		unary("relu", 0.9, infallible(autodiff.Value.ReLU)),
		unary("relu-", -0.9, infallible(autodiff.Value.ReLU)),
		unary("sigmoid", 0.3, infallible(autodiff.Value.Sigmoid)),
		unary("exp", 0.4, infallible(autodiff.Value.Exp)),
		unary("log", 1.7, autodiff.Value.Log),
		{
			// tanh built from primitives: (e^2x - 1) / (e^2x + 1)
			name: "tanh",
			x:    []float64{0.6},
			f: func(_ *autodiff.Graph, in []autodiff.Value) (autodiff.Value, error) {
				e := in[0].MulScalar(2).Exp()
				return e.SubScalar(1).Div(e.AddScalar(1))
			},
		},
		{
			// sigmoid(x*y - z/2) + log(e^x + y²)
			name: "composite",
			x:    []float64{0.5, -1.2, 0.8},
			f: func(_ *autodiff.Graph, in []autodiff.Value) (autodiff.Value, error) {
				x, y, z := in[0], in[1], in[2]
				half, err := z.DivScalar(2)
				if err != nil {
					return autodiff.Value{}, err
				}
				y2, err := y.Pow(2)
				if err != nil {
					return autodiff.Value{}, err
				}
				right, err := x.Exp().Add(y2).Log()
				if err != nil {
					return autodiff.Value{}, err
				}
				return x.Mul(y).Sub(half).Sigmoid().Add(right), nil
			},
		},
	}
}

// runCheck runs the suite and fails if any gradient disagrees.
func runCheck(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(w)
	step := fs.Float64("step", gradcheck.DefaultStep, "Finite-difference step")
	tol := fs.Float64("tol", gradcheck.DefaultTolerance, "Absolute or relative tolerance")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := gradcheck.Config{Step: *step, Tolerance: *tol}
	failed := 0
	suite := checkSuite()
	for _, c := range suite {
		// A perturbed point can leave an operator's domain, which fails
		// the case like a mismatch does.
		res, err := gradcheck.Check(c.f, c.x, cfg)
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL  %-10s %v\n", c.name, err)
			continue
		}
		fmt.Fprintf(w, "ok    %-10s max diff %.2e\n", c.name, res.MaxDiff)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d gradient checks failed", failed, len(suite))
	}
	return nil
}
