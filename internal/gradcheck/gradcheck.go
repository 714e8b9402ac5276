// Package gradcheck verifies autodiff gradients against finite differences.
//
// The expression under test is described as a Func that builds a scalar
// from input leaves. Check evaluates it twice:
//   - Analytic: one forward pass plus Backward on a fresh graph
//   - Numeric: central differences over the inputs (gonum diff/fd),
//     rebuilding the graph for every evaluation
//
// Example:
//
//	f := func(g *autodiff.Graph, in []autodiff.Value) (autodiff.Value, error) {
//	    return in[0].Mul(in[1]).Sigmoid(), nil
//	}
//	res, err := gradcheck.Check(f, []float64{0.5, -2}, gradcheck.Config{})
package gradcheck

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Default configuration values.
const (
	DefaultStep      = 1e-6
	DefaultTolerance = 1e-6
)

// ErrMismatch is wrapped by every MismatchError.
var ErrMismatch = errors.New("analytic and numeric gradients differ")

// Func builds a scalar expression over inputs, which are leaves of g.
type Func func(g *autodiff.Graph, inputs []autodiff.Value) (autodiff.Value, error)

// Config controls a gradient check.
type Config struct {
	Step      float64 // Finite-difference step (default: DefaultStep)
	Tolerance float64 // Absolute or relative tolerance (default: DefaultTolerance)
}

// Result holds both gradients of one check.
type Result struct {
	Value    float64   // f(x)
	Analytic []float64 // Gradient from Backward
	Numeric  []float64 // Gradient from central differences
	MaxDiff  float64   // Largest absolute difference between the two
}

// MismatchError reports the first input whose gradients disagree.
type MismatchError struct {
	Index     int
	Analytic  float64
	Numeric   float64
	Tolerance float64
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("input %d: analytic %g, numeric %g (tolerance %g)",
		e.Index, e.Analytic, e.Numeric, e.Tolerance)
}

// Unwrap returns ErrMismatch so callers can match with errors.Is.
func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// Check compares the analytic and numeric gradients of f at x.
//
// Returns a *MismatchError if any input's gradients differ by more than the
// tolerance, or the error f returned while building the expression.
func Check(f Func, x []float64, cfg Config) (Result, error) {
	if cfg.Step == 0 {
		cfg.Step = DefaultStep
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = DefaultTolerance
	}

	value, analytic, err := Analytic(f, x)
	if err != nil {
		return Result{}, err
	}
	numeric, err := Numeric(f, x, cfg.Step)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Value:    value,
		Analytic: analytic,
		Numeric:  numeric,
		MaxDiff:  floats.Distance(analytic, numeric, math.Inf(1)),
	}

	for i := range analytic {
		if !scalar.EqualWithinAbsOrRel(analytic[i], numeric[i], cfg.Tolerance, cfg.Tolerance) {
			return res, &MismatchError{
				Index:     i,
				Analytic:  analytic[i],
				Numeric:   numeric[i],
				Tolerance: cfg.Tolerance,
			}
		}
	}
	return res, nil
}

// Analytic evaluates f at x and returns its value and the gradient computed
// by Backward.
func Analytic(f Func, x []float64) (float64, []float64, error) {
	g := autodiff.NewGraph()
	in := g.Leaves(x)

	out, err := f(g, in)
	if err != nil {
		return 0, nil, fmt.Errorf("gradcheck: build expression: %w", err)
	}
	out.Backward()

	grads := make([]float64, len(in))
	for i, v := range in {
		grads[i] = v.Grad()
	}
	return out.Data(), grads, nil
}

// Numeric returns the central-difference gradient of f at x.
func Numeric(f Func, x []float64, step float64) ([]float64, error) {
	var evalErr error
	eval := func(p []float64) float64 {
		if evalErr != nil {
			return math.NaN()
		}
		g := autodiff.NewGraph()
		out, err := f(g, g.Leaves(p))
		if err != nil {
			evalErr = err
			return math.NaN()
		}
		return out.Data()
	}

	grad := fd.Gradient(nil, eval, x, &fd.Settings{
		Formula: fd.Central,
		Step:    step,
	})
	if evalErr != nil {
		return nil, fmt.Errorf("gradcheck: evaluate expression: %w", evalErr)
	}
	return grad, nil
}
