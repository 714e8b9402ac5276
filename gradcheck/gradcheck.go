// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck compares autodiff gradients with central finite
// differences.
//
// Example:
//
//	f := func(g *autodiff.Graph, in []autodiff.Value) (autodiff.Value, error) {
//	    return in[0].Mul(in[1]).Exp(), nil
//	}
//	if _, err := gradcheck.Check(f, []float64{0.3, 1.2}, gradcheck.Config{}); err != nil {
//	    log.Fatal(err)
//	}
package gradcheck

import "github.com/born-ml/scalargrad/internal/gradcheck"

// Func builds a scalar expression over input leaves.
type Func = gradcheck.Func

// Config controls a gradient check.
type Config = gradcheck.Config

// Result holds the analytic and numeric gradients of one check.
type Result = gradcheck.Result

// MismatchError reports an input whose gradients disagree.
type MismatchError = gradcheck.MismatchError

// ErrMismatch is wrapped by every MismatchError.
var ErrMismatch = gradcheck.ErrMismatch

// Check compares the analytic and numeric gradients of f at x.
func Check(f Func, x []float64, cfg Config) (Result, error) {
	return gradcheck.Check(f, x, cfg)
}

// Analytic returns f(x) and its gradient computed by Backward.
func Analytic(f Func, x []float64) (float64, []float64, error) {
	return gradcheck.Analytic(f, x)
}

// Numeric returns the central-difference gradient of f at x.
func Numeric(f Func, x []float64, step float64) ([]float64, error) {
	return gradcheck.Numeric(f, x, step)
}
