// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a multilayer perceptron built from scalar autodiff
// values.
//
// # Overview
//
// This package contains:
//   - Neuron: act(b + Σ wᵢ·xᵢ) with weights drawn from U(-1, 1)
//   - Layer: a row of neurons sharing one input
//   - MLP: layers chained together, last layer linear
//   - Module interface: Parameters and ZeroGrad
//   - Activations: ReLU, Sigmoid, Linear
//   - StateDict / LoadStateDict: parameter values keyed by label
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/scalargrad/autodiff"
//	    "github.com/born-ml/scalargrad/nn"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.Config{Seed: 42})
//
//	    // Forward pass
//	    out, err := model.ForwardScalars([]float64{2, 3, -1})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Backward pass
//	    model.ZeroGrad()
//	    out[0].Backward()
//	}
//
// # Training Steps
//
// There is no optimizer in this package. A gradient-descent step is a loop
// over the parameters:
//
//	params := model.Parameters()
//	mark := g.Mark()
//	for step := range 100 {
//	    g.Rewind(mark) // drop the previous step's nodes
//	    loss := buildLoss(model)
//	    model.ZeroGrad()
//	    loss.Backward()
//	    for _, p := range params {
//	        p.SetData(p.Data() - 0.05*p.Grad())
//	    }
//	}
package nn
