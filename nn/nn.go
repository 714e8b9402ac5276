// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
)

// Module is the base interface for all network components.
type Module = nn.Module

// Neuron computes act(b + Σ wᵢ·xᵢ).
type Neuron = nn.Neuron

// Layer is a fully connected row of neurons.
type Layer = nn.Layer

// MLP is a multilayer perceptron.
type MLP = nn.MLP

// Config configures an MLP.
type Config = nn.Config

// Activation is the non-linearity applied by a neuron.
type Activation = nn.Activation

// Supported activations.
const (
	ReLU    = nn.ReLU
	Sigmoid = nn.Sigmoid
	Linear  = nn.Linear
)

// ErrShape is wrapped by every ShapeError.
var ErrShape = nn.ErrShape

// ShapeError reports an input of the wrong width.
type ShapeError = nn.ShapeError

// NewNeuron creates a neuron with nin inputs.
//
// Example:
//
//	g := autodiff.NewGraph()
//	n := nn.NewNeuron(g, 3, nn.Sigmoid, rand.New(rand.NewSource(42)))
func NewNeuron(g *autodiff.Graph, nin int, act Activation, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(g, nin, act, rng)
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(g *autodiff.Graph, nin, nout int, act Activation, rng *rand.Rand) *Layer {
	return nn.NewLayer(g, nin, nout, act, rng)
}

// NewMLP creates a multilayer perceptron.
//
// Example:
//
//	g := autodiff.NewGraph()
//	model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.Config{Seed: 42})
//	out, err := model.ForwardScalars([]float64{2, 3, -1})
func NewMLP(g *autodiff.Graph, nin int, nouts []int, cfg Config) *MLP {
	return nn.NewMLP(g, nin, nouts, cfg)
}

// ParseActivation parses "relu", "sigmoid" or "linear".
func ParseActivation(s string) (Activation, error) {
	return nn.ParseActivation(s)
}

// StateDict returns a map of parameter labels to their current values.
func StateDict(m Module) map[string]float64 {
	return nn.StateDict(m)
}

// LoadStateDict sets every parameter of m from stateDict.
func LoadStateDict(m Module, stateDict map[string]float64) error {
	return nn.LoadStateDict(m, stateDict)
}
