// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/mynet/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable scalar in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and initial value.
func NewParameter(name string, data float64) *Parameter {
	return nn.NewParameter(name, data)
}

// ZeroGrad resets the gradient of every parameter.
func ZeroGrad(params []*Parameter) {
	nn.ZeroGrad(params)
}

// Initialization

// Initializer produces initial weight values.
type Initializer = nn.Initializer

// Xavier returns a Glorot-uniform initializer for a layer of the given fan-in
// and fan-out.
func Xavier(fanIn, fanOut int, src rand.Source) Initializer {
	return nn.Xavier(fanIn, fanOut, src)
}

// Normal returns an initializer drawing from N(0, std²).
func Normal(std float64, src rand.Source) Initializer {
	return nn.Normal(std, src)
}

// Constant returns an initializer that always yields c.
func Constant(c float64) Initializer {
	return nn.Constant(c)
}

// Layers

// Neuron computes w·x + b.
type Neuron = nn.Neuron

// NewNeuron creates a neuron whose parameters are named prefix.w<i> and prefix.b.
func NewNeuron(prefix string, inFeatures int, init Initializer) *Neuron {
	return nn.NewNeuron(prefix, inFeatures, init)
}

// Layer is a fully connected layer of independent neurons.
type Layer = nn.Layer

// NewLayer creates a fully connected layer with Xavier initialization.
//
// Example:
//
//	layer := nn.NewLayer(2, 8, rand.NewPCG(1, 1))
func NewLayer(inFeatures, outFeatures int, src rand.Source) *Layer {
	return nn.NewLayer(inFeatures, outFeatures, src)
}

// NewNamedLayer creates a fully connected layer with the given parameter name
// prefix and initializer.
func NewNamedLayer(name string, inFeatures, outFeatures int, init Initializer) *Layer {
	return nn.NewNamedLayer(name, inFeatures, outFeatures, init)
}

// Activations

// ReLU applies max(x, 0) element-wise.
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation.
func NewReLU() *ReLU { return nn.NewReLU() }

// Sigmoid applies 1/(1+e^-x) element-wise.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() *Sigmoid { return nn.NewSigmoid() }

// Tanh applies tanh element-wise.
type Tanh = nn.Tanh

// NewTanh creates a Tanh activation.
func NewTanh() *Tanh { return nn.NewTanh() }

// Softmax normalizes its inputs into a probability distribution.
type Softmax = nn.Softmax

// NewSoftmax creates a Softmax activation.
func NewSoftmax() *Softmax { return nn.NewSoftmax() }

// Losses

// Loss reduces predictions and targets to a scalar.
type Loss = nn.Loss

// MSELoss is the mean squared error.
type MSELoss = nn.MSELoss

// NewMSELoss creates a mean squared error loss.
func NewMSELoss() *MSELoss { return nn.NewMSELoss() }

// CrossEntropyLoss is -Σ t·ln(p) over probability predictions.
type CrossEntropyLoss = nn.CrossEntropyLoss

// NewCrossEntropyLoss creates a cross-entropy loss.
func NewCrossEntropyLoss() *CrossEntropyLoss { return nn.NewCrossEntropyLoss() }

// OneHot returns a vector of length n with a 1 at class.
func OneHot(class, n int) []float64 { return nn.OneHot(class, n) }

// Models

// Model chains modules in order.
type Model = nn.Model

// Activation names accepted by NewMLP.
const (
	ActivationReLU    = nn.ActivationReLU
	ActivationTanh    = nn.ActivationTanh
	ActivationSigmoid = nn.ActivationSigmoid
)

// NewModel creates a model from the given modules.
func NewModel(modules ...Module) *Model {
	return nn.NewModel(modules...)
}

// NewMLP builds a multi-layer perceptron with the given layer sizes and
// hidden activation.
//
// Example:
//
//	model, err := nn.NewMLP([]int{2, 8, 1}, nn.ActivationTanh, rand.NewPCG(1, 1))
func NewMLP(sizes []int, activation string, src rand.Source) (*Model, error) {
	return nn.NewMLP(sizes, activation, src)
}
