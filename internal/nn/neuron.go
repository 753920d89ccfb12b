package nn

import (
	"fmt"

	"github.com/born-ml/mynet/internal/autodiff"
)

// Neuron is a single fully connected unit: y = Σ wᵢxᵢ + b.
//
// No activation is applied; compose with ReLU, Tanh or Sigmoid as needed.
type Neuron struct {
	weights []*Parameter
	bias    *Parameter
}

// NewNeuron creates a neuron with inFeatures weights drawn from init and a
// zero bias. Parameter names are prefix + ".w<i>" and prefix + ".b".
//
// Panics if inFeatures is not positive.
func NewNeuron(prefix string, inFeatures int, init Initializer) *Neuron {
	if inFeatures <= 0 {
		panic(fmt.Sprintf("NewNeuron: inFeatures must be positive, got %d", inFeatures))
	}

	weights := make([]*Parameter, inFeatures)
	for i := range weights {
		weights[i] = NewParameter(fmt.Sprintf("%s.w%d", prefix, i), init())
	}

	return &Neuron{
		weights: weights,
		bias:    NewParameter(prefix+".b", 0),
	}
}

// Forward computes Σ wᵢxᵢ + b.
//
// Panics if len(inputs) differs from the number of weights.
func (n *Neuron) Forward(inputs []*autodiff.Value) *autodiff.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(inputs)))
	}

	ws := make([]*autodiff.Value, len(n.weights))
	for i, w := range n.weights {
		ws[i] = w.Value()
	}

	return autodiff.Dot(ws, inputs).Add(n.bias.Value())
}

// Weights returns the weight parameters.
func (n *Neuron) Weights() []*Parameter {
	return n.weights
}

// Bias returns the bias parameter.
func (n *Neuron) Bias() *Parameter {
	return n.bias
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}
