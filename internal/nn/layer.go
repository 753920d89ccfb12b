package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/mynet/internal/autodiff"
)

// Layer implements a fully connected (dense) layer of independent neurons.
//
// Performs the transformation: yⱼ = Σᵢ Wⱼᵢ xᵢ + bⱼ
// where:
//   - x has in_features values
//   - W holds one weight row per neuron
//   - y has out_features values
//
// Weights are initialized using Xavier/Glorot initialization.
// Biases are initialized to zeros.
//
// Example:
//
//	src := rand.NewPCG(1, 2)
//	layer := nn.NewLayer(2, 8, src)
//	out := layer.Forward(autodiff.Values(0.5, -1)) // 8 values
type Layer struct {
	inFeatures  int
	outFeatures int
	neurons     []*Neuron
	name        string
}

// NewLayer creates a new Layer with Xavier-initialized weights.
//
// A nil src uses the global random source.
// Panics if either size is not positive.
func NewLayer(inFeatures, outFeatures int, src rand.Source) *Layer {
	return NewNamedLayer("layer", inFeatures, outFeatures, Xavier(inFeatures, outFeatures, src))
}

// NewNamedLayer creates a Layer whose parameters are named
// name + ".n<j>.w<i>" / name + ".n<j>.b", drawing weights from init.
func NewNamedLayer(name string, inFeatures, outFeatures int, init Initializer) *Layer {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("NewLayer: sizes must be positive, got %d -> %d", inFeatures, outFeatures))
	}

	neurons := make([]*Neuron, outFeatures)
	for j := range neurons {
		neurons[j] = NewNeuron(fmt.Sprintf("%s.n%d", name, j), inFeatures, init)
	}

	return &Layer{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		neurons:     neurons,
		name:        name,
	}
}

// Forward evaluates every neuron on the same inputs.
//
// Panics if len(inputs) != in_features.
func (l *Layer) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	if len(inputs) != l.inFeatures {
		panic(fmt.Sprintf("Layer.Forward: expected %d inputs, got %d", l.inFeatures, len(inputs)))
	}

	out := make([]*autodiff.Value, len(l.neurons))
	for j, n := range l.neurons {
		out[j] = n.Forward(inputs)
	}
	return out
}

// Parameters returns the parameters of every neuron, in neuron order.
func (l *Layer) Parameters() []*Parameter {
	params := make([]*Parameter, 0, l.outFeatures*(l.inFeatures+1))
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InFeatures returns the number of input features.
func (l *Layer) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Layer) OutFeatures() int {
	return l.outFeatures
}

// Name returns the parameter name prefix.
func (l *Layer) Name() string {
	return l.name
}
