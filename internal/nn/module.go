// Package nn implements neural network building blocks on top of scalar autodiff.
//
// This package provides:
//   - Module interface: Base interface for all NN components
//   - Parameter: Named trainable leaf with gradient tracking
//   - Neuron, Layer: Fully connected units
//   - Activations: ReLU, Sigmoid, Tanh, Softmax
//   - Loss functions: MSE, CrossEntropy
//   - Model: Container for stacking modules
//
// Every module works on slices of *autodiff.Value, so the whole forward pass
// is one computation graph and a single autodiff.Backward on the loss
// populates every parameter gradient.
package nn

import "github.com/born-ml/mynet/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute outputs from inputs
//   - Parameters: Return all trainable parameters
//
// Modules can be composed to build complex architectures:
//
//	model := nn.NewModel(
//	    nn.NewLayer(2, 8, src),
//	    nn.NewReLU(),
//	    nn.NewLayer(8, 1, src),
//	)
type Module interface {
	// Forward computes the outputs of the module for one sample.
	//
	// Each call builds new graph nodes; inputs are never mutated.
	Forward(inputs []*autodiff.Value) []*autodiff.Value

	// Parameters returns all trainable parameters of this module.
	//
	// Returns an empty slice for modules without trainable parameters
	// (e.g., activation functions).
	Parameters() []*Parameter
}

// ZeroGrad resets the gradient of every parameter in params.
func ZeroGrad(params []*Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
