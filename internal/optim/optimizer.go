// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for epoch := range epochs {
//	    optimizer.ZeroGrad()
//	    loss := lossFn.Forward(model.Forward(inputs), targets)
//	    autodiff.Backward(loss)
//	    optimizer.Step()
//	}
package optim

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/mynet/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies gradient updates to all parameters in place.
	//
	// Gradients are read from the parameters themselves, so Step must run
	// after autodiff.Backward has completed. Parameters that the last
	// backward pass did not reach are skipped.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// This should be called before each forward pass to prevent
	// gradient accumulation from previous iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// GradNorm returns the L2 norm of the populated parameter gradients.
func GradNorm(params []*nn.Parameter) float64 {
	idx := activeIndices(params)
	if len(idx) == 0 {
		return 0
	}
	return floats.Norm(gather(params, idx, (*nn.Parameter).Grad), 2)
}

// activeIndices returns the indices of parameters with a populated gradient.
func activeIndices(params []*nn.Parameter) []int {
	idx := make([]int, 0, len(params))
	for i, p := range params {
		if p.HasGrad() {
			idx = append(idx, i)
		}
	}
	return idx
}

// gather collects get(params[i]) for each index into a dense vector.
func gather(params []*nn.Parameter, idx []int, get func(*nn.Parameter) float64) []float64 {
	out := make([]float64, len(idx))
	for k, i := range idx {
		out[k] = get(params[i])
	}
	return out
}

// scatter writes a dense vector back into the parameters' data.
func scatter(params []*nn.Parameter, idx []int, data []float64) {
	for k, i := range idx {
		params[i].SetData(data[k])
	}
}
