package optim

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/mynet/internal/nn"
)

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum helps accelerate SGD in relevant directions and dampens oscillations.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities []float64 // aligned with params
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make([]float64, len(params)),
	}
}

// Step performs a single optimization step.
//
// Parameters with no gradient (not in the last computation graph) are
// skipped, and their velocity is left untouched.
func (s *SGD) Step() {
	idx := activeIndices(s.params)
	if len(idx) == 0 {
		return
	}

	data := gather(s.params, idx, (*nn.Parameter).Data)
	grad := gather(s.params, idx, (*nn.Parameter).Grad)

	if s.momentum == 0 {
		// Simple SGD: param -= lr * grad
		floats.AddScaled(data, -s.lr, grad)
	} else {
		velocity := make([]float64, len(idx))
		for k, i := range idx {
			velocity[k] = s.velocities[i]
		}

		// velocity = momentum * velocity + grad
		floats.Scale(s.momentum, velocity)
		floats.Add(velocity, grad)
		for k, i := range idx {
			s.velocities[i] = velocity[k]
		}

		// param -= lr * velocity
		floats.AddScaled(data, -s.lr, velocity)
	}

	scatter(s.params, idx, data)
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	nn.ZeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
