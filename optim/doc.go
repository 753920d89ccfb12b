// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// Optimizers read each parameter's accumulated gradient and update its data in
// place. Parameters the last backward pass did not reach are left untouched.
//
// # Training Loop Pattern
//
//	for epoch := range numEpochs {
//	    // 1. Zero gradients
//	    optimizer.ZeroGrad()
//
//	    // 2. Forward pass
//	    output := model.Forward(autodiff.Values(x...))
//	    loss := criterion.Forward(output, y)
//
//	    // 3. Backward pass
//	    autodiff.Backward(loss)
//
//	    // 4. Update parameters
//	    optimizer.Step()
//	}
package optim
