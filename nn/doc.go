// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on scalar autodiff values.
//
// # Overview
//
// This package contains:
//   - Layers: Neuron, Layer
//   - Activations: ReLU, Sigmoid, Tanh, Softmax
//   - Loss functions: MSELoss, CrossEntropyLoss
//   - Utilities: Model, Module interface, Parameter
//   - Initialization: Xavier, Normal, Constant
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/mynet/autodiff"
//	    "github.com/born-ml/mynet/nn"
//	)
//
//	func main() {
//	    src := rand.NewPCG(1, 1)
//
//	    // Build a simple MLP
//	    model := nn.NewModel(
//	        nn.NewLayer(2, 8, src),
//	        nn.NewTanh(),
//	        nn.NewLayer(8, 1, src),
//	    )
//
//	    // Forward pass
//	    output := model.Forward(autodiff.Values(0, 1))
//	}
//
// # Loss Functions
//
// MSELoss: For regression tasks
//
//	criterion := nn.NewMSELoss()
//	loss := criterion.Forward(predictions, targets)
//
// CrossEntropyLoss: For classification over Softmax outputs
//
//	criterion := nn.NewCrossEntropyLoss()
//	loss := criterion.Forward(probs, nn.OneHot(label, 3))
//
// # Parameter Management
//
// Access model parameters for optimization:
//
//	for _, param := range model.Parameters() {
//	    fmt.Println(param.Name(), param.Data())
//	}
package nn
