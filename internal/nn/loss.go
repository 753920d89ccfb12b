package nn

import (
	"fmt"

	"github.com/born-ml/mynet/internal/autodiff"
)

// Loss reduces one sample's predictions and targets to a scalar node.
type Loss interface {
	Forward(predictions []*autodiff.Value, targets []float64) *autodiff.Value
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// MSE is commonly used for regression tasks where the goal is to predict
// continuous values.
//
// Example:
//
//	mse := nn.NewMSELoss()
//	predictions := model.Forward(inputs)
//	loss := mse.Forward(predictions, targets)
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes the MSE loss.
//
// Panics if predictions is empty or differs in length from targets.
func (m *MSELoss) Forward(predictions []*autodiff.Value, targets []float64) *autodiff.Value {
	checkLossShapes("MSELoss", predictions, targets)

	squared := make([]*autodiff.Value, len(predictions))
	for i, p := range predictions {
		diff := p.Sub(autodiff.Scalar(targets[i]))
		squared[i] = diff.Pow(autodiff.Scalar(2))
	}

	return autodiff.Mean(squared...)
}

// CrossEntropyLoss computes cross-entropy between a predicted probability
// distribution and a target distribution.
//
// Loss = -Σᵢ targetsᵢ · ln(predictionsᵢ)
//
// Predictions must already be probabilities (e.g. the output of Softmax);
// targets are usually one-hot. Classes with a zero target are skipped.
//
// Example:
//
//	probs := nn.NewSoftmax().Forward(logits)
//	loss := nn.NewCrossEntropyLoss().Forward(probs, []float64{0, 1, 0})
type CrossEntropyLoss struct{}

// NewCrossEntropyLoss creates a new cross-entropy loss function.
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return &CrossEntropyLoss{}
}

// Forward computes the cross-entropy loss.
//
// Panics if predictions is empty or differs in length from targets.
func (c *CrossEntropyLoss) Forward(predictions []*autodiff.Value, targets []float64) *autodiff.Value {
	checkLossShapes("CrossEntropyLoss", predictions, targets)

	var terms []*autodiff.Value
	for i, p := range predictions {
		if targets[i] == 0 {
			continue
		}
		terms = append(terms, p.Log().Mul(autodiff.Scalar(targets[i])))
	}

	return autodiff.Sum(terms...).Neg()
}

// OneHot returns a target vector of length n with a 1 at class.
//
// Panics if class is out of range.
func OneHot(class, n int) []float64 {
	if class < 0 || class >= n {
		panic(fmt.Sprintf("OneHot: class %d out of range [0, %d)", class, n))
	}
	out := make([]float64, n)
	out[class] = 1
	return out
}

func checkLossShapes(name string, predictions []*autodiff.Value, targets []float64) {
	if len(predictions) == 0 {
		panic(name + ": empty predictions")
	}
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("%s: predictions and targets must have the same length, got %d and %d",
			name, len(predictions), len(targets)))
	}
}
