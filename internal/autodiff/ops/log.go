package ops

import "math"

// logForward computes the natural logarithm ln(x).
//
// Forward:
//
//	output = log(input)
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * (1 / input)
//
// Non-positive inputs yield NaN or -Inf; no epsilon is added.
func logForward(x float64) float64 {
	return math.Log(x)
}

func logBackward(x, outputGrad float64) [MaxArity]float64 {
	return [MaxArity]float64{outputGrad / x}
}
