package ops

import "math"

// tanhForward computes the hyperbolic tangent of x.
func tanhForward(x float64) float64 {
	return math.Tanh(x)
}

// tanhBackward computes the gradient for tanh.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// Since we have the output tanh(x) already computed:
// grad_input = grad_output * (1 - output²).
func tanhBackward(out, outputGrad float64) [MaxArity]float64 {
	return [MaxArity]float64{outputGrad * (1 - out*out)}
}
