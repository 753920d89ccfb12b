package ops

// addForward computes a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
func addForward(a, b float64) float64 {
	return a + b
}

// addBackward passes the output gradient through unchanged to both operands.
func addBackward(outputGrad float64) [MaxArity]float64 {
	return [MaxArity]float64{outputGrad, outputGrad}
}
