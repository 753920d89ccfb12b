package ops

// mulForward computes a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
func mulForward(a, b float64) float64 {
	return a * b
}

// mulBackward scales the output gradient by the other operand's value.
func mulBackward(a, b, outputGrad float64) [MaxArity]float64 {
	return [MaxArity]float64{outputGrad * b, outputGrad * a}
}
