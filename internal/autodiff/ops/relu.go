package ops

// reluForward computes max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
//
// The derivative at exactly 0 is taken as 0.
func reluForward(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// reluBackward masks the output gradient by the sign of the forward input.
func reluBackward(x, outputGrad float64) [MaxArity]float64 {
	if x > 0 {
		return [MaxArity]float64{outputGrad}
	}
	return [MaxArity]float64{}
}
