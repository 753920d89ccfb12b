package ops

import "math"

// powForward computes base ** exponent with math.Pow semantics.
//
// Domain errors (non-integer exponent on a negative base, zero base with a
// negative exponent) surface as NaN or ±Inf, exactly as math.Pow reports them.
func powForward(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// powBackward computes gradients for base ** exponent.
//
// Backward pass:
//   - d(a^b)/da = b * a^(b-1), so grad_a = outputGrad * b * a^(b-1)
//   - d(a^b)/db = a^b * ln(a), so grad_b = outputGrad * a^b * ln(a)
//
// Exponents are usually constants, so grad_b mostly lands on a throwaway leaf.
// It is still needed for e^x, where x is the exponent.
// At a = 0 the term a^b * ln(a) is taken as its limit 0 for b > 0.
// For a < 0 the logarithm is undefined and grad_b is NaN.
func powBackward(base, exponent, out, outputGrad float64) [MaxArity]float64 {
	gradBase := outputGrad * exponent * math.Pow(base, exponent-1)

	var gradExponent float64
	switch {
	case base == 0 && exponent > 0:
		gradExponent = 0
	default:
		gradExponent = outputGrad * out * math.Log(base)
	}

	return [MaxArity]float64{gradBase, gradExponent}
}
