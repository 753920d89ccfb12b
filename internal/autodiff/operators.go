package autodiff

import "github.com/born-ml/mynet/internal/autodiff/ops"

// Add returns a + b.
func Add(a, b Operand) *Value {
	return newResult(ops.Add, nodeOf(a), nodeOf(b))
}

// Mul returns a * b.
func Mul(a, b Operand) *Value {
	return newResult(ops.Mul, nodeOf(a), nodeOf(b))
}

// Pow returns base ** exponent.
//
// The exponent is a node like any other and receives a gradient
// (base^exponent * ln(base)). For a negative base that gradient is NaN;
// forward domain errors surface as NaN/±Inf from math.Pow.
func Pow(base, exponent Operand) *Value {
	return newResult(ops.Pow, nodeOf(base), nodeOf(exponent))
}

// ReLU returns max(0, x).
//
// The gradient flows back to x only where x > 0.
func ReLU(x Operand) *Value {
	return newResult(ops.ReLU, nodeOf(x))
}

// Log returns the natural logarithm of x.
func Log(x Operand) *Value {
	return newResult(ops.Log, nodeOf(x))
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x Operand) *Value {
	return newResult(ops.Tanh, nodeOf(x))
}

// Add returns v + o.
func (v *Value) Add(o Operand) *Value { return Add(v, o) }

// Mul returns v * o.
func (v *Value) Mul(o Operand) *Value { return Mul(v, o) }

// Pow returns v ** exponent.
func (v *Value) Pow(exponent Operand) *Value { return Pow(v, exponent) }

// ReLU returns max(0, v).
func (v *Value) ReLU() *Value { return ReLU(v) }

// Log returns ln(v).
func (v *Value) Log() *Value { return Log(v) }

// Tanh returns tanh(v).
func (v *Value) Tanh() *Value { return Tanh(v) }
