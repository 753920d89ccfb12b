package autodiff

import (
	"fmt"
	"math"
)

// Operators in this file have no derivative rule of their own: they are
// compositions of Add, Mul and Pow, so their gradients come from the chain rule.

// Neg returns -x, computed as x * -1.
func Neg(x Operand) *Value {
	return Mul(x, Scalar(-1))
}

// Sub returns a - b, computed as a + (-b).
func Sub(a, b Operand) *Value {
	return Add(a, Neg(b))
}

// Div returns a / b, computed as a * b^-1.
func Div(a, b Operand) *Value {
	return Mul(a, Pow(b, Scalar(-1)))
}

// Exp returns e^x, computed as a power with constant base e.
// The gradient reaches x through the exponent path of Pow.
func Exp(x Operand) *Value {
	return Pow(Scalar(math.E), x)
}

// Root returns the n-th root of x, computed as x^(1/n).
func Root(x, n Operand) *Value {
	return Pow(x, Div(Scalar(1), n))
}

// Sqrt returns the square root of x.
func Sqrt(x Operand) *Value {
	return Root(x, Scalar(2))
}

// Sum adds all terms left to right. An empty sum is a zero leaf.
func Sum(terms ...*Value) *Value {
	if len(terms) == 0 {
		return New(0)
	}
	acc := terms[0].node()
	for _, t := range terms[1:] {
		acc = Add(acc, t)
	}
	return acc
}

// Mean returns the arithmetic mean of terms.
// Panics on an empty slice.
func Mean(terms ...*Value) *Value {
	if len(terms) == 0 {
		panic("autodiff: mean of no values")
	}
	return Div(Sum(terms...), Scalar(len(terms)))
}

// Dot returns Σ ws[i] * xs[i].
// Panics if the slices differ in length.
func Dot(ws, xs []*Value) *Value {
	if len(ws) != len(xs) {
		panic(fmt.Sprintf("autodiff: dot of mismatched lengths %d and %d", len(ws), len(xs)))
	}
	terms := make([]*Value, len(ws))
	for i := range ws {
		terms[i] = Mul(ws[i], xs[i])
	}
	return Sum(terms...)
}

// ReLUAll applies ReLU element-wise, returning a new slice.
func ReLUAll(xs []*Value) []*Value {
	out := make([]*Value, len(xs))
	for i, x := range xs {
		out[i] = ReLU(x)
	}
	return out
}

// Neg returns -v.
func (v *Value) Neg() *Value { return Neg(v) }

// Sub returns v - o.
func (v *Value) Sub(o Operand) *Value { return Sub(v, o) }

// Div returns v / o.
func (v *Value) Div(o Operand) *Value { return Div(v, o) }

// Exp returns e^v.
func (v *Value) Exp() *Value { return Exp(v) }

// Root returns the n-th root of v.
func (v *Value) Root(n Operand) *Value { return Root(v, n) }

// Sqrt returns the square root of v.
func (v *Value) Sqrt() *Value { return Sqrt(v) }
