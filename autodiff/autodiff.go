// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Every arithmetic operation on a Value creates a new node that remembers its
// operands. Calling Backward on the final node walks the graph once in
// reverse topological order and accumulates d(root)/d(node) into every
// reachable node.
//
// Example:
//
//	import "github.com/born-ml/mynet/autodiff"
//
//	func main() {
//	    w := autodiff.New(0)
//	    x := autodiff.New(2)
//
//	    // loss = (1 - w*x)^2
//	    loss := autodiff.Sub(autodiff.Scalar(1), w.Mul(x)).Pow(autodiff.Scalar(2))
//	    autodiff.Backward(loss)
//
//	    fmt.Println(w.Grad()) // -4
//	}
package autodiff

import (
	"github.com/born-ml/mynet/internal/autodiff"
	"github.com/born-ml/mynet/internal/autodiff/ops"
)

// Value is a node in the computation graph.
type Value = autodiff.Value

// Operand is anything that can appear as an operation input: *Value or Scalar.
type Operand = autodiff.Operand

// Scalar is a constant operand. It becomes a fresh leaf when used.
type Scalar = autodiff.Scalar

// Op identifies the operation that produced a Value.
type Op = ops.Kind

// Operation kinds.
const (
	OpLeaf = ops.Leaf
	OpAdd  = ops.Add
	OpMul  = ops.Mul
	OpPow  = ops.Pow
	OpReLU = ops.ReLU
	OpLog  = ops.Log
	OpTanh = ops.Tanh
)

// New creates a leaf with the given data and no gradient.
func New(data float64) *Value {
	return autodiff.New(data)
}

// Values wraps each number in a new leaf.
func Values(xs ...float64) []*Value {
	return autodiff.Values(xs...)
}

// Data extracts the data of each value.
func Data(vs []*Value) []float64 {
	return autodiff.Data(vs)
}

// Backward computes the gradient of root with respect to every node reachable
// from it. Gradients accumulate; reset them with ZeroGrad between passes.
func Backward(root *Value) {
	autodiff.Backward(root)
}

// TopologicalOrder returns the nodes reachable from root, operands first and
// root last.
func TopologicalOrder(root *Value) []*Value {
	return autodiff.TopologicalOrder(root)
}

// Primitive operations

// Add returns a + b.
func Add(a, b Operand) *Value { return autodiff.Add(a, b) }

// Mul returns a * b.
func Mul(a, b Operand) *Value { return autodiff.Mul(a, b) }

// Pow returns base^exponent. Both inputs receive gradients.
func Pow(base, exponent Operand) *Value { return autodiff.Pow(base, exponent) }

// ReLU returns max(x, 0).
func ReLU(x Operand) *Value { return autodiff.ReLU(x) }

// Log returns the natural logarithm of x.
func Log(x Operand) *Value { return autodiff.Log(x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x Operand) *Value { return autodiff.Tanh(x) }

// Derived operations

// Neg returns -x.
func Neg(x Operand) *Value { return autodiff.Neg(x) }

// Sub returns a - b.
func Sub(a, b Operand) *Value { return autodiff.Sub(a, b) }

// Div returns a / b.
func Div(a, b Operand) *Value { return autodiff.Div(a, b) }

// Exp returns e^x.
func Exp(x Operand) *Value { return autodiff.Exp(x) }

// Root returns the n-th root of x.
func Root(x, n Operand) *Value { return autodiff.Root(x, n) }

// Sqrt returns the square root of x.
func Sqrt(x Operand) *Value { return autodiff.Sqrt(x) }

// Sum adds all terms. The empty sum is a zero leaf.
func Sum(terms ...*Value) *Value { return autodiff.Sum(terms...) }

// Mean averages all terms. It panics on empty input.
func Mean(terms ...*Value) *Value { return autodiff.Mean(terms...) }

// Dot returns the sum of ws[i]*xs[i].
func Dot(ws, xs []*Value) *Value { return autodiff.Dot(ws, xs) }

// ReLUAll applies ReLU element-wise.
func ReLUAll(xs []*Value) []*Value { return autodiff.ReLUAll(xs) }
