// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Every arithmetic operation allocates a new Value that records the operation
// kind and the operands it consumed. The resulting directed acyclic graph is
// walked backwards by Backward, which applies each operation's local derivative
// rule exactly once, in reverse topological order.
//
// Architecture:
//   - Value: a graph node holding data, an accumulated gradient and its operands
//   - ops.Kind: closed set of operations with fixed derivative rules
//   - Backward: DFS topological sort + chain rule accumulation
//
// Usage:
//
//	x := autodiff.New(2)
//	y := x.Mul(x).Add(x.Mul(autodiff.Scalar(3))) // y = x² + 3x
//
//	autodiff.Backward(y)
//	fmt.Println(x.Grad()) // dy/dx = 2x + 3 = 7
//
// The graph is rebuilt on every forward pass. Leaves (parameters and inputs)
// live across passes; their gradients must be cleared with ZeroGrad before
// the next backward pass, otherwise contributions accumulate.
//
// The engine is single-threaded. Forward construction, Backward and any
// parameter update must not overlap.
package autodiff

import (
	"fmt"

	"github.com/born-ml/mynet/internal/autodiff/ops"
)

// Value is a differentiable scalar node in the computation graph.
//
// A Value is either a leaf (created by New, no operands) or the result of an
// operation. Results are immutable; only a leaf's data may be rewritten,
// typically by an optimizer between training steps.
//
// The gradient starts unset. Grad reports 0 for an unset gradient;
// HasGrad tells an unset gradient apart from one that accumulated to zero.
type Value struct {
	data    float64
	grad    float64
	hasGrad bool
	op      ops.Kind
	parents [ops.MaxArity]*Value // only the first op.Arity() entries are set
}

// New creates a leaf node holding data.
func New(data float64) *Value {
	return &Value{data: data, op: ops.Leaf}
}

// newResult records the output of op applied to operands.
func newResult(op ops.Kind, operands ...*Value) *Value {
	v := &Value{op: op}
	var in [ops.MaxArity]float64
	for i, p := range operands {
		v.parents[i] = p
		in[i] = p.data
	}
	v.data = ops.Forward(op, in)
	return v
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the value of a leaf in place.
//
// Panics if v was produced by an operation: rewriting a computed node
// would silently desynchronize it from its operands.
func (v *Value) SetData(data float64) {
	if v.op != ops.Leaf {
		panic(fmt.Sprintf("autodiff: SetData on computed node (%s)", v.op))
	}
	v.data = data
}

// Grad returns the accumulated gradient, or 0 if no backward pass reached v.
func (v *Value) Grad() float64 {
	return v.grad
}

// HasGrad reports whether a backward pass has populated the gradient since
// the last ZeroGrad.
func (v *Value) HasGrad() bool {
	return v.hasGrad
}

// ZeroGrad resets the gradient to the unset state.
// Calling it on an unset gradient is a no-op.
func (v *Value) ZeroGrad() {
	v.grad = 0
	v.hasGrad = false
}

// Op returns the kind of operation that produced v (ops.Leaf for leaves).
func (v *Value) Op() ops.Kind {
	return v.op
}

// IsLeaf reports whether v has no recorded operation.
func (v *Value) IsLeaf() bool {
	return v.op == ops.Leaf
}

// Parents returns the operands consumed by the operation that produced v.
// The returned slice is a copy; leaves return nil.
func (v *Value) Parents() []*Value {
	n := v.op.Arity()
	if n == 0 {
		return nil
	}
	out := make([]*Value, n)
	copy(out, v.parents[:n])
	return out
}

// String formats the node as Value(data) or Value(data, grad=g).
func (v *Value) String() string {
	if v.hasGrad {
		return fmt.Sprintf("Value(%g, grad=%g)", v.data, v.grad)
	}
	return fmt.Sprintf("Value(%g)", v.data)
}

// accumulate adds a gradient contribution, populating an unset gradient first.
func (v *Value) accumulate(g float64) {
	v.grad += g
	v.hasGrad = true
}
