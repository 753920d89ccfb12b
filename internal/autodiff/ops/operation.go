// Package ops defines the closed set of scalar operations understood by the
// autodiff engine, together with their forward values and local derivative rules.
//
// Each operation kind provides:
//   - Forward: the scalar result computed from the operand values
//   - Backward: the contribution to each operand's gradient given the output gradient
//
// Supported operations:
//   - Add: a + b (d(a+b)/da = 1, d(a+b)/db = 1)
//   - Mul: a * b (d(a*b)/da = b, d(a*b)/db = a)
//   - Pow: a ** b (d/da = b * a^(b-1), d/db = a^b * ln(a))
//   - ReLU: max(0, x) (d/dx = 1 if x > 0, else 0)
//   - Log: ln(x) (d/dx = 1/x)
//   - Tanh: tanh(x) (d/dx = 1 - tanh²(x))
//
// Subtraction, division, negation and exponentiation are not separate kinds:
// the engine expresses them through Add, Mul and Pow.
package ops

import "fmt"

// MaxArity is the largest number of operands any operation consumes.
const MaxArity = 2

// Kind identifies the operation that produced a node.
type Kind uint8

// Operation kinds.
const (
	Leaf Kind = iota // No operation: constants, inputs and parameters.
	Add
	Mul
	Pow
	ReLU
	Log
	Tanh
)

var kindNames = [...]string{
	Leaf: "leaf",
	Add:  "add",
	Mul:  "mul",
	Pow:  "pow",
	ReLU: "relu",
	Log:  "log",
	Tanh: "tanh",
}

// String returns the lower-case name of the operation.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arity returns the number of operands the operation consumes.
func (k Kind) Arity() int {
	switch k {
	case Leaf:
		return 0
	case Add, Mul, Pow:
		return 2
	case ReLU, Log, Tanh:
		return 1
	default:
		panic(fmt.Sprintf("ops: unknown operation %s", k))
	}
}

// Forward computes the output value of the operation.
//
// Only the first Arity() entries of in are read.
func Forward(k Kind, in [MaxArity]float64) float64 {
	switch k {
	case Add:
		return addForward(in[0], in[1])
	case Mul:
		return mulForward(in[0], in[1])
	case Pow:
		return powForward(in[0], in[1])
	case ReLU:
		return reluForward(in[0])
	case Log:
		return logForward(in[0])
	case Tanh:
		return tanhForward(in[0])
	default:
		panic(fmt.Sprintf("ops: %s has no forward rule", k))
	}
}

// Backward computes the gradient contributions for the operands of an operation.
//
// Parameters:
//   - in: operand values recorded during the forward pass
//   - out: the output value produced by Forward
//   - outputGrad: accumulated gradient of the root with respect to the output
//
// The caller adds the returned contributions into the operands' gradients;
// entries past Arity() are zero.
func Backward(k Kind, in [MaxArity]float64, out, outputGrad float64) [MaxArity]float64 {
	switch k {
	case Add:
		return addBackward(outputGrad)
	case Mul:
		return mulBackward(in[0], in[1], outputGrad)
	case Pow:
		return powBackward(in[0], in[1], out, outputGrad)
	case ReLU:
		return reluBackward(in[0], outputGrad)
	case Log:
		return logBackward(in[0], outputGrad)
	case Tanh:
		return tanhBackward(out, outputGrad)
	default:
		panic(fmt.Sprintf("ops: %s has no backward rule", k))
	}
}
