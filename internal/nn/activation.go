package nn

import "github.com/born-ml/mynet/internal/autodiff"

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// The operation is recorded in the graph, so gradients flow back through it.
//
// Example:
//
//	relu := nn.NewReLU()
//	output := relu.Forward(inputs) // All negative values become 0
type ReLU struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU activation: f(x) = max(0, x).
func (r *ReLU) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	return autodiff.ReLUAll(inputs)
}

// Parameters returns an empty slice (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// Sigmoid is a sigmoid activation module.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Sigmoid squashes values to the range (0, 1), making it useful for
// binary classification. It is built from Exp, Add and Div, so no dedicated
// derivative rule is needed.
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies Sigmoid activation: σ(x) = 1 / (1 + exp(-x)).
func (s *Sigmoid) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	out := make([]*autodiff.Value, len(inputs))
	for i, x := range inputs {
		out[i] = SigmoidOf(x)
	}
	return out
}

// Parameters returns an empty slice (Sigmoid has no trainable parameters).
func (s *Sigmoid) Parameters() []*Parameter {
	return nil
}

// SigmoidOf computes σ(x) for a single value.
func SigmoidOf(x *autodiff.Value) *autodiff.Value {
	return autodiff.Div(autodiff.Scalar(1), autodiff.Add(autodiff.Scalar(1), x.Neg().Exp()))
}

// Tanh is a hyperbolic tangent activation module.
//
// Tanh squashes values to the range (-1, 1), making it zero-centered
// which can help with training.
type Tanh struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies Tanh activation.
func (t *Tanh) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	out := make([]*autodiff.Value, len(inputs))
	for i, x := range inputs {
		out[i] = x.Tanh()
	}
	return out
}

// Parameters returns an empty slice (Tanh has no trainable parameters).
func (t *Tanh) Parameters() []*Parameter {
	return nil
}

// Softmax normalizes its inputs into a probability distribution.
//
// Applies: softmax(x)ᵢ = exp(xᵢ) / Σⱼ exp(xⱼ)
//
// No max-shift is applied, so very large inputs overflow to +Inf.
type Softmax struct{}

// NewSoftmax creates a new Softmax module.
func NewSoftmax() *Softmax {
	return &Softmax{}
}

// Forward applies softmax over the whole input slice.
func (s *Softmax) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	exps := make([]*autodiff.Value, len(inputs))
	for i, x := range inputs {
		exps[i] = x.Exp()
	}
	total := autodiff.Sum(exps...)

	out := make([]*autodiff.Value, len(exps))
	for i, e := range exps {
		out[i] = e.Div(total)
	}
	return out
}

// Parameters returns an empty slice (Softmax has no trainable parameters).
func (s *Softmax) Parameters() []*Parameter {
	return nil
}
