package nn

import "github.com/born-ml/mynet/internal/autodiff"

// Parameter represents a trainable scalar in a neural network.
//
// A Parameter wraps a leaf *autodiff.Value that lives for the whole training
// run. Its data is rewritten by the optimizer; its gradient is populated by
// autodiff.Backward and cleared by ZeroGrad.
//
// Example:
//
//	w := nn.NewParameter("layer0.n1.w0", 0.3)
//	y := w.Value().Mul(x)
//	autodiff.Backward(y)
//	fmt.Println(w.Grad())
type Parameter struct {
	name  string
	value *autodiff.Value
}

// NewParameter creates a new trainable parameter initialized to data.
func NewParameter(name string, data float64) *Parameter {
	return &Parameter{
		name:  name,
		value: autodiff.New(data),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the leaf node used in forward computations.
func (p *Parameter) Value() *autodiff.Value {
	return p.value
}

// Data returns the current parameter value.
func (p *Parameter) Data() float64 {
	return p.value.Data()
}

// SetData overwrites the parameter value in place.
func (p *Parameter) SetData(data float64) {
	p.value.SetData(data)
}

// Grad returns the accumulated gradient (0 before any backward pass).
func (p *Parameter) Grad() float64 {
	return p.value.Grad()
}

// HasGrad reports whether a backward pass reached this parameter since the
// last ZeroGrad.
func (p *Parameter) HasGrad() bool {
	return p.value.HasGrad()
}

// ZeroGrad clears the gradient.
//
// This should be called before each training iteration to avoid
// accumulating gradients from previous iterations.
func (p *Parameter) ZeroGrad() {
	p.value.ZeroGrad()
}
