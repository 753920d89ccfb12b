package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/born-ml/mynet/internal/autodiff"
)

// Model is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input, creating a
// sequential pipeline of transformations.
//
// Example:
//
//	model := nn.NewModel(
//	    nn.NewLayer(2, 8, src),
//	    nn.NewTanh(),
//	    nn.NewLayer(8, 1, src),
//	)
//
//	output := model.Forward(autodiff.Values(0, 1))
type Model struct {
	modules []Module
}

// NewModel creates a new Model from the given modules.
func NewModel(modules ...Module) *Model {
	return &Model{
		modules: modules,
	}
}

// Activation names accepted by NewMLP.
const (
	ActivationReLU    = "relu"
	ActivationTanh    = "tanh"
	ActivationSigmoid = "sigmoid"
)

// NewMLP builds a multi-layer perceptron with the given layer sizes.
//
// sizes[0] is the input width and sizes[len-1] the output width. Every
// hidden layer is followed by the named activation; the output layer is
// linear. A nil src uses the global random source.
//
// Returns an error if fewer than two sizes are given, a size is not
// positive, or the activation is unknown.
func NewMLP(sizes []int, activation string, src rand.Source) (*Model, error) {
	if len(sizes) < 2 {
		return nil, errors.Errorf("nn: MLP needs at least input and output sizes, got %v", sizes)
	}
	for i, s := range sizes {
		if s <= 0 {
			return nil, errors.Errorf("nn: MLP size %d must be positive, got %d", i, s)
		}
	}

	newActivation, err := activationFactory(activation)
	if err != nil {
		return nil, err
	}

	m := NewModel()
	for i := 0; i < len(sizes)-1; i++ {
		in, out := sizes[i], sizes[i+1]
		m.Add(NewNamedLayer(fmt.Sprintf("layer%d", i), in, out, Xavier(in, out, src)))
		if i < len(sizes)-2 {
			m.Add(newActivation())
		}
	}
	return m, nil
}

func activationFactory(name string) (func() Module, error) {
	switch name {
	case ActivationReLU, "":
		return func() Module { return NewReLU() }, nil
	case ActivationTanh:
		return func() Module { return NewTanh() }, nil
	case ActivationSigmoid:
		return func() Module { return NewSigmoid() }, nil
	default:
		return nil, errors.Errorf("nn: unknown activation %q", name)
	}
}

// Forward applies all modules in sequence.
func (m *Model) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	output := inputs

	for _, module := range m.modules {
		output = module.Forward(output)
	}

	return output
}

// Predict runs Forward on plain numbers and returns plain numbers.
func (m *Model) Predict(inputs []float64) []float64 {
	return autodiff.Data(m.Forward(autodiff.Values(inputs...)))
}

// Parameters returns all trainable parameters from all modules.
func (m *Model) Parameters() []*Parameter {
	var params []*Parameter

	for _, module := range m.modules {
		params = append(params, module.Parameters()...)
	}

	return params
}

// ZeroGrad clears the gradient of every parameter.
func (m *Model) ZeroGrad() {
	ZeroGrad(m.Parameters())
}

// Add appends a module to the sequence.
func (m *Model) Add(module Module) {
	m.modules = append(m.modules, module)
}

// Len returns the number of modules in the sequence.
func (m *Model) Len() int {
	return len(m.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (m *Model) Module(index int) Module {
	if index < 0 || index >= len(m.modules) {
		panic("Model.Module: index out of bounds")
	}
	return m.modules[index]
}

// StateDict returns a snapshot of parameter values keyed by parameter name.
//
// Names are prefixed with their module index (e.g., "0.layer.n1.w0") to
// avoid collisions between modules built with the same prefix.
func (m *Model) StateDict() map[string]float64 {
	state := make(map[string]float64)

	for i, module := range m.modules {
		for _, p := range module.Parameters() {
			state[fmt.Sprintf("%d.%s", i, p.Name())] = p.Data()
		}
	}

	return state
}

// LoadStateDict restores parameter values from a snapshot taken by StateDict.
//
// Every parameter must be present in state; extra keys are rejected.
// Nothing is modified when an error is returned.
func (m *Model) LoadStateDict(state map[string]float64) error {
	type update struct {
		param *Parameter
		data  float64
	}

	var updates []update
	for i, module := range m.modules {
		for _, p := range module.Parameters() {
			key := fmt.Sprintf("%d.%s", i, p.Name())
			data, ok := state[key]
			if !ok {
				return errors.Errorf("nn: missing parameter %q", key)
			}
			updates = append(updates, update{p, data})
		}
	}
	if len(updates) != len(state) {
		return errors.Errorf("nn: state has %d entries, model has %d parameters", len(state), len(updates))
	}

	for _, u := range updates {
		u.param.SetData(u.data)
	}
	return nil
}
