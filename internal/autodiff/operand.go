package autodiff

// Operand is an argument to an arithmetic operator: either a *Value or a
// Scalar constant. A Scalar is wrapped into a fresh leaf before the operation
// runs, so the two behave identically in the graph.
//
// The interface is sealed; only *Value and Scalar implement it.
type Operand interface {
	node() *Value
}

// Scalar is a plain numeric constant used as an operand.
//
//	y := x.Mul(autodiff.Scalar(3))
type Scalar float64

func (s Scalar) node() *Value {
	return New(float64(s))
}

func (v *Value) node() *Value {
	if v == nil {
		panic("autodiff: nil operand")
	}
	return v
}

// nodeOf normalizes an operand into a graph node.
func nodeOf(o Operand) *Value {
	if o == nil {
		panic("autodiff: nil operand")
	}
	return o.node()
}

// Values wraps plain numbers into leaves, e.g. a sample's input features.
func Values(xs ...float64) []*Value {
	out := make([]*Value, len(xs))
	for i, x := range xs {
		out[i] = New(x)
	}
	return out
}

// Data extracts the forward values of vs.
func Data(vs []*Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.data
	}
	return out
}
