package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/mynet/internal/autodiff"
	"github.com/born-ml/mynet/internal/autodiff/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsLeaf(t *testing.T) {
	v := autodiff.New(3.5)

	assert.Equal(t, 3.5, v.Data())
	assert.True(t, v.IsLeaf())
	assert.Equal(t, ops.Leaf, v.Op())
	assert.Nil(t, v.Parents())
	assert.False(t, v.HasGrad())
	assert.Zero(t, v.Grad())
}

func TestAdd_Fixture(t *testing.T) {
	a, b := autodiff.New(2), autodiff.New(3)
	sum := autodiff.Add(a, b)

	assert.Equal(t, 5.0, sum.Data())
	assert.Equal(t, ops.Add, sum.Op())
	assert.Equal(t, []*autodiff.Value{a, b}, sum.Parents())

	autodiff.Backward(sum)

	assert.Equal(t, 1.0, sum.Grad())
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
}

func TestMul_Fixture(t *testing.T) {
	a, b := autodiff.New(4), autodiff.New(5)
	prod := autodiff.Mul(a, b)

	assert.Equal(t, 20.0, prod.Data())

	autodiff.Backward(prod)

	assert.Equal(t, 5.0, a.Grad())
	assert.Equal(t, 4.0, b.Grad())
}

func TestPow_Fixture(t *testing.T) {
	base := autodiff.New(3)
	sq := autodiff.Pow(base, autodiff.Scalar(2))

	assert.Equal(t, 9.0, sq.Data())

	autodiff.Backward(sq)

	assert.Equal(t, 6.0, base.Grad())
}

func TestPow_ExponentGradient(t *testing.T) {
	base, exponent := autodiff.New(2), autodiff.New(3)
	out := base.Pow(exponent)

	autodiff.Backward(out)

	assert.InDelta(t, 12.0, base.Grad(), 1e-12)             // 3 * 2²
	assert.InDelta(t, 8*math.Ln2, exponent.Grad(), 1e-12) // 2³ * ln 2
}

func TestReLU_Boundary(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		wantData float64
		wantGrad float64
	}{
		{"negative", -1, 0, 0},
		{"zero", 0, 0, 0},
		{"positive", 2, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := autodiff.New(tt.input)
			y := x.ReLU()

			autodiff.Backward(y)

			assert.Equal(t, tt.wantData, y.Data())
			assert.Equal(t, tt.wantGrad, x.Grad())
			assert.True(t, x.HasGrad())
		})
	}
}

func TestReLUAll(t *testing.T) {
	xs := autodiff.Values(-1, 0.5, 2)
	ys := autodiff.ReLUAll(xs)

	require.Len(t, ys, 3)
	assert.Equal(t, []float64{0, 0.5, 2}, autodiff.Data(ys))

	autodiff.Backward(autodiff.Sum(ys...))

	assert.Equal(t, 0.0, xs[0].Grad())
	assert.Equal(t, 1.0, xs[1].Grad())
	assert.Equal(t, 1.0, xs[2].Grad())
}

func TestScalarOperand_TreatedAsLeaf(t *testing.T) {
	x := autodiff.New(4)

	withScalar := x.Mul(autodiff.Scalar(5))
	withNode := x.Mul(autodiff.New(5))

	assert.Equal(t, withNode.Data(), withScalar.Data())

	parents := withScalar.Parents()
	require.Len(t, parents, 2)
	assert.True(t, parents[1].IsLeaf())
	assert.Equal(t, 5.0, parents[1].Data())
}

func TestOperators_DoNotMutateOperands(t *testing.T) {
	a, b := autodiff.New(2), autodiff.New(3)

	_ = a.Add(b).Mul(a).Pow(autodiff.Scalar(2))

	assert.Equal(t, 2.0, a.Data())
	assert.Equal(t, 3.0, b.Data())
	assert.False(t, a.HasGrad())
}

func TestDerivedOperators(t *testing.T) {
	tests := []struct {
		name     string
		build    func(x *autodiff.Value) *autodiff.Value
		x        float64
		wantData float64
		wantGrad float64
	}{
		{"neg", func(x *autodiff.Value) *autodiff.Value { return x.Neg() }, 3, -3, -1},
		{"sub", func(x *autodiff.Value) *autodiff.Value { return x.Sub(autodiff.Scalar(1)) }, 3, 2, 1},
		{"rsub", func(x *autodiff.Value) *autodiff.Value { return autodiff.Sub(autodiff.Scalar(1), x) }, 3, -2, -1},
		{"div", func(x *autodiff.Value) *autodiff.Value { return x.Div(autodiff.Scalar(4)) }, 3, 0.75, 0.25},
		{"rdiv", func(x *autodiff.Value) *autodiff.Value { return autodiff.Div(autodiff.Scalar(1), x) }, 2, 0.5, -0.25},
		{"exp", func(x *autodiff.Value) *autodiff.Value { return x.Exp() }, 1, math.E, math.E},
		{"log", func(x *autodiff.Value) *autodiff.Value { return x.Log() }, 2, math.Ln2, 0.5},
		{"sqrt", func(x *autodiff.Value) *autodiff.Value { return x.Sqrt() }, 4, 2, 0.25},
		{"cube root", func(x *autodiff.Value) *autodiff.Value { return x.Root(autodiff.Scalar(3)) }, 8, 2, 1.0 / 12},
		{"tanh", func(x *autodiff.Value) *autodiff.Value { return x.Tanh() }, 0.5, math.Tanh(0.5), 1 - math.Tanh(0.5)*math.Tanh(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := autodiff.New(tt.x)
			y := tt.build(x)

			autodiff.Backward(y)

			assert.InDelta(t, tt.wantData, y.Data(), 1e-12)
			assert.InDelta(t, tt.wantGrad, x.Grad(), 1e-12)
		})
	}
}

func TestSumMeanDot(t *testing.T) {
	ws := autodiff.Values(1, 2, 3)
	xs := autodiff.Values(4, 5, 6)

	dot := autodiff.Dot(ws, xs)
	assert.Equal(t, 32.0, dot.Data())

	autodiff.Backward(dot)
	assert.Equal(t, []float64{4, 5, 6}, grads(ws))
	assert.Equal(t, []float64{1, 2, 3}, grads(xs))

	mean := autodiff.Mean(xs...)
	assert.InDelta(t, 5.0, mean.Data(), 1e-12)

	assert.Equal(t, 0.0, autodiff.Sum().Data())
	assert.Panics(t, func() { autodiff.Mean() })
	assert.Panics(t, func() { autodiff.Dot(ws, xs[:2]) })
}

func TestNilOperand_Panics(t *testing.T) {
	var missing *autodiff.Value

	assert.PanicsWithValue(t, "autodiff: nil operand", func() {
		autodiff.Add(autodiff.New(1), missing)
	})
	assert.PanicsWithValue(t, "autodiff: nil operand", func() {
		autodiff.Mul(nil, autodiff.Scalar(1))
	})
}

func TestSetData(t *testing.T) {
	w := autodiff.New(1)
	w.SetData(0.25)
	assert.Equal(t, 0.25, w.Data())

	y := w.Mul(autodiff.Scalar(2))
	assert.Panics(t, func() { y.SetData(3) })
}

func TestString(t *testing.T) {
	x := autodiff.New(2)
	assert.Equal(t, "Value(2)", x.String())

	autodiff.Backward(x)
	assert.Equal(t, "Value(2, grad=1)", x.String())
}

func grads(vs []*autodiff.Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Grad()
	}
	return out
}
