package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "leaf", Leaf.String())
	assert.Equal(t, "pow", Pow.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestKind_Arity(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{Leaf, 0},
		{Add, 2},
		{Mul, 2},
		{Pow, 2},
		{ReLU, 1},
		{Log, 1},
		{Tanh, 1},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Arity())
		})
	}

	assert.Panics(t, func() { Kind(99).Arity() })
}

func TestForward(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		in   [MaxArity]float64
		want float64
	}{
		{"add", Add, [MaxArity]float64{2, 3}, 5},
		{"mul", Mul, [MaxArity]float64{4, 5}, 20},
		{"pow", Pow, [MaxArity]float64{3, 2}, 9},
		{"relu negative", ReLU, [MaxArity]float64{-1}, 0},
		{"relu positive", ReLU, [MaxArity]float64{2}, 2},
		{"log", Log, [MaxArity]float64{math.E}, 1},
		{"tanh", Tanh, [MaxArity]float64{0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Forward(tt.kind, tt.in), 1e-12)
		})
	}

	assert.Panics(t, func() { Forward(Leaf, [MaxArity]float64{}) })
}

func TestBackward(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		in   [MaxArity]float64
		grad float64
		want [MaxArity]float64
	}{
		{"add passes through", Add, [MaxArity]float64{2, 3}, 1.5, [MaxArity]float64{1.5, 1.5}},
		{"mul swaps operands", Mul, [MaxArity]float64{4, 5}, 1, [MaxArity]float64{5, 4}},
		{"mul scales", Mul, [MaxArity]float64{4, 5}, 2, [MaxArity]float64{10, 8}},
		{"pow", Pow, [MaxArity]float64{3, 2}, 1, [MaxArity]float64{6, 9 * math.Log(3)}},
		{"pow zero base", Pow, [MaxArity]float64{0, 2}, 1, [MaxArity]float64{0, 0}},
		{"relu blocks negative", ReLU, [MaxArity]float64{-1}, 1, [MaxArity]float64{0}},
		{"relu blocks zero", ReLU, [MaxArity]float64{0}, 1, [MaxArity]float64{0}},
		{"relu passes positive", ReLU, [MaxArity]float64{2}, 3, [MaxArity]float64{3}},
		{"log", Log, [MaxArity]float64{4}, 2, [MaxArity]float64{0.5}},
		{"tanh at zero", Tanh, [MaxArity]float64{0}, 1, [MaxArity]float64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Forward(tt.kind, tt.in)
			got := Backward(tt.kind, tt.in, out, tt.grad)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-12, "operand %d", i)
			}
		})
	}
}

func TestBackward_PowNegativeBaseExponentGradIsNaN(t *testing.T) {
	in := [MaxArity]float64{-2, 2}
	got := Backward(Pow, in, Forward(Pow, in), 1)

	assert.InDelta(t, -4, got[0], 1e-12)
	assert.True(t, math.IsNaN(got[1]))
}
