// Package gradcheck verifies reverse-mode gradients against central finite
// differences.
//
// Example:
//
//	res, err := gradcheck.Check(func(xs []*autodiff.Value) *autodiff.Value {
//	    return xs[0].Mul(xs[1]).Tanh()
//	}, []float64{0.3, -1.2}, gradcheck.DefaultTolerance)
package gradcheck

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/mynet/internal/autodiff"
)

// DefaultTolerance is the maximum absolute difference accepted by Check.
const DefaultTolerance = 1e-5

// Func builds a scalar output from leaf inputs.
type Func func(xs []*autodiff.Value) *autodiff.Value

// Result holds both gradients and their largest absolute difference.
type Result struct {
	Analytic   []float64
	Numeric    []float64
	MaxAbsDiff float64
}

// Check evaluates f at the given point, runs Backward, and compares every
// input gradient with a central finite-difference estimate.
//
// Returns an error if at is empty, if either gradient contains NaN, or if the
// largest difference exceeds tol.
func Check(f Func, at []float64, tol float64) (Result, error) {
	if len(at) == 0 {
		return Result{}, errors.New("gradcheck: no inputs")
	}

	analytic := Analytic(f, at)
	numeric := fd.Gradient(nil, func(x []float64) float64 {
		return f(autodiff.Values(x...)).Data()
	}, at, &fd.Settings{Formula: fd.Central})

	res := Result{
		Analytic:   analytic,
		Numeric:    numeric,
		MaxAbsDiff: floats.Distance(analytic, numeric, math.Inf(1)),
	}

	if floats.HasNaN(analytic) || floats.HasNaN(numeric) {
		return res, errors.Errorf("gradcheck: NaN gradient (analytic %v, numeric %v)", analytic, numeric)
	}
	if res.MaxAbsDiff > tol {
		i := worst(analytic, numeric)
		return res, errors.Errorf("gradcheck: input %d: analytic %g, numeric %g (max diff %g > tol %g)",
			i, analytic[i], numeric[i], res.MaxAbsDiff, tol)
	}
	return res, nil
}

// Analytic returns the gradient of f at the given point computed by Backward.
func Analytic(f Func, at []float64) []float64 {
	xs := autodiff.Values(at...)
	autodiff.Backward(f(xs))

	grads := make([]float64, len(xs))
	for i, x := range xs {
		grads[i] = x.Grad()
	}
	return grads
}

func worst(a, b []float64) int {
	idx, best := 0, -1.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > best {
			idx, best = i, d
		}
	}
	return idx
}
