package nn

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Initializer draws initial parameter values.
type Initializer func() float64

// Xavier (Glorot) initialization for weights.
//
// Draws values from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// This initialization helps maintain variance of activations across layers.
// A nil src uses the global random source.
func Xavier(fanIn, fanOut int, src rand.Source) Initializer {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	d := distuv.Uniform{Min: -bound, Max: bound, Src: src}
	return d.Rand
}

// Normal draws values from N(0, std²).
func Normal(std float64, src rand.Source) Initializer {
	d := distuv.Normal{Mu: 0, Sigma: std, Src: src}
	return d.Rand
}

// Constant always returns c. Used for bias initialization.
func Constant(c float64) Initializer {
	return func() float64 { return c }
}
