// Package parallel runs independent per-sample work across goroutines.
//
// Forward passes over different samples share parameter nodes only for
// reading, so they may run concurrently. Backward passes accumulate into
// shared gradients and must stay on a single goroutine.
package parallel

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4, // Each item builds a whole graph.
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < max(cfg.MinChunkSize, 2) {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// Sum returns f(0) + ... + f(n-1). The terms are added in index order, so
// the result does not depend on scheduling.
func Sum(n int, f func(i int) float64, cfg Config) float64 {
	terms := make([]float64, n)
	For(n, func(i int) {
		terms[i] = f(i)
	}, cfg)
	return floats.Sum(terms)
}
