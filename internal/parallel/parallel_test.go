package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	var counter int64
	seen := make([]int32, 1000)

	For(len(seen), func(i int) {
		atomic.AddInt64(&counter, 1)
		atomic.AddInt32(&seen[i], 1)
	}, cfg)

	assert.Equal(t, int64(len(seen)), counter)
	for i, s := range seen {
		assert.Equal(t, int32(1), s, "index %d", i)
	}
}

func TestFor_Sequential(t *testing.T) {
	var order []int
	For(5, func(i int) {
		order = append(order, i)
	}, Config{})

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units fall back to sequential.
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 2

	var order []int
	For(cfg.MinChunkSize-1, func(i int) {
		order = append(order, i)
	}, cfg)

	assert.Len(t, order, cfg.MinChunkSize-1)
}

func TestFor_Empty(t *testing.T) {
	For(0, func(int) { t.Fatal("called") }, DefaultConfig())
}

func TestSum(t *testing.T) {
	f := func(i int) float64 { return 1 / float64(i+1) }

	seq := Sum(500, f, Config{})
	par := Sum(500, f, Config{Enabled: true, NumWorkers: 8, MinChunkSize: 1})

	assert.Equal(t, seq, par)
	assert.InDelta(t, 6.79282342999052, seq, 1e-9)
	assert.Zero(t, Sum(0, f, DefaultConfig()))
}

func BenchmarkSum(b *testing.B) {
	f := func(i int) float64 { return float64(i) }
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		cfg := DefaultConfig()
		for i := 0; i < b.N; i++ {
			_ = Sum(n, f, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Sum(n, f, Config{})
		}
	})
}
