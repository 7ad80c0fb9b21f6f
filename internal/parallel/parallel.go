// Package parallel provides chunked execution over flat element
// ranges for array evaluation.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls chunked execution behavior.
type Config struct {
	Enabled      bool // Whether chunked execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum elements per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096, // Elementwise work is cheap; keep chunks coarse.
	}
}

// ForRange executes f over disjoint subranges covering [0, n).
// Falls back to a single sequential call if chunking is disabled or
// n is too small to split.
func ForRange(n int, f func(start, end int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < 2*cfg.MinChunkSize {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
