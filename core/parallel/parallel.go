// Package parallel provides chunked loop parallelism for the statevector
// amplitude hot loops.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits items across up to NumCPU workers and calls fn with
// the half-open index range each worker owns. It returns once every worker
// has finished.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}
	workers := runtime.NumCPU()
	if workers > items {
		workers = items
	}
	// Ceiling division so the last chunk absorbs the remainder.
	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunk {
		end := min(start+chunk, items)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially over the whole range when
// items does not exceed threshold. Goroutine overhead dwarfs the per-item
// work on small statevectors.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
