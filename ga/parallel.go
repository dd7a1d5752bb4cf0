package ga

import "github.com/sourcegraph/conc/pool"

// forChunks splits [0, total) into at most workers contiguous chunks and
// runs fn(worker, lo, hi) for each one on its own goroutine. worker is in
// [0..workers-1] and unique per call, so it may index per-worker state.
// All chunk errors are joined; a panic in fn is re-raised after the others
// finish.
//
// Complexity: O(workers) scheduling overhead on top of fn.
func forChunks(workers, total int, fn func(worker, lo, hi int) error) error {
	if total <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers == 1 || total == 1 {
		return fn(0, 0, total)
	}

	chunk := (total + workers - 1) / workers
	p := pool.New().WithErrors().WithMaxGoroutines(workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= total {
			break
		}
		hi := min(lo+chunk, total)
		p.Go(func() error { return fn(w, lo, hi) })
	}
	return p.Wait()
}
