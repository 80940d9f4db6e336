// Package search runs CLI-level parallel scans over the sequential
// number-theory core. The core functions stay pure and
// single-threaded; only the fan-out over independent inputs lives
// here.
package search

import (
	"context"
	"runtime"

	"github.com/eternal-math/eternal/internal/numtheory"
	"golang.org/x/sync/errgroup"
)

// PerfectNumbers finds every perfect number in [1, limit], ascending.
// The range is split into equal chunks scanned concurrently; workers
// <= 0 means one worker per CPU.
func PerfectNumbers(ctx context.Context, limit, workers int) ([]int, error) {
	if limit < 1 {
		return []int{}, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > limit {
		workers = limit
	}

	found := make([][]int, workers)
	chunk := (limit + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w*chunk + 1
		hi := lo + chunk - 1
		if hi > limit {
			hi = limit
		}
		if lo > hi {
			continue
		}
		g.Go(func() error {
			var local []int
			for n := lo; n <= hi; n++ {
				if n%1024 == 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
				}
				if numtheory.IsPerfect(n) {
					local = append(local, n)
				}
			}
			found[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Chunks are range-ordered, so concatenation keeps ascending order.
	var out []int
	for _, local := range found {
		out = append(out, local...)
	}
	if out == nil {
		out = []int{}
	}
	return out, nil
}
