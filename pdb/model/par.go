package model

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parEach calls fn on every atom from nWorker goroutines, each taking
// one contiguous block. The atoms must not change while this runs.
// nWorker < 1 means one per cpu. The first error from fn, or the
// cancellation of ctx, stops the remaining workers.
func parEach(ctx context.Context, atoms []Atom, nWorker int, fn func(int, Atom) error) error {
	if nWorker < 1 {
		nWorker = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(atoms) + nWorker - 1) / nWorker
	for lo := 0; lo < len(atoms); lo += chunk {
		hi := min(lo+chunk, len(atoms))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(i, atoms[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
