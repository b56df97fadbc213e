package radix

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FillParallel calls FindOrCreate for every key, spreading the keys over
// the given number of goroutines. It stops at the first error or when ctx is
// done and returns that error.
func FillParallel[K Key, V any](ctx context.Context, t Tree[K, V], keys []K, create CreateFunc[K, V], workers int) error {
	if workers < 1 {
		workers = 1
	}
	if workers > len(keys) {
		workers = len(keys)
	}

	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := w; i < len(keys); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if _, err := t.FindOrCreate(keys[i], create); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
