package usecase

import (
	"context"
	"sync"
	"time"
)

// BatchProcess drives bounded-concurrency fan-out over items: consecutive
// groups of batchSize run concurrently, the next group starts only after the
// previous one finished, and groups are separated by delay to respect
// upstream rate limits. Surviving results keep the input order; items whose
// compute reports !ok (or panics) are dropped without affecting siblings.
func BatchProcess[T, R any](ctx context.Context, items []T, batchSize int, delay time.Duration, compute func(context.Context, T) (R, bool)) []R {
	if batchSize <= 0 {
		batchSize = 1
	}

	results := make([]R, 0, len(items))

	for start := 0; start < len(items); start += batchSize {
		end := start + batchSize
		if end > len(items) {
			end = len(items)
		}
		group := items[start:end]

		out := make([]R, len(group))
		ok := make([]bool, len(group))

		var wg sync.WaitGroup
		wg.Add(len(group))
		for i, item := range group {
			go func(i int, item T) {
				defer wg.Done()
				// a panic in one compute must not abort its siblings
				defer func() {
					if r := recover(); r != nil {
						ok[i] = false
					}
				}()
				out[i], ok[i] = compute(ctx, item)
			}(i, item)
		}
		wg.Wait()

		for i := range group {
			if ok[i] {
				results = append(results, out[i])
			}
		}

		if end < len(items) && delay > 0 {
			select {
			case <-ctx.Done():
				return results
			case <-time.After(delay):
			}
		}
	}

	return results
}
