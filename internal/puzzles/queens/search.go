package queens

import (
	"context"
	"sync"
	"sync/atomic"
)

// FindSolutions searches for up to max attack-free placements of n queens,
// partitioning the search across one worker per first-column row. The search
// stops when max solutions are collected, the context is cancelled, or the
// space is exhausted. An empty result after a timeout means no solutions
// were discovered in time, not that none exist.
func FindSolutions(ctx context.Context, n, max int) [][]int {
	if n <= 0 || max <= 0 {
		return nil
	}

	var (
		mu      sync.Mutex
		found   [][]int
		stopped atomic.Bool
		wg      sync.WaitGroup
	)

	collect := func(rows []int) {
		mu.Lock()
		defer mu.Unlock()
		if len(found) >= max {
			stopped.Store(true)
			return
		}
		found = append(found, append([]int(nil), rows...))
		if len(found) >= max {
			stopped.Store(true)
		}
	}

	for r0 := 0; r0 < n; r0++ {
		wg.Add(1)
		go func(firstRow int) {
			defer wg.Done()
			rows := make([]int, n)
			rows[0] = firstRow
			var rec func(col int)
			rec = func(col int) {
				if stopped.Load() || ctx.Err() != nil {
					return
				}
				if col == n {
					collect(rows)
					return
				}
				for row := 0; row < n; row++ {
					if safe(rows, col, row) {
						rows[col] = row
						rec(col + 1)
					}
				}
			}
			rec(1)
		}(r0)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		stopped.Store(true)
		<-done
	}

	mu.Lock()
	defer mu.Unlock()
	if len(found) > max {
		found = found[:max]
	}
	return found
}
