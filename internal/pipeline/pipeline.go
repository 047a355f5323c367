// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"iter"
	"sync"
)

// Config controls the evaluation pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// ForEach fans jobs out to cfg.Threads workers running work, and hands kept
// results to visit from a single collector goroutine (visit need not be
// goroutine-safe). Result order is not preserved. It returns the first error
// from work or visit, or the context error on cancellation.
func ForEach[J, R any](
	ctx context.Context,
	cfg Config,
	jobs iter.Seq[J],
	work func(J) (keep bool, out R, err error),
	visit func(R) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobCh := make(chan J, cfg.Threads*2)
	results := make(chan R, cfg.Threads*2)

	var (
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobCh:
					if !ok {
						return
					}
					keep, out, err := work(j)
					if err != nil {
						fail(err)
						return
					}
					if !keep {
						continue
					}
					select {
					case results <- out:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if ctx.Err() != nil {
				continue
			}
			if err := visit(r); err != nil {
				fail(err)
			}
		}
	}()

	// Feed work
	for j := range jobs {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
		case jobCh <- j:
		}
	}

	close(jobCh)
	wg.Wait()
	close(results)
	cwg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
