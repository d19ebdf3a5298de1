package mapping

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// BatchOptions tunes one batch run. Zero values mean NumCPU workers and
// no progress reporting.
type BatchOptions struct {
	Workers int

	// Progress, when set, is called after each mapped row with the
	// running count. Calls arrive from worker goroutines.
	Progress func(done, total int)
}

// BatchResult is one batch run's output: results in input order plus
// the aggregate summary.
type BatchResult struct {
	JobID   string      `json:"job_id"`
	Results []RowResult `json:"results"`
	Summary Summary     `json:"summary"`
}

// MapBatch fans the studies out over a worker pool. The tables are
// immutable, so rows need no locking; each worker writes only its own
// result slots and results keep input order. A canceled context stops
// feeding rows and returns the context error.
func (e *Engine) MapBatch(ctx context.Context, studies []Study, opts BatchOptions) (BatchResult, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(studies) {
		workers = len(studies)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]RowResult, len(studies))
	var done atomic.Int64

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = e.MapStudy(ctx, studies[i])
				n := int(done.Add(1))
				if opts.Progress != nil {
					opts.Progress(n, len(studies))
				}
			}
		}()
	}

feed:
	for i := range studies {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return BatchResult{}, err
	}
	return BatchResult{
		JobID:   uuid.New().String(),
		Results: results,
		Summary: Summarize(results),
	}, nil
}
