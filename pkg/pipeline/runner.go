package pipeline

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pkg.jsn.cam/fanreduce/pkg/fanreduce"
)

// WorkItem is one unit of map work.
type WorkItem[I any] struct {
	ID    string
	Input I
}

// MapFunc computes the output for a single work item.
type MapFunc[I, T any] func(ctx context.Context, input I) (T, error)

// Config holds pipeline runner configuration.
type Config struct {
	MaxConcurrency int           // max concurrent map executions (default 4)
	ItemTimeout    time.Duration // per-attempt timeout (0 = none)
	MaxRetries     int           // extra attempts per item after the first (default 0)
	OnProgress     func(done, total int)
}

// Run executes mapFn over every work item with bounded concurrency,
// records one outcome per item, then invokes the reducer exactly once
// over the full outcome list.
//
// Map errors are captured as failed outcomes and never cancel other
// items. Context cancellation fails the items that have not started
// yet; the reduction still runs over whatever the phase produced.
func Run[I, T, R any](ctx context.Context, cfg Config, items []WorkItem[I], mapFn MapFunc[I, T], reducer fanreduce.Reducer[T, R]) (fanreduce.Merged[R], fanreduce.PhaseContext, error) {
	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = 4
	}

	executionID := uuid.New().String()
	start := time.Now()

	log.Printf("[PIPELINE] Execution %s: mapping %d items (concurrency %d)",
		executionID, len(items), maxConcurrency)

	outcomes := make([]fanreduce.Outcome[T], len(items))

	var progressMu sync.Mutex
	completed := 0
	reportProgress := func() {
		if cfg.OnProgress == nil {
			return
		}
		progressMu.Lock()
		completed++
		cfg.OnProgress(completed, len(items))
		progressMu.Unlock()
	}

	var g errgroup.Group
	g.SetLimit(maxConcurrency)

	for i, item := range items {
		g.Go(func() error {
			itemStart := time.Now()
			outcome := fanreduce.Outcome[T]{WorkItemID: item.ID}

			if ctx.Err() != nil {
				log.Printf("[PIPELINE] Work item %s skipped: %v", item.ID, ctx.Err())
			} else if output, err := runItem(ctx, cfg, item.Input, mapFn); err != nil {
				log.Printf("[PIPELINE] Work item %s failed: %v", item.ID, err)
			} else {
				outcome.Success = true
				outcome.Output = output
			}

			outcome.ExecutionTime = time.Since(itemStart)
			outcomes[i] = outcome
			reportProgress()
			// Failures live in the outcome record, not the group error.
			return nil
		})
	}
	g.Wait()

	pc := fanreduce.PhaseContext{
		ExecutionID:  executionID,
		MapPhaseTime: time.Since(start),
	}
	for _, outcome := range outcomes {
		if outcome.Success {
			pc.SuccessfulMaps++
		} else {
			pc.FailedMaps++
		}
	}

	log.Printf("[PIPELINE] Execution %s: map phase done in %v (%d ok, %d failed)",
		executionID, pc.MapPhaseTime.Round(time.Millisecond), pc.SuccessfulMaps, pc.FailedMaps)

	merged, err := reducer.Reduce(outcomes, pc)
	return merged, pc, err
}

// runItem executes one map attempt per allowed retry until one
// succeeds or the parent context dies.
func runItem[I, T any](ctx context.Context, cfg Config, input I, mapFn MapFunc[I, T]) (T, error) {
	var output T
	var err error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		attemptCtx := ctx
		var cancel context.CancelFunc
		if cfg.ItemTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, cfg.ItemTimeout)
		}
		output, err = mapFn(attemptCtx, input)
		if cancel != nil {
			cancel()
		}
		if err == nil || ctx.Err() != nil {
			return output, err
		}
	}
	return output, err
}
