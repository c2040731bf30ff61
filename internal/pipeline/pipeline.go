// Package pipeline drives the ordered, bounded-concurrency batch fetch
// that is the core of the streaming engine. The central trick —
// maintain a bounded channel of "futures" (closures that block on a
// per-task result channel) and drain it in submission order from a
// single consumer goroutine — is the same one
// github.com/transparency-dev/tessera's client.EntryBundles uses to
// turn an unbounded worker pool into an ordered stream; this package
// adapts it from per-bundle fetches to per-batch fetches of exactly
// `batch` entries, and replaces its iter.Seq2 surface with a plain
// handler callback since the streaming façade here is synchronous.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"ctstream.dev/internal/endpoint"
	"ctstream.dev/internal/model"
	"ctstream.dev/internal/retry"
)

// TaskError wraps a recovered panic from a pipeline worker goroutine —
// spec.md §7's TaskError variant ("a spawned task panicked or was
// aborted abnormally"). Go has no built-in notion of task abortion, so
// this package's contribution to that variant is turning a panicking
// fetch into a terminal error instead of crashing the process.
type TaskError struct {
	Value any
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("pipeline: worker panic: %v", e.Value)
}

// Config is the subset of the public StreamConfig the pipeline needs,
// already normalized (positive Workers/Batch, Timeout applied).
type Config struct {
	Workers  int
	Batch    int
	Index    uint64
	HasIndex bool
	Timeout  time.Duration
}

// Handler is invoked once per delivered entry, in strictly ascending
// index order. Returning false requests the stream stop; the pipeline
// then abandons any in-flight fetches and returns nil.
type Handler func(model.Entry) bool

// batchResult is one fully-collected batch, or a terminal error.
type batchResult struct {
	entries []model.Entry
	err     error
}

// Run discovers the log's current size, computes the effective start
// position, and streams batches of cfg.Batch entries to handler in
// ascending order until handler returns false or a terminal error
// occurs.
func Run(ctx context.Context, cfg Config, client *endpoint.Client, handler Handler) error {
	treeSize, err := retry.Do(ctx, cfg.Timeout, client.GetLogSize)
	if err != nil {
		return err
	}

	position := treeSize
	if cfg.HasIndex {
		position = cfg.Index
		if position > treeSize {
			position = treeSize
		}
	}

	// dispatchCtx is cancelled the moment the consumer loop below exits
	// for any reason (handler stop, terminal error, or the caller's own
	// ctx being done), so abandoned in-flight fetches and their retry
	// sleeps unwind immediately instead of leaking.
	dispatchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// futures is the bounded channel of in-order, not-yet-resolved
	// batch fetches; its capacity is the concurrency ceiling.
	futures := make(chan func() batchResult, cfg.Workers)
	go dispatch(dispatchCtx, cfg, client, position, futures)

	for f := range futures {
		result := f()
		if result.err != nil {
			return result.err
		}
		for _, entry := range result.entries {
			if !handler(entry) {
				return nil
			}
		}
	}
	return ctx.Err()
}

// dispatch emits one future per batch start (position, position+batch,
// position+2*batch, …), bounding in-flight fetches to cfg.Workers via
// a token semaphore, and stops as soon as ctx is cancelled.
func dispatch(ctx context.Context, cfg Config, client *endpoint.Client, position uint64, futures chan<- func() batchResult) {
	defer close(futures)

	tokens := make(chan struct{}, cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		tokens <- struct{}{}
	}

	batch := uint64(cfg.Batch)
	for start := position; ; start += batch {
		select {
		case <-ctx.Done():
			return
		case <-tokens:
		}

		resultCh := make(chan batchResult, 1)
		go func(start uint64) {
			defer func() {
				if r := recover(); r != nil {
					resultCh <- batchResult{err: &TaskError{Value: r}}
				}
			}()
			entries, err := fetchBatch(ctx, cfg, client, start)
			resultCh <- batchResult{entries: entries, err: err}
		}(start)

		// future blocks on this batch's own result channel and returns
		// its token to the pool only once the consumer actually reads
		// it — so a worker slot is freed on yield, not on completion,
		// keeping at most cfg.Workers fetches in flight as required by
		// the ordering/concurrency invariant.
		future := func() batchResult {
			r := <-resultCh
			tokens <- struct{}{}
			return r
		}

		select {
		case futures <- future:
		case <-ctx.Done():
			return
		}
	}
}

// fetchBatch accumulates entries starting at start until exactly
// cfg.Batch have been collected, per spec.md §4.D step 4: a short read
// is not an error, it is stitched by looping; an empty read is already
// retried inside retry.DoTreatingEmptyAsUnhandled.
func fetchBatch(ctx context.Context, cfg Config, client *endpoint.Client, start uint64) ([]model.Entry, error) {
	collected := make([]model.Entry, 0, cfg.Batch)

	for len(collected) < cfg.Batch {
		remaining := uint64(cfg.Batch - len(collected))
		next := start + uint64(len(collected))

		entries, err := retry.DoTreatingEmptyAsUnhandled(
			ctx,
			cfg.Timeout,
			func(ctx context.Context) (endpoint.Response[[]model.Entry], error) {
				return client.GetLogEntries(ctx, next, remaining)
			},
			func(v []model.Entry) bool { return len(v) == 0 },
		)
		if err != nil {
			return nil, err
		}
		collected = append(collected, entries...)
	}

	return collected, nil
}
