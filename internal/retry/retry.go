// Package retry converts an endpoint call's tri-valued outcome into
// an eventual success or a terminal error. It is the same loop for
// every endpoint operation: callers parameterize it with the
// operation itself rather than duplicating the loop.
package retry

import (
	"context"
	"time"

	"ctstream.dev/internal/endpoint"
)

// EmptyChecker reports whether a successful Data payload should be
// treated as an empty read — the extra rule get_log_entries
// needs (an empty entry sequence retries like Unhandled(400)) that
// get_log_size does not.
type EmptyChecker[T any] func(T) bool

// Do drives op to completion: on endpoint.OutcomeData it returns the
// payload, on endpoint.OutcomeLimited it sleeps the advertised (or
// configured default) delay and retries, on endpoint.OutcomeUnhandled
// with code 400 it sleeps timeout and retries, and on any other
// unhandled code it retries immediately. Any error from op is
// terminal and propagates unchanged. There is no retry cap; ctx
// cancellation is the only bound on how long Do may run.
func Do[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (endpoint.Response[T], error)) (T, error) {
	return doWithEmptyCheck(ctx, timeout, op, nil)
}

// DoTreatingEmptyAsUnhandled behaves like Do, but additionally treats
// a Data payload for which isEmpty reports true as an Unhandled(400)
// outcome — the rule spec.md §4.C adds specifically for
// get_log_entries, so a fetch that returned zero entries with a 200
// still backs off and retries rather than returning an empty batch.
func DoTreatingEmptyAsUnhandled[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (endpoint.Response[T], error), isEmpty EmptyChecker[T]) (T, error) {
	return doWithEmptyCheck(ctx, timeout, op, isEmpty)
}

func doWithEmptyCheck[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (endpoint.Response[T], error), isEmpty EmptyChecker[T]) (T, error) {
	for {
		resp, err := op(ctx)
		if err != nil {
			var zero T
			return zero, err
		}

		switch resp.Outcome {
		case endpoint.OutcomeData:
			if isEmpty != nil && isEmpty(resp.Data) {
				if err := sleep(ctx, timeout); err != nil {
					var zero T
					return zero, err
				}
				continue
			}
			return resp.Data, nil

		case endpoint.OutcomeLimited:
			delay := timeout
			if resp.RetryAfter != nil {
				delay = time.Duration(*resp.RetryAfter * float64(time.Second))
			}
			if err := sleep(ctx, delay); err != nil {
				var zero T
				return zero, err
			}

		case endpoint.OutcomeUnhandled:
			if resp.Code == 400 {
				if err := sleep(ctx, timeout); err != nil {
					var zero T
					return zero, err
				}
			}
			// any other unhandled code: retry immediately, no sleep.

		default:
			var zero T
			return zero, nil
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
