package book

import (
	"context"
	"time"
)

// Outcome carries a deferred query result.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Deferred runs fn after a fixed delay and delivers its result on the
// returned channel. It is the non-blocking calling convention over the same
// query logic as the direct methods; the delay emulates slow I/O and never
// changes results or error semantics. If the context is cancelled before
// the delay elapses, the outcome carries the context error.
func Deferred[T any](ctx context.Context, delay time.Duration, fn func(context.Context) (T, error)) <-chan Outcome[T] {
	out := make(chan Outcome[T], 1)
	go func() {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			var zero T
			out <- Outcome[T]{Value: zero, Err: ctx.Err()}
			return
		}

		v, err := fn(ctx)
		out <- Outcome[T]{Value: v, Err: err}
	}()
	return out
}
