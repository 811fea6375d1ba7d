package service

import (
	"context"
	"errors"
	"time"
)

// ErrChunkTimeout is returned by RunWithTimeout when the deadline elapses
// before the work function returns.
var ErrChunkTimeout = errors.New("chunk processing timed out")

// RunWithTimeout executes work against a wall-clock deadline. The work
// function runs in its own goroutine and races the deadline; whichever fires
// first determines the outcome. Errors from work propagate unchanged.
//
// A timed-out call is not forcibly killed: its context is canceled and its
// eventual result is discarded (the result channel is buffered, so the
// goroutine never blocks). The timer is always stopped before returning, so
// repeated calls leak nothing.
func RunWithTimeout[T any](ctx context.Context, timeout time.Duration, work func(context.Context) (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan outcome, 1)
	go func() {
		value, err := work(workCtx)
		results <- outcome{value: value, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var zero T
	select {
	case res := <-results:
		return res.value, res.err
	case <-timer.C:
		return zero, ErrChunkTimeout
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
