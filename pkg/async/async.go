package async

import (
	"context"
	"time"
)

// Future is the eventual result of a computation started with Async.
type Future[U any] struct {
	done   chan struct{}
	result U
	err    error
}

// Async runs fn on a new goroutine and returns a Future completed with its
// result. A context that is cancelled before the goroutine starts short-
// circuits the call; cancellation during fn is fn's own responsibility.
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Await blocks until the computation finishes and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout is like Await but gives up after d, returning ErrTimeout.
// The underlying goroutine keeps running; only the wait is abandoned.
func (f *Future[U]) AwaitWithTimeout(d time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(d):
		var zero U
		return zero, ErrTimeout
	}
}

// Done returns a channel closed when the computation completes. Useful in
// select loops.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports completion without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// WaitAll awaits every future in order and returns their results plus the
// first error encountered, if any.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	var firstErr error
	for i, f := range futures {
		res, err := f.Await()
		results[i] = res
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return results, firstErr
}
