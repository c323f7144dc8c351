package dispatch

import (
	"context"
	"sync"
)

// ControlQueue is an unbounded FIFO of continuations flowing from worker
// goroutines back to the control goroutine. Post may be called from any
// goroutine; Drain and Run must only be called from the control goroutine,
// which is what confines the continuations to it.
type ControlQueue struct {
	mu   sync.Mutex
	fns  []func()
	wake chan struct{}
}

// NewControlQueue creates an empty queue.
func NewControlQueue() *ControlQueue {
	return &ControlQueue{wake: make(chan struct{}, 1)}
}

// Post enqueues fn for execution on the control goroutine. It never blocks.
func (q *ControlQueue) Post(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.fns = append(q.fns, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Drain runs every continuation currently enqueued, in posting order, and
// returns how many ran. Continuations posted while draining are picked up
// by the next call.
func (q *ControlQueue) Drain() int {
	q.mu.Lock()
	batch := q.fns
	q.fns = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Run drains the queue whenever work arrives, until ctx is cancelled. It is
// the control loop for embeddings that dedicate a goroutine to the plugin;
// hosts with their own idle hook can call Drain from it instead.
func (q *ControlQueue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-q.wake:
			q.Drain()
		}
	}
}

// Len reports the number of pending continuations.
func (q *ControlQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.fns)
}
