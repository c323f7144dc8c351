package dispatch_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingokit/pkg/dispatch"
)

func TestControlQueue(t *testing.T) {
	t.Parallel()

	t.Run("drains in posting order", func(t *testing.T) {
		t.Parallel()
		q := dispatch.NewControlQueue()

		var order []int
		q.Post(func() { order = append(order, 1) })
		q.Post(func() { order = append(order, 2) })
		q.Post(func() { order = append(order, 3) })

		assert.Equal(t, 3, q.Len())
		assert.Equal(t, 3, q.Drain())
		assert.Equal(t, []int{1, 2, 3}, order)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("nil continuations ignored", func(t *testing.T) {
		t.Parallel()
		q := dispatch.NewControlQueue()
		q.Post(nil)
		assert.Equal(t, 0, q.Len())
		assert.Equal(t, 0, q.Drain())
	})

	t.Run("continuations posted while draining run next time", func(t *testing.T) {
		t.Parallel()
		q := dispatch.NewControlQueue()

		var ran []string
		q.Post(func() {
			ran = append(ran, "first")
			q.Post(func() { ran = append(ran, "second") })
		})

		assert.Equal(t, 1, q.Drain())
		assert.Equal(t, []string{"first"}, ran)
		assert.Equal(t, 1, q.Drain())
		assert.Equal(t, []string{"first", "second"}, ran)
	})

	t.Run("concurrent posts all run exactly once", func(t *testing.T) {
		t.Parallel()
		q := dispatch.NewControlQueue()

		const n = 100
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				q.Post(func() {})
			}()
		}
		wg.Wait()

		total := 0
		for total < n {
			ran := q.Drain()
			require.NotZero(t, ran, "queue lost continuations")
			total += ran
		}
		assert.Equal(t, n, total)
	})

	t.Run("run drains until cancelled", func(t *testing.T) {
		t.Parallel()
		q := dispatch.NewControlQueue()
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan struct{})
		go func() {
			q.Run(ctx)
			close(done)
		}()

		ran := make(chan struct{})
		q.Post(func() { close(ran) })

		select {
		case <-ran:
		case <-time.After(time.Second):
			t.Fatal("continuation never ran")
		}

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not stop on cancel")
		}
	})
}
