package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingokit/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns result", func(t *testing.T) {
		t.Parallel()
		fut := async.Async(ctx, 21, func(_ context.Context, v int) (int, error) {
			return v * 2, nil
		})
		res, err := fut.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, res)
		assert.True(t, fut.IsComplete())
	})

	t.Run("propagates error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		fut := async.Async(ctx, "x", func(context.Context, string) (string, error) {
			return "", boom
		})
		_, err := fut.Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("pre-cancelled context skips the function", func(t *testing.T) {
		t.Parallel()
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		ran := false
		fut := async.Async(cancelled, 0, func(context.Context, int) (int, error) {
			ran = true
			return 0, nil
		})
		_, err := fut.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, ran)
	})

	t.Run("await with timeout expires", func(t *testing.T) {
		t.Parallel()
		block := make(chan struct{})
		fut := async.Async(ctx, 0, func(context.Context, int) (int, error) {
			<-block
			return 1, nil
		})
		_, err := fut.AwaitWithTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)

		close(block)
		res, err := fut.Await()
		require.NoError(t, err)
		assert.Equal(t, 1, res)
	})

	t.Run("done channel closes on completion", func(t *testing.T) {
		t.Parallel()
		fut := async.Async(ctx, 0, func(context.Context, int) (int, error) {
			return 0, nil
		})
		select {
		case <-fut.Done():
		case <-time.After(time.Second):
			t.Fatal("future never completed")
		}
	})
}

func TestWaitAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mk := func(v int, err error) *async.Future[int] {
		return async.Async(ctx, v, func(_ context.Context, v int) (int, error) {
			return v, err
		})
	}

	t.Run("collects results in order", func(t *testing.T) {
		t.Parallel()
		res, err := async.WaitAll(mk(1, nil), mk(2, nil), mk(3, nil))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, res)
	})

	t.Run("reports first error but still collects all", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		res, err := async.WaitAll(mk(1, nil), mk(0, boom), mk(3, nil))
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []int{1, 0, 3}, res)
	})
}
