package memo_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingokit/pkg/memo"
)

func key(text string) memo.Key {
	return memo.Key{Source: "en", Target: "de", Text: text}
}

func TestCache(t *testing.T) {
	t.Parallel()

	t.Run("miss then hit", func(t *testing.T) {
		t.Parallel()
		c := memo.New(4)

		_, ok := c.Get(key("hello"))
		require.False(t, ok)

		c.Put(key("hello"), "hallo")
		got, ok := c.Get(key("hello"))
		require.True(t, ok)
		assert.Equal(t, "hallo", got)
	})

	t.Run("direction is part of the key", func(t *testing.T) {
		t.Parallel()
		c := memo.New(4)
		c.Put(memo.Key{Source: "en", Target: "de", Text: "hello"}, "hallo")

		_, ok := c.Get(memo.Key{Source: "de", Target: "en", Text: "hello"})
		assert.False(t, ok)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()
		c := memo.New(2)
		c.Put(key("a"), "A")
		c.Put(key("b"), "B")

		// Touch "a" so "b" is the eviction candidate.
		_, ok := c.Get(key("a"))
		require.True(t, ok)

		c.Put(key("c"), "C")
		assert.Equal(t, 2, c.Len())

		_, ok = c.Get(key("b"))
		assert.False(t, ok, "b should have been evicted")
		_, ok = c.Get(key("a"))
		assert.True(t, ok)
	})

	t.Run("put refreshes existing key", func(t *testing.T) {
		t.Parallel()
		c := memo.New(2)
		c.Put(key("a"), "old")
		c.Put(key("a"), "new")
		assert.Equal(t, 1, c.Len())

		got, ok := c.Get(key("a"))
		require.True(t, ok)
		assert.Equal(t, "new", got)
	})

	t.Run("non-positive capacity uses default", func(t *testing.T) {
		t.Parallel()
		c := memo.New(0)
		for i := 0; i < memo.DefaultCapacity+10; i++ {
			c.Put(key(fmt.Sprintf("msg-%d", i)), "x")
		}
		assert.Equal(t, memo.DefaultCapacity, c.Len())
	})
}

func TestCacheConcurrent(t *testing.T) {
	t.Parallel()

	c := memo.New(32)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				k := key(fmt.Sprintf("msg-%d", j%40))
				c.Put(k, "t")
				c.Get(k)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 32)
}
