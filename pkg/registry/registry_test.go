package registry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingokit/pkg/registry"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	key := registry.ChannelKey{Network: "libera", Channel: "#go-nuts"}
	pair := registry.LanguagePair{Source: "en", Target: "de"}

	t.Run("activate lookup deactivate round trip", func(t *testing.T) {
		t.Parallel()
		r := registry.New()

		_, ok := r.Lookup(key)
		require.False(t, ok)

		r.Activate(key, pair)
		got, ok := r.Lookup(key)
		require.True(t, ok)
		assert.Equal(t, pair, got)

		assert.True(t, r.Deactivate(key))
		_, ok = r.Lookup(key)
		assert.False(t, ok)
	})

	t.Run("reactivation overwrites", func(t *testing.T) {
		t.Parallel()
		r := registry.New()
		r.Activate(key, pair)
		second := registry.LanguagePair{Source: "en", Target: "fr"}
		r.Activate(key, second)

		got, ok := r.Lookup(key)
		require.True(t, ok)
		assert.Equal(t, second, got)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("deactivate absent key is a no-op", func(t *testing.T) {
		t.Parallel()
		r := registry.New()
		assert.False(t, r.Deactivate(key))
		assert.Equal(t, 0, r.Len())
	})

	t.Run("keys are exact match", func(t *testing.T) {
		t.Parallel()
		r := registry.New()
		r.Activate(key, pair)

		_, ok := r.Lookup(registry.ChannelKey{Network: "libera", Channel: "#GO-NUTS"})
		assert.False(t, ok, "channel names must not be case-folded")
	})

	t.Run("deactivate network removes only that network", func(t *testing.T) {
		t.Parallel()
		r := registry.New()
		r.Activate(registry.ChannelKey{Network: "libera", Channel: "#a"}, pair)
		r.Activate(registry.ChannelKey{Network: "libera", Channel: "#b"}, pair)
		r.Activate(registry.ChannelKey{Network: "oftc", Channel: "#a"}, pair)

		assert.Equal(t, 2, r.DeactivateNetwork("libera"))
		assert.Equal(t, 1, r.Len())
		_, ok := r.Lookup(registry.ChannelKey{Network: "oftc", Channel: "#a"})
		assert.True(t, ok)
	})
}

func TestLanguagePairReversed(t *testing.T) {
	t.Parallel()

	p := registry.LanguagePair{Source: "en", Target: "de"}
	assert.Equal(t, registry.LanguagePair{Source: "de", Target: "en"}, p.Reversed())
	assert.Equal(t, p, p.Reversed().Reversed())
}

func TestRegistryConcurrent(t *testing.T) {
	t.Parallel()

	r := registry.New()
	var wg sync.WaitGroup

	// Writers and readers hammering distinct and shared keys must leave the
	// registry consistent: no lost updates, no panics under the race detector.
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := registry.ChannelKey{Network: "net", Channel: fmt.Sprintf("#%d", i%4)}
			for j := 0; j < 100; j++ {
				r.Activate(key, registry.LanguagePair{Source: "en", Target: "de"})
				r.Lookup(key)
				if j%10 == 9 {
					r.Deactivate(key)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, r.Len(), 4)
	for i := 0; i < 4; i++ {
		key := registry.ChannelKey{Network: "net", Channel: fmt.Sprintf("#%d", i)}
		if pair, ok := r.Lookup(key); ok {
			assert.Equal(t, registry.LanguagePair{Source: "en", Target: "de"}, pair)
		}
	}
}
