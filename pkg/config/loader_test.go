package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingokit/pkg/config"
)

type testConfig struct {
	Token   string        `env:"LINGOKIT_TEST_TOKEN"`
	Timeout time.Duration `env:"LINGOKIT_TEST_TIMEOUT" envDefault:"5s"`
	Rows    int           `env:"LINGOKIT_TEST_ROWS" envDefault:"3"`
}

func TestLoad(t *testing.T) {
	// Not parallel: manipulates the process environment.

	t.Run("defaults applied", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Empty(t, cfg.Token)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, 3, cfg.Rows)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("LINGOKIT_TEST_TOKEN", "secret")
		t.Setenv("LINGOKIT_TEST_TIMEOUT", "250ms")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "secret", cfg.Token)
		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("invalid value reported", func(t *testing.T) {
		t.Setenv("LINGOKIT_TEST_ROWS", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on bad environment", func(t *testing.T) {
		t.Setenv("LINGOKIT_TEST_ROWS", "nope")
		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
