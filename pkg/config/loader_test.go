package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgekit/edgekit/pkg/config"
)

type testConfig struct {
	Secret string        `env:"TEST_LOADER_SECRET,required"`
	Name   string        `env:"TEST_LOADER_NAME" envDefault:"auth_token"`
	TTL    time.Duration `env:"TEST_LOADER_TTL" envDefault:"168h"`
}

type missingConfig struct {
	Value string `env:"TEST_LOADER_DEFINITELY_UNSET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("reads tagged fields with defaults", func(t *testing.T) {
		t.Setenv("TEST_LOADER_SECRET", "s3cret")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "s3cret", cfg.Secret)
		assert.Equal(t, "auth_token", cfg.Name)
		assert.Equal(t, 168*time.Hour, cfg.TTL)
	})

	t.Run("caches per type", func(t *testing.T) {
		t.Setenv("TEST_LOADER_SECRET", "changed-after-first-load")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		// First successful load wins for the lifetime of the process.
		assert.Equal(t, "s3cret", cfg.Secret)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg missingConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		require.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required variable", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg missingConfig
			config.MustLoad(&cfg)
		})
	})
}
