// FILE: builder_test.go
package dfslog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("successful build returns configured manager", func(t *testing.T) {
		mgr, err := NewBuilder().
			LevelString("warn").
			Components("rpc,filehandle").
			Sink("capture").
			ShowTimestamp(false).
			ShowGoroutine(false).
			Build()

		require.NoError(t, err, "Builder.Build() should not return an error on valid config")
		require.NotNil(t, mgr, "Builder.Build() should return a non-nil manager")

		cfg := mgr.GetConfig()
		assert.Equal(t, "warn", cfg.Level)
		assert.Equal(t, "rpc,filehandle", cfg.Components)
		assert.Equal(t, "capture", cfg.Sink)
		assert.False(t, cfg.ShowTimestamp)
		assert.False(t, cfg.ShowGoroutine)

		// The built filter state is live
		assert.True(t, mgr.ShouldLog(LevelError, ComponentRPC))
		assert.False(t, mgr.ShouldLog(LevelInfo, ComponentRPC))
		assert.False(t, mgr.ShouldLog(LevelError, ComponentFileSystem))
	})

	t.Run("typed level setter", func(t *testing.T) {
		mgr, err := NewBuilder().
			Level(LevelError).
			Sink("capture").
			Build()

		require.NoError(t, err)
		assert.True(t, mgr.ShouldLog(LevelError, ComponentUnknown))
		assert.False(t, mgr.ShouldLog(LevelWarn, ComponentUnknown))
	})

	t.Run("builder error accumulation", func(t *testing.T) {
		mgr, err := NewBuilder().
			LevelString("invalid-level-string").
			Components("rpc"). // This should not be evaluated
			Build()

		require.Error(t, err, "Build should fail with an invalid level string")
		assert.Contains(t, err.Error(), "invalid level string")
		assert.Nil(t, mgr, "A nil manager should be returned on build error")
	})

	t.Run("first error wins", func(t *testing.T) {
		_, err := NewBuilder().
			Components("warp-drive").
			LevelString("also-bad").
			Build()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid component string")
	})

	t.Run("apply config validation error", func(t *testing.T) {
		mgr, err := NewBuilder().
			Sink("syslog"). // Not validated until Build -> ApplyConfig
			Build()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid sink")
		assert.Nil(t, mgr)
	})
}
