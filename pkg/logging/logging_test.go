package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	previous := Logger
	t.Cleanup(func() {
		Logger = previous
		zap.ReplaceGlobals(zap.NewNop())
	})

	require.NoError(t, Setup(false, "flattenrepo", "test"))
	assert.False(t, Logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, Logger.Core().Enabled(zap.WarnLevel))

	require.NoError(t, Setup(true, "flattenrepo", "test"))
	assert.True(t, Logger.Core().Enabled(zap.DebugLevel))
	assert.Same(t, Logger, zap.L())
}

func TestNewConfig(t *testing.T) {
	cfg := newConfig(false, false)
	assert.True(t, cfg.DisableStacktrace)
	assert.Equal(t, zap.WarnLevel, cfg.Level.Level())
	assert.Equal(t, "json", cfg.Encoding)

	cfg = newConfig(true, true)
	assert.False(t, cfg.DisableStacktrace)
	assert.Equal(t, zap.DebugLevel, cfg.Level.Level())
	assert.Equal(t, "console", cfg.Encoding)
}
