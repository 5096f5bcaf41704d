package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"misinfotracker/internal/config"
)

func TestNewHonorsLevel(t *testing.T) {
	cfg := config.FromEnv()
	cfg.Environment = "production"
	cfg.Log.Level = "warn"

	logger, err := New(cfg)
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewDevelopment(t *testing.T) {
	cfg := config.FromEnv()
	cfg.Environment = "development"
	cfg.Log.Level = "debug"

	logger, err := New(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	cfg := config.FromEnv()
	cfg.Log.Level = "chatty"

	_, err := New(cfg)
	assert.Error(t, err)
}
