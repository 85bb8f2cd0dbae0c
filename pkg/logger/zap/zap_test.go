package zap

import (
	"testing"
	"time"

	"github.com/lintang-b-s/sidewalk-nav/pkg/logger/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	log, err := New(config.Configuration{Level: config.WARN_LEVEL, TimeFormat: time.RFC3339})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	_, err = New(config.Configuration{Level: 42, TimeFormat: time.RFC3339})
	assert.Error(t, err)
}
