package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/triage-assistant/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		enabled zapcore.Level
		hidden  zapcore.Level
	}{
		{"development default", config.Config{Env: "local"}, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"production warn", config.Config{Env: "production", LogLevel: "warn"}, zapcore.WarnLevel, zapcore.InfoLevel},
		{"upper case", config.Config{Env: "local", LogLevel: " ERROR "}, zapcore.ErrorLevel, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(&tt.cfg)
			require.NoError(t, err)

			assert.True(t, log.Core().Enabled(tt.enabled))
			assert.False(t, log.Core().Enabled(tt.hidden))
		})
	}
}

func TestNew_Off(t *testing.T) {
	log, err := New(&config.Config{LogLevel: "off"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.FatalLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&config.Config{LogLevel: "chatty"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
