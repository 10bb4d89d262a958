package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/triage-assistant/internal/config"
)

// New builds the application logger. Output goes to stderr so it never mixes
// with rendered summaries on stdout.
func New(cfg *config.Config) (*zap.Logger, error) {
	level := strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if level == "off" {
		return zap.NewNop(), nil
	}

	var zcfg zap.Config
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("%w: log level %q", config.ErrInvalidConfig, cfg.LogLevel)
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
