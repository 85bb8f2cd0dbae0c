package zap

import (
	"os"

	"github.com/lintang-b-s/sidewalk-nav/pkg/logger/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New(cfg config.Configuration) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		zap.NewAtomicLevelAt(level(cfg.Level)),
	)

	return zap.New(core, zap.AddCaller()), nil
}

func level(l int) zapcore.Level {
	switch l {
	case config.FATAL_LEVEL:
		return zapcore.FatalLevel
	case config.ERROR_LEVEL:
		return zapcore.ErrorLevel
	case config.WARN_LEVEL:
		return zapcore.WarnLevel
	case config.DEBUG_LEVEL:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
