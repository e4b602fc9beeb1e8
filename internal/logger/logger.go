package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FieldUserID       = "user_id"
	FieldEvaluationID = "evaluation_id"
	FieldStage        = "stage"
	FieldEvaluatorID  = "evaluator_id"
)

// New builds the service logger. Production environments log at info level,
// everything else at debug.
func New(env string, json bool) (*zap.Logger, error) {
	level := zapcore.DebugLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if strings.EqualFold(env, "production") {
		level = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}
	return cfg.Build()
}

// OrNop returns logger, or a no-op logger when it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Component names the logger after a component of the service.
func Component(logger *zap.Logger, name string) *zap.Logger {
	return OrNop(logger).With(zap.String("component", name))
}
