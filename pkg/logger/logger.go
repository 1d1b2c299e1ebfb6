package logger

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	loggerKey    ContextKey = "logger"
)

var base = zap.NewNop()

// buildLogger is swapped in tests.
var buildLogger = func(cfg zap.Config) (*zap.Logger, error) {
	return cfg.Build()
}

// New builds a zap logger. env "development" gives a colored console encoder,
// anything else a JSON production encoder. level is one of debug|info|warn|error;
// unknown values fall back to info. The result also becomes the package base logger.
func New(env, level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level, cfg.Level.Level()))

	l, err := buildLogger(cfg)
	if err != nil {
		return nil, err
	}
	base = l
	return l, nil
}

func parseLevel(s string, def zapcore.Level) zapcore.Level {
	if strings.TrimSpace(s) == "" {
		return def
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Base returns the package base logger. It is a no-op logger until New is called.
func Base() *zap.Logger { return base }

// ContextWithLogger stores l in ctx.
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// ContextWithRequestID stores a request id for WithContext to pick up.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// FromContext returns the logger stored in ctx or the base logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return base
	}
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
		return l
	}
	return base
}

// WithContext returns FromContext(ctx) enriched with the request id, when present.
func WithContext(ctx context.Context) *zap.Logger {
	l := FromContext(ctx)
	if id := RequestID(ctx); id != "" {
		return l.With(zap.String("request_id", id))
	}
	return l
}
