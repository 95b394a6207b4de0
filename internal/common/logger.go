package common

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

func NewLogger(service string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil && os.Getenv("LOG_LEVEL") != "" {
		level = parsed
	}
	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("service", service).Logger()
}

// WithContext enriches the logger with the active trace and span ids
// so dispatch logs can be correlated with traces.
func WithContext(ctx context.Context, logger zerolog.Logger) zerolog.Logger {
	if ctx == nil {
		return logger
	}
	sc := trace.SpanContextFromContext(ctx)
	if sc.HasTraceID() {
		logger = logger.With().Str("trace_id", sc.TraceID().String()).Logger()
	}
	if sc.HasSpanID() {
		logger = logger.With().Str("span_id", sc.SpanID().String()).Logger()
	}
	return logger
}
