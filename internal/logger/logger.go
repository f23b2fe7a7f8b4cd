package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type ctxKey struct{}

var defaultLogger *slog.Logger

// Initialize sets up the global logger writing to stdout
func Initialize(level, format string) {
	InitializeWithWriter(os.Stdout, level, format)
}

// InitializeWithWriter sets up the global logger on an arbitrary writer
func InitializeWithWriter(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// ParseLevel maps a config level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Get returns the default logger
func Get() *slog.Logger {
	if defaultLogger == nil {
		Initialize("info", "text")
	}
	return defaultLogger
}

// WithRequestID returns a context whose logger carries the request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, FromContext(ctx).With("request_id", requestID))
}

// FromContext returns the request-scoped logger, or the default one
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return Get()
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func DebugContext(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).DebugContext(ctx, msg, args...)
}

func InfoContext(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).InfoContext(ctx, msg, args...)
}

func WarnContext(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).WarnContext(ctx, msg, args...)
}

func ErrorContext(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).ErrorContext(ctx, msg, args...)
}

// WithService returns a logger with service name attached
func WithService(serviceName string) *slog.Logger {
	return Get().With("service", serviceName)
}

// EnterMethod logs method entry (process tracking)
func EnterMethod(methodName string, args ...any) {
	allArgs := append([]any{"method", methodName, "event", "enter"}, args...)
	Get().Debug("→ Method entered", allArgs...)
}

// ExitMethod logs method exit (process tracking)
func ExitMethod(methodName string, args ...any) {
	allArgs := append([]any{"method", methodName, "event", "exit"}, args...)
	Get().Debug("← Method exited", allArgs...)
}

// ExitMethodWithError logs method exit with error (process tracking)
func ExitMethodWithError(methodName string, err error, args ...any) {
	allArgs := append([]any{"method", methodName, "event", "exit", "error", err}, args...)
	Get().Error("← Method exited with error", allArgs...)
}

// DatabaseCall logs a database statement before it runs
func DatabaseCall(operation, query string, args ...any) {
	allArgs := append([]any{"operation", operation, "query", query}, args...)
	Get().Debug("→ Database call", allArgs...)
}

// DatabaseResult logs the outcome of a database statement
func DatabaseResult(operation string, rowsAffected int64, err error, args ...any) {
	allArgs := append([]any{"operation", operation, "rows_affected", rowsAffected}, args...)
	if err != nil {
		allArgs = append(allArgs, "error", err)
		Get().Error("← Database call failed", allArgs...)
	} else {
		Get().Debug("← Database call succeeded", allArgs...)
	}
}

// ExternalServiceCall logs a call to SMTP or another outside service
func ExternalServiceCall(service, operation string, args ...any) {
	allArgs := append([]any{"service", service, "operation", operation}, args...)
	Get().Debug("→ External service call", allArgs...)
}

// ExternalServiceResult logs the outcome of an outside service call. Failures
// are warnings: outside services never fail a rental operation.
func ExternalServiceResult(service, operation string, err error, args ...any) {
	allArgs := append([]any{"service", service, "operation", operation}, args...)
	if err != nil {
		allArgs = append(allArgs, "error", err)
		Get().Warn("← External service call failed", allArgs...)
	} else {
		Get().Debug("← External service call succeeded", allArgs...)
	}
}
