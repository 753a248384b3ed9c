package logging

import (
	"context"
	"log"
)

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID from ctx, or "" when none was set.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger writes level-tagged lines bound to a request ID.
type Logger struct {
	requestID string
}

// NewLogger creates a logger with request context
func NewLogger(ctx context.Context) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{requestID: requestID}
}

func (l *Logger) Infof(operation string, format string, args ...any) {
	l.printf("info", operation, format, args...)
}

func (l *Logger) Warnf(operation string, format string, args ...any) {
	l.printf("warn", operation, format, args...)
}

func (l *Logger) Errorf(operation string, format string, args ...any) {
	l.printf("error", operation, format, args...)
}

func (l *Logger) printf(level, operation, format string, args ...any) {
	log.Printf("[%s] request_id=%s operation=%s "+format, append([]any{level, l.requestID, operation}, args...)...)
}
