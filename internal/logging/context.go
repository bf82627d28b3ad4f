// internal/logging/context.go
package logging

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ContextFields extracts correlation data from context.
func ContextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 3)

	if id := InvocationIDFromContext(ctx); id != "" {
		fields = append(fields, zap.String("invocation.id", id))
	}
	if id := ProjectIDFromContext(ctx); id != "" {
		fields = append(fields, zap.String("project.id", id))
	}
	if path := SessionPathFromContext(ctx); path != "" {
		fields = append(fields, zap.String("session.path", path))
	}

	return fields
}

// Context key types
type invocationCtxKey struct{}
type projectCtxKey struct{}
type sessionCtxKey struct{}

// Validation constants
const maxIDLen = 128

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// validateID validates an invocation or project ID.
func validateID(id, name string) error {
	if id == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	if !utf8.ValidString(id) {
		return fmt.Errorf("%s contains invalid UTF-8", name)
	}
	if len(id) > maxIDLen {
		return fmt.Errorf("%s exceeds max length %d", name, maxIDLen)
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("%s contains invalid characters (must be alphanumeric, hyphen, underscore)", name)
	}
	return nil
}

// InvocationIDFromContext extracts the invocation ID from context.
func InvocationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(invocationCtxKey{}).(string); ok {
		return id
	}
	return ""
}

// WithInvocationID adds the per-run correlation ID to context.
// Panics if id is empty or contains invalid characters.
func WithInvocationID(ctx context.Context, id string) context.Context {
	if err := validateID(id, "invocationID"); err != nil {
		panic(fmt.Sprintf("logging: %v", err))
	}
	return context.WithValue(ctx, invocationCtxKey{}, id)
}

// ProjectIDFromContext extracts the project identifier from context.
func ProjectIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(projectCtxKey{}).(string); ok {
		return id
	}
	return ""
}

// WithProjectID adds the project identifier to context.
// Panics if id is empty or contains invalid characters.
func WithProjectID(ctx context.Context, id string) context.Context {
	if err := validateID(id, "projectID"); err != nil {
		panic(fmt.Sprintf("logging: %v", err))
	}
	return context.WithValue(ctx, projectCtxKey{}, id)
}

// SessionPathFromContext extracts the session file path from context.
func SessionPathFromContext(ctx context.Context) string {
	if p, ok := ctx.Value(sessionCtxKey{}).(string); ok {
		return p
	}
	return ""
}

// WithSessionPath adds the session file being processed to context.
func WithSessionPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, path)
}

// loggerCtxKey is the context key for Logger.
type loggerCtxKey struct{}

// WithLogger stores logger in context.
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// FromContext retrieves logger from context.
// Returns a nop logger if not found.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok {
		return l
	}
	return NewNop()
}
