package services

import "context"

type contextKey string

const (
	pathKey      contextKey = "path"
	hookKey      contextKey = "hook"
	requestIDKey contextKey = "request_id"
)

// WithPath annotates context with the media file path being processed.
func WithPath(ctx context.Context, path string) context.Context {
	if path == "" {
		return ctx
	}
	return context.WithValue(ctx, pathKey, path)
}

// PathFromContext returns the media file path if present.
func PathFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(pathKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithHook annotates context with the hook name.
func WithHook(ctx context.Context, hook string) context.Context {
	if hook == "" {
		return ctx
	}
	return context.WithValue(ctx, hookKey, hook)
}

// HookFromContext returns the hook name if present.
func HookFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(hookKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
