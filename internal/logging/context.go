package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID identifies a single pipeline invocation.
	FieldRunID = "run_id"
	// FieldPipeline names the pipeline being run (applications, applets).
	FieldPipeline = "pipeline"
	// FieldTarget is the application or applet identifier being processed.
	FieldTarget = "target"
	// FieldLanguage is the language identifier being processed.
	FieldLanguage = "language"
	// FieldPath is a filesystem path touched by the operation.
	FieldPath = "path"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step after a failure.
	FieldErrorHint = "error_hint"
)

type runIDKey struct{}

// WithRunID stamps the run identifier onto ctx.
func WithRunID(ctx context.Context, runID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runIDKey{}, strings.TrimSpace(runID))
}

// RunIDFromContext returns the run identifier stamped by WithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if id, ok := RunIDFromContext(ctx); ok {
		return logger.With(String(FieldRunID, id))
	}
	return logger
}
