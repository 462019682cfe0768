package logging

import (
	"context"
	"log/slog"
	"time"
)

// Attr aliases slog.Attr so callers only import this package.
type Attr = slog.Attr

func String(key, value string) Attr { return slog.String(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func Int64(key string, value int64) Attr { return slog.Int64(key, value) }

func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

// Error returns the standard error attribute. A nil error is logged as an
// empty string so the key is still present.
func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.Any("error", err)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(discardHandler{})
}

// NewComponentLogger tags logger with the component field. A nil logger
// yields a no-op logger.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// ErrorWithContext logs msg at error level and guarantees the event_type and
// error_hint fields are set, filling in defaults for whichever is missing.
func ErrorWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	var haveEvent, haveHint bool
	args := make([]any, 0, len(attrs)+2)
	for _, a := range attrs {
		switch a.Key {
		case FieldEventType:
			haveEvent = true
		case FieldErrorHint:
			haveHint = true
		}
		args = append(args, a)
	}
	if !haveEvent {
		args = append(args, String(FieldEventType, eventType))
	}
	if !haveHint {
		args = append(args, String(FieldErrorHint, "see langcache.log for details"))
	}
	logger.Error(msg, args...)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }

func (discardHandler) Handle(context.Context, slog.Record) error { return nil }

func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler { return d }

func (d discardHandler) WithGroup(string) slog.Handler { return d }
