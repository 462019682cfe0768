package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

const timeLayout = time.RFC3339

// consoleHandler writes one line per record:
//
//	2026-01-02T15:04:05Z INFO langbatch: pipeline started key=value ...
//
// The component attribute becomes the message prefix instead of a field.
type consoleHandler struct {
	out       *syncWriter
	level     slog.Leveler
	addSource bool

	component string
	group     string // dotted prefix for keys, ends in "."
	preset    []byte // fields rendered by WithAttrs
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(p)
	return err
}

func newConsoleHandler(w io.Writer, level slog.Leveler, addSource bool) *consoleHandler {
	return &consoleHandler{out: &syncWriter{w: w}, level: level, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	component := h.component
	var fields []byte
	r.Attrs(func(a slog.Attr) bool {
		if h.group == "" && a.Key == FieldComponent {
			if component == "" {
				component = a.Value.Resolve().String()
			}
			return true
		}
		fields = appendField(fields, h.group, a)
		return true
	})

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	line := make([]byte, 0, 96+len(h.preset)+len(fields))
	line = ts.UTC().AppendFormat(line, timeLayout)
	line = append(line, ' ')
	line = append(line, r.Level.String()...)
	line = append(line, ' ')
	if component != "" {
		line = append(line, component...)
		line = append(line, ": "...)
	}
	if msg := strings.TrimSpace(r.Message); msg != "" {
		line = append(line, msg...)
	} else {
		line = append(line, "(no message)"...)
	}
	if h.addSource && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		line = fmt.Appendf(line, " [%s:%d]", filepath.Base(frame.File), frame.Line)
	}
	line = append(line, h.preset...)
	line = append(line, fields...)
	line = append(line, '\n')
	return h.out.write(line)
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.preset = append([]byte(nil), h.preset...)
	for _, a := range attrs {
		if h.group == "" && a.Key == FieldComponent {
			next.component = a.Value.Resolve().String()
			continue
		}
		next.preset = appendField(next.preset, h.group, a)
	}
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = h.group + name + "."
	return &next
}

func appendField(dst []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			group += a.Key + "."
		}
		for _, member := range a.Value.Group() {
			dst = appendField(dst, group, member)
		}
		return dst
	}
	dst = append(dst, ' ')
	dst = append(dst, group...)
	dst = append(dst, a.Key...)
	dst = append(dst, '=')
	return append(dst, renderValue(a.Value)...)
}

func renderValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindTime:
		s = v.Time().UTC().Format(timeLayout)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		} else {
			s = fmt.Sprint(v.Any())
		}
	default:
		s = v.String()
	}
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) {
		return strconv.Quote(s)
	}
	return s
}
