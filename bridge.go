package logkick

import (
	"context"
	stdlog "log"
	"log/slog"
	"strings"
	"time"

	"go.uber.org/atomic"
)

// bridgeInstalled is the process-wide slot for the stdlib log facade.
// Write-once: the facade has a single sink, so a second install fails
// instead of silently overwriting the first.
var bridgeInstalled atomic.Bool

// stdlogWriter adapts the stdlib log package's output stream to the drain
// chain. Each Write call carries one formatted line.
type stdlogWriter struct {
	logger *Logger
}

func (w *stdlogWriter) Write(p []byte) (int, error) {
	w.logger.Info(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// InstallLegacyBridge routes the stdlib log package through l, so
// third-party code calling log.Print still ends up in the structured
// pipeline. It may succeed once per process; subsequent calls fail with
// ErrBridgeInstalled.
func InstallLegacyBridge(l *Logger) error {
	if !bridgeInstalled.CompareAndSwap(false, true) {
		return ErrBridgeInstalled
	}
	stdlog.SetFlags(0)
	stdlog.SetOutput(&stdlogWriter{logger: l.Named("stdlog")})
	return nil
}

// SlogHandler returns a slog.Handler backed by this logger's drain chain,
// for dependencies that speak log/slog.
func (l *Logger) SlogHandler() slog.Handler {
	return &slogHandler{logger: l}
}

// slogHandler converts slog records into pipeline records. Group names are
// flattened into dotted key prefixes.
type slogHandler struct {
	logger *Logger
	attrs  []Field
	prefix string
}

func (h *slogHandler) Enabled(context.Context, slog.Level) bool {
	// Filtering happens inside the drain chain.
	return true
}

func (h *slogHandler) Handle(_ context.Context, rec slog.Record) error {
	fields := make([]Field, 0, len(h.attrs)+rec.NumAttrs())
	fields = append(fields, h.attrs...)
	rec.Attrs(func(a slog.Attr) bool {
		fields = append(fields, Field{Key: h.prefix + a.Key, Value: a.Value.Resolve().Any()})
		return true
	})

	ts := rec.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	h.logger.drain.Log(Record{
		Time:    ts,
		Level:   severityFromSlog(rec.Level),
		Module:  h.logger.module,
		Message: rec.Message,
		Fields:  fields,
	})
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	merged := make([]Field, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		merged = append(merged, Field{Key: h.prefix + a.Key, Value: a.Value.Resolve().Any()})
	}
	clone.attrs = merged
	return &clone
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func severityFromSlog(level slog.Level) Severity {
	switch {
	case level < slog.LevelDebug:
		return TraceLevel
	case level < slog.LevelInfo:
		return DebugLevel
	case level < slog.LevelWarn:
		return InfoLevel
	case level < slog.LevelError:
		return WarnLevel
	case level == slog.LevelError:
		return ErrorLevel
	default:
		return CriticalLevel
	}
}
