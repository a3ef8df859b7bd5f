package logkick

import "time"

// Logger is the finalized logging handle returned by Builder.Init. It is
// immutable and safe for concurrent use; share it freely or derive scoped
// children with Named.
type Logger struct {
	drain  Drain
	module string
}

// Named returns a child logger whose records carry the module path
// "<parent>/<name>". The drain chain is shared with the parent.
func (l *Logger) Named(name string) *Logger {
	child := *l
	if l.module == "" {
		child.module = name
	} else {
		child.module = l.module + moduleSeparator + name
	}
	return &child
}

// Module returns the module path records from this logger carry.
func (l *Logger) Module() string { return l.module }

func (l *Logger) Trace(msg string, fields ...Field) { l.log(TraceLevel, msg, fields) }
func (l *Logger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields) }
func (l *Logger) Info(msg string, fields ...Field)  { l.log(InfoLevel, msg, fields) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.log(WarnLevel, msg, fields) }
func (l *Logger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields) }

// Critical logs at the highest severity. Unlike zerolog's Fatal it does not
// terminate the process.
func (l *Logger) Critical(msg string, fields ...Field) { l.log(CriticalLevel, msg, fields) }

// log is fire-and-forget: filtered-out records are dropped silently and a
// drop never fails the call site.
func (l *Logger) log(level Severity, msg string, fields []Field) {
	if l == nil || l.drain == nil {
		return
	}
	l.drain.Log(Record{
		Time:    time.Now(),
		Level:   level,
		Module:  l.module,
		Message: msg,
		Fields:  fields,
	})
}
