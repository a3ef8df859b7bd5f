package logkick

import (
	"time"

	"github.com/rs/zerolog"
)

// Record is a single log entry travelling through the drain chain.
// A record is emitted whole or dropped whole; no stage partially writes it.
type Record struct {
	Time    time.Time
	Level   Severity
	Module  string
	Message string
	Fields  []Field
}

// Drain is one stage of the output pipeline. A drain accepts a record and
// either forwards it to the stage it wraps, transforms it, or suppresses it.
// Implementations must be safe for concurrent use.
type Drain interface {
	Log(r Record)
}

// Field is a typed key/value pair attached to a record.
type Field struct {
	Key   string
	Value any
}

func Str(key, val string) Field               { return Field{Key: key, Value: val} }
func Int(key string, val int) Field           { return Field{Key: key, Value: val} }
func Int64(key string, val int64) Field       { return Field{Key: key, Value: val} }
func Uint64(key string, val uint64) Field     { return Field{Key: key, Value: val} }
func Float64(key string, val float64) Field   { return Field{Key: key, Value: val} }
func Bool(key string, val bool) Field         { return Field{Key: key, Value: val} }
func Dur(key string, val time.Duration) Field { return Field{Key: key, Value: val} }
func Time(key string, val time.Time) Field    { return Field{Key: key, Value: val} }
func Any(key string, val any) Field           { return Field{Key: key, Value: val} }

// Err attaches an error under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// apply writes the field onto a zerolog event using the typed setter
// matching the stored value.
func (f Field) apply(ev *zerolog.Event) {
	switch v := f.Value.(type) {
	case string:
		ev.Str(f.Key, v)
	case int:
		ev.Int(f.Key, v)
	case int64:
		ev.Int64(f.Key, v)
	case uint64:
		ev.Uint64(f.Key, v)
	case float64:
		ev.Float64(f.Key, v)
	case bool:
		ev.Bool(f.Key, v)
	case time.Duration:
		ev.Dur(f.Key, v)
	case time.Time:
		ev.Time(f.Key, v)
	case error:
		ev.AnErr(f.Key, v)
	default:
		ev.Interface(f.Key, v)
	}
}
