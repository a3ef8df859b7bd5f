package logkick

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Severity is the total-ordered importance of a log record.
// Higher values are more severe.
type Severity int8

const (
	TraceLevel Severity = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	CriticalLevel
)

// String returns the canonical lower-case name of the severity.
func (s Severity) String() string {
	switch s {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	case CriticalLevel:
		return "critical"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity name into a Severity. Matching is
// case-insensitive and accepts exactly the six canonical names; anything
// else fails with ErrInvalidLevel.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "critical":
		return CriticalLevel, nil
	}
	return InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
}

// zerologLevel maps a Severity onto the zerolog level used for emission.
// Critical records are emitted via WithLevel(FatalLevel), which does not
// terminate the process.
func (s Severity) zerologLevel() zerolog.Level {
	switch s {
	case TraceLevel:
		return zerolog.TraceLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case CriticalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
