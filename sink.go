package logkick

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var fieldNamesOnce sync.Once

// configureFieldNames aligns zerolog's package-level field names with the
// wire format this package emits: "ts" for the timestamp, "msg" for the
// message, and "critical" for the top severity. Applied once per process.
func configureFieldNames() {
	fieldNamesOnce.Do(func() {
		zerolog.TimestampFieldName = timestampFieldName
		zerolog.MessageFieldName = messageFieldName
		zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
			switch l {
			case zerolog.WarnLevel:
				return WarnLevel.String()
			case zerolog.FatalLevel:
				return CriticalLevel.String()
			default:
				return l.String()
			}
		}
	})
}

// writerDrain is the terminal stage: it hands records to zerolog for
// serialization and the actual write.
type writerDrain struct {
	log zerolog.Logger
}

func (d *writerDrain) Log(r Record) {
	ev := d.log.WithLevel(r.Level.zerologLevel())
	ev.Time(zerolog.TimestampFieldName, r.Time)
	if r.Module != "" {
		ev.Str(moduleFieldName, r.Module)
	}
	for _, f := range r.Fields {
		f.apply(ev)
	}
	ev.Msg(r.Message)
}

// newSink builds the terminal drain for the selected output format.
//
// JSON mode emits one object per record to stdout; console mode renders a
// compact colorized line to stderr via zerolog.ConsoleWriter. Both writers
// are wrapped in zerolog.SyncWriter so concurrent events never interleave
// partial lines. When a rotating file is configured it always receives the
// raw JSON stream, regardless of console formatting.
func newSink(cfg *builderConfig, json bool) Drain {
	configureFieldNames()

	var writers []io.Writer
	switch {
	case cfg.out != nil:
		if json {
			writers = append(writers, zerolog.SyncWriter(cfg.out))
		} else {
			writers = append(writers, zerolog.ConsoleWriter{
				Out:        zerolog.SyncWriter(cfg.out),
				NoColor:    true,
				TimeFormat: time.TimeOnly,
			})
		}
	case json:
		writers = append(writers, zerolog.SyncWriter(os.Stdout))
	default:
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        zerolog.SyncWriter(os.Stderr),
			NoColor:    cfg.noColor || !stderrIsTerminal(),
			TimeFormat: time.TimeOnly,
		})
	}
	if cfg.filePath != "" {
		writers = append(writers, newRollingFileWriter(cfg.filePath))
	}

	w := writers[0]
	if len(writers) > 1 {
		w = io.MultiWriter(writers...)
	}

	logger := zerolog.New(w).With().Str(serviceFieldName, cfg.Name).Logger()
	return &writerDrain{log: logger}
}

// newRollingFileWriter returns a size/age-capped rotating writer for path.
func newRollingFileWriter(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
		MaxSize:    logFileMaxSizeMB,
	}
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
