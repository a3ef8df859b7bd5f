package logkick

import "time"

const (
	timestampFieldName = "ts"
	messageFieldName   = "msg"
	moduleFieldName    = "module"
	serviceFieldName   = "service"

	moduleSeparator = "/"
)

const (
	// defaultFlushTimeout bounds how long Guard.Close waits for the async
	// consumer to drain before discarding what is left.
	defaultFlushTimeout = 3 * time.Second

	logFileMaxBackups = 3
	logFileMaxAgeDays = 7
	logFileMaxSizeMB  = 50
)
