package logkick

import "errors"

var (
	// ErrInvalidLevel reports a severity name outside the canonical set.
	ErrInvalidLevel = errors.New("invalid level name")

	// ErrInvalidDirective reports a malformed module=level directive.
	ErrInvalidDirective = errors.New("invalid log directive")

	// ErrBridgeInstalled reports a second attempt to claim the process-wide
	// stdlib log sink.
	ErrBridgeInstalled = errors.New("legacy log bridge already installed")

	// ErrAlreadyInitialized reports a second Init call on the same builder.
	ErrAlreadyInitialized = errors.New("builder already initialized")

	// ErrFlushTimeout reports that Guard.Close gave up waiting for the
	// consumer and discarded the remaining queued records. Non-fatal.
	ErrFlushTimeout = errors.New("flush timed out")
)
