package logkick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleFilter(t *testing.T) {
	capture := &captureDrain{}
	filter := newModuleFilter(capture, []string{"myapp"})

	filter.Log(Record{Level: DebugLevel, Module: "myapp/sub", Message: "own debug"})
	filter.Log(Record{Level: DebugLevel, Module: "serde", Message: "dep debug"})
	filter.Log(Record{Level: TraceLevel, Module: "serde", Message: "dep trace"})
	filter.Log(Record{Level: ErrorLevel, Module: "serde", Message: "dep error"})
	filter.Log(Record{Level: InfoLevel, Module: "serde", Message: "dep info"})

	assert.Equal(t, []string{"own debug", "dep error", "dep info"}, capture.messages())
}

func TestModuleFilterEmptyAllowList(t *testing.T) {
	capture := &captureDrain{}
	filter := newModuleFilter(capture, nil)

	filter.Log(Record{Level: DebugLevel, Module: "myapp", Message: "debug"})
	filter.Log(Record{Level: WarnLevel, Module: "myapp", Message: "warn"})

	assert.Equal(t, []string{"warn"}, capture.messages())
}

func TestLevelFilter(t *testing.T) {
	dirs, err := ParseDirectives("db=debug,warning")
	require.NoError(t, err)

	capture := &captureDrain{}
	filter := newLevelFilter(capture, dirs)

	filter.Log(Record{Level: DebugLevel, Module: "db", Message: "db debug"})
	filter.Log(Record{Level: TraceLevel, Module: "db", Message: "db trace"})
	filter.Log(Record{Level: InfoLevel, Module: "other", Message: "other info"})
	filter.Log(Record{Level: ErrorLevel, Module: "other", Message: "other error"})

	assert.Equal(t, []string{"db debug", "other error"}, capture.messages())
}

func TestLevelFilterLongestPrefix(t *testing.T) {
	dirs, err := ParseDirectives("svc=warning,svc/worker=trace")
	require.NoError(t, err)

	capture := &captureDrain{}
	filter := newLevelFilter(capture, dirs)

	filter.Log(Record{Level: TraceLevel, Module: "svc/worker/pool", Message: "worker trace"})
	filter.Log(Record{Level: InfoLevel, Module: "svc/api", Message: "api info"})
	filter.Log(Record{Level: WarnLevel, Module: "svc/api", Message: "api warn"})

	assert.Equal(t, []string{"worker trace", "api warn"}, capture.messages())
}
