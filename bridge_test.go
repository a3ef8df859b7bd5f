package logkick

import (
	stdlog "log"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The bridge claims a process-wide slot, so this test is the only place in
// the package that installs it.
func TestLegacyBridge(t *testing.T) {
	capture := &captureDrain{}
	logger := &Logger{drain: capture, module: "svc"}

	require.NoError(t, InstallLegacyBridge(logger))

	stdlog.Print("hello from stdlog")

	records := capture.all()
	require.Len(t, records, 1)
	assert.Equal(t, "hello from stdlog", records[0].Message)
	assert.Equal(t, InfoLevel, records[0].Level)
	assert.Equal(t, "svc/stdlog", records[0].Module)

	err := InstallLegacyBridge(logger)
	require.ErrorIs(t, err, ErrBridgeInstalled)
}

func TestSlogHandler(t *testing.T) {
	capture := &captureDrain{}
	logger := &Logger{drain: capture, module: "svc"}

	sl := slog.New(logger.SlogHandler())
	sl.Info("plain", "k", "v")
	sl.Warn("warned")
	sl.Error("failed")
	sl.Debug("fine")

	records := capture.all()
	require.Len(t, records, 4)

	assert.Equal(t, "plain", records[0].Message)
	assert.Equal(t, InfoLevel, records[0].Level)
	assert.Equal(t, "svc", records[0].Module)
	require.Len(t, records[0].Fields, 1)
	assert.Equal(t, Field{Key: "k", Value: "v"}, records[0].Fields[0])

	assert.Equal(t, WarnLevel, records[1].Level)
	assert.Equal(t, ErrorLevel, records[2].Level)
	assert.Equal(t, DebugLevel, records[3].Level)
}

func TestSlogHandlerAttrsAndGroups(t *testing.T) {
	capture := &captureDrain{}
	logger := &Logger{drain: capture, module: "svc"}

	sl := slog.New(logger.SlogHandler()).With("req", "abc").WithGroup("db")
	sl.Info("query", "table", "users")

	records := capture.all()
	require.Len(t, records, 1)

	keys := map[string]any{}
	for _, f := range records[0].Fields {
		keys[f.Key] = f.Value
	}
	assert.Equal(t, "abc", keys["req"])
	assert.Equal(t, "users", keys["db.table"])
}
