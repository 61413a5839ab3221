package logging

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStderr runs fn with os.Stderr redirected to a pipe and returns
// what fn wrote there.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stderr
	os.Stderr = w
	fn()
	os.Stderr = orig
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestRecordWritesToFileAndStderrAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug, false)

	stderr := captureStderr(t, func() {
		logger.Warn("disk nearly full", "free_bytes", 12)
	})

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "disk nearly full")
	assert.Contains(t, stderr, "disk nearly full")
}

func TestSetDebugMirrorsDebugRecordsToStderr(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelDebug, false)
	logger := slog.New(h)

	stderr := captureStderr(t, func() { logger.Debug("quiet message") })
	require.True(t, strings.Contains(buf.String(), "quiet message"))
	assert.NotContains(t, stderr, "quiet message")

	h.SetDebug(true)
	stderr = captureStderr(t, func() { logger.Debug("loud message") })
	assert.Contains(t, buf.String(), "loud message")
	assert.Contains(t, stderr, "loud message")
}

func TestNilFileDoesNotPanic(t *testing.T) {
	logger := New(nil, slog.LevelInfo, true)
	assert.NotPanics(t, func() {
		logger.Info("no file backing this logger")
	})
}
