package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Pretty: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"theme": "nord", "mode": "dark"})
	log.Info("theme activated")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "theme activated", entry["message"])
	require.Equal(t, "nord", entry["theme"])
	require.Equal(t, "dark", entry["mode"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Pretty: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Pretty: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"path": "settings.yaml"})
	log.Error(errors.New("disk full"), "failed to persist selection")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed to persist selection", entry["message"])
	require.Equal(t, "settings.yaml", entry["path"])
	require.Equal(t, "disk full", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "shouting"})
	require.Error(t, err)
}
