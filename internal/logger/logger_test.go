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
	log, err := New(Options{Level: "info", Writer: buf, Component: "panel"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"state": "half", "height": 12.5})
	log.Info("committing panel state")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "committing panel state", entry["message"])
	require.Equal(t, "half", entry["state"])
	require.Equal(t, 12.5, entry["height"])
	require.Equal(t, "panel", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"path": "overlay.yaml"})
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "overlay.yaml", entry["path"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSilent(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	require.Nil(t, nilLog.WithFields(map[string]any{"k": "v"}))
	require.NotPanics(t, func() {
		nilLog.Debug("x")
		nilLog.Info("x")
		nilLog.Warn("x")
		nilLog.Error(errors.New("x"), "x")
	})

	require.NotPanics(t, func() {
		Nop().WithFields(map[string]any{"k": "v"}).Info("x")
	})
}

func TestLoggerHumanReadableOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Warn("drag ignored")
	require.Contains(t, buf.String(), "drag ignored")
	require.Contains(t, buf.String(), "WRN")
}
