package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Console: &buf})

	log.Info("Report exported", zap.String("file", "sim_inbra_pasto_30d.pdf"))
	log.Debug("hidden at info level")
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "Report exported")
	assert.Contains(t, out, "sim_inbra_pasto_30d.pdf")
	assert.NotContains(t, out, "hidden at info level")
}

func TestNewConsoleDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Console: &buf, Debug: true})

	log.Debug("Simulation computed")
	require.NoError(t, log.Sync())

	assert.Contains(t, buf.String(), "[DEBUG]")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbeef.log")
	log := New(Options{File: path, MaxSize: 1})

	log.Warn("Logo skipped", zap.String("reason", "decode"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "Logo skipped", entry["msg"])
	assert.Equal(t, "decode", entry["reason"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewWithoutSinks(t *testing.T) {
	log := New(Options{})
	assert.NotPanics(t, func() { log.Info("discarded") })
}
