package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf)

	log.Info(context.Background(), "problem loaded", "title", "Two Sum")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "problem loaded", record["msg"])
	assert.Equal(t, "Two Sum", record["title"])
}

func TestErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).Error(context.Background(), "submit failed", "status", 502)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.EqualValues(t, 502, record["status"])
}

func TestZeroSLoggerIsSilent(t *testing.T) {
	var l SLogger
	assert.NotPanics(t, func() {
		l.Info(context.Background(), "ignored")
		l.Error(context.Background(), "ignored")
	})
}

func TestOpenEmptyPathIsNop(t *testing.T) {
	log, closeFn, err := Open("")
	require.NoError(t, err)
	assert.IsType(t, Nop{}, log)
	assert.NoError(t, closeFn())
}

func TestOpenWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codescript.log")
	log, closeFn, err := Open(path)
	require.NoError(t, err)

	log.Info(context.Background(), "workspace started")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"workspace started"`)
}
