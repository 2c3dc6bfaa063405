package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesAtLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := logger.New(logger.Options{Level: "warn", Output: buf})
	require.NoError(t, err)

	l.Infow("hidden", "k", 1)
	l.Warnw("shown", "k", 2)
	require.NoError(t, l.Close())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "WARN")
}

func TestNew_JSONAndFile(t *testing.T) {
	buf := &bytes.Buffer{}
	path := filepath.Join(t.TempDir(), "calpro")
	l, err := logger.New(logger.Options{Level: "debug", JSON: true, File: path, Output: buf})
	require.NoError(t, err)

	l.Debugw("profile saved", "name", "alice")
	require.NoError(t, l.Close())

	assert.Contains(t, buf.String(), `"msg":"profile saved"`)
	assert.Contains(t, buf.String(), `"timestamp"`)

	data, err := os.ReadFile(path + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"alice"`)
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := logger.New(logger.Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNewNop(t *testing.T) {
	l := logger.NewNop()
	l.Infow("nothing")
	assert.NoError(t, l.Close())
}
