package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger("configload", "debug", &buf)
	require.NoError(t, err)

	log.Debug().Str("path", "/etc/app.toml").Msg("resolved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "configload", entry["role"])
	assert.Equal(t, "/etc/app.toml", entry["path"])
	assert.Equal(t, "resolved", entry["message"])
	assert.Contains(t, entry, "ts")
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger("configload", "warn", &buf)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_DefaultAndInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger("configload", "", &buf)
	require.NoError(t, err)
	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	_, err = NewLogger("configload", "loud", &buf)
	assert.Error(t, err)
}

func TestNewConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewConsoleLogger("configload", "info", &buf)
	require.NoError(t, err)

	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger("cli", "info", &buf)
	require.NoError(t, err)

	log.GetChildLogger("paths").Info().Msg("child")

	assert.Contains(t, buf.String(), `"command":"paths"`)
	assert.Contains(t, buf.String(), `"role":"cli"`)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger("ctx", "info", &buf)
	require.NoError(t, err)

	ctx := log.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from context")

	assert.Contains(t, buf.String(), "from context")
}

func TestFromContext_NoLogger(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Info().Msg("discarded") })
}
