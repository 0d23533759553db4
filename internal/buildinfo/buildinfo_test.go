package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	info := New("1.2.3", "2026-01-01", "abc123")

	assert.Equal(t, "1.2.3", info.Version())
	assert.Equal(t, "2026-01-01", info.Date())
	assert.Equal(t, "abc123", info.Commit())
}

func TestNew_EmptyValues(t *testing.T) {
	info := New("", "", "")

	assert.Equal(t, "N/A", info.Version())
	assert.Equal(t, "N/A", info.Date())
	assert.Equal(t, "N/A", info.Commit())
}

func TestInfo_Print(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New("1.0.0", "", "deadbeef").Print(&buf))

	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: deadbeef\n", buf.String())
}
