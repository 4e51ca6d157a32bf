// ABOUTME: Tests for logger construction.
// ABOUTME: Checks level filtering and invalid level handling.
package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", "op", "add_sleep")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "op=add_sleep")
}

func TestNewDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("", &buf)
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("chatty", nil)
	assert.Error(t, err)
	assert.False(t, ValidLevel("chatty"))
	assert.True(t, ValidLevel("debug"))
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("dropped") })
}
