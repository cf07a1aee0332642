package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Formats(t *testing.T) {
	var text, js bytes.Buffer

	l, err := New(&text, "info", "text")
	require.NoError(t, err)
	l.Info("hello", "k", 1)
	l.Debug("hidden")
	assert.Contains(t, text.String(), "msg=hello")
	assert.NotContains(t, text.String(), "hidden")

	l, err = New(&js, "DEBUG", "json")
	require.NoError(t, err)
	l.Debug("shown")
	assert.Contains(t, js.String(), `"msg":"shown"`)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "text")
	assert.Error(t, err)
	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	l := Discard()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}
