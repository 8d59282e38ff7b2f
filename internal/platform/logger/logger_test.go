package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel(" error "))
	assert.Equal(t, Info, ParseLevel("verbose"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("console"))
}

func TestZapLogger_WithMergesFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := FromZap(zap.New(core)).With(map[string]any{"component": "reminders"})

	l.Debug("hidden", nil)
	l.Error("send failed", map[string]any{"pet_id": "p1", "err": errors.New("timeout"), "": "ignored"})

	entries := logs.All()
	require.Len(t, entries, 1)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "send failed", entries[0].Message)
	assert.Equal(t, "reminders", ctx["component"])
	assert.Equal(t, "p1", ctx["pet_id"])
	assert.Equal(t, "timeout", ctx["err"])
	_, hasEmpty := ctx[""]
	assert.False(t, hasEmpty)
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Info("nothing", map[string]any{"k": "v"})
	assert.Same(t, l, l.With(nil))
}
