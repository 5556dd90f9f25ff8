package zlog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(LevelWarn, &buf)
	l.Log(Entry{Level: LevelInfo, Component: "jobs", Message: "should be dropped"})
	assert.Empty(t, buf.String())

	l.Log(Entry{Level: LevelError, Component: "jobs", Message: "boom", Err: errors.New("bad")})
	got := buf.String()
	assert.Contains(t, got, "ERROR")
	assert.Contains(t, got, "boom")
	assert.Contains(t, got, "bad")
}

func TestJSONLoggerEmitsOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(LevelDebug, &buf)
	l.Log(Entry{Level: LevelInfo, Component: "csv", Message: "parsed", Fields: map[string]any{"rows": 3}})
	got := buf.String()
	require.True(t, len(got) > 0)
	assert.True(t, got[0] == '{')
	assert.Contains(t, got, `"component":"csv"`)
}

func TestPackageLevelConvenienceFunctionsUseDefault(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(NewTextLogger(LevelDebug, &buf))
	defer SetDefault(NoOpLogger{})

	Info("adt", "node allocated", map[string]any{"kind": "OBJECT"})
	assert.Contains(t, buf.String(), "node allocated")
}

func TestNoOpLoggerDiscardsEverything(t *testing.T) {
	var l NoOpLogger
	assert.False(t, l.Enabled(LevelError))
	l.Log(Entry{Level: LevelError, Message: "ignored"})
}
