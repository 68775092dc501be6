package wlog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvid-games/waymesh/wlog"
)

func TestLogger_ZeroValueIsSilent(t *testing.T) {
	var l wlog.Logger
	require.Equal(t, wlog.LevelNone, l.Level())
	// Nil-safe too: nil *Logger must not panic on any method.
	var nilLogger *wlog.Logger
	require.NotPanics(t, func() {
		nilLogger.Errf("boom")
		nilLogger.SetLevel(wlog.LevelDebug)
	})
}

func TestLogger_SetLevel(t *testing.T) {
	l := wlog.New(wlog.LevelWarning)
	require.Equal(t, wlog.LevelWarning, l.Level())
	l.SetLevel(wlog.LevelDebug)
	require.Equal(t, wlog.LevelDebug, l.Level())
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "debug", wlog.LevelDebug.String())
	require.Equal(t, "none", wlog.LevelNone.String())
}
