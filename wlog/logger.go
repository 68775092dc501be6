// Package wlog provides the minimal leveled logger used by waymesh's
// per-tick diagnostics. It is not a logging-configuration framework —
// sinks, rotation, and external shipping are a caller concern (spec
// Non-goal) — it is just enough leveled filtering that a caller can ask
// for "err and above" without the engine hand-rolling string prefixes.
//
// Per-tick detail is logged at Debug, which a caller must opt into:
// engine.New's default logger is at Warning, and a Logger{} zero value
// (Level None) is silent.
package wlog

import (
	"fmt"
	"log"
	"os"
)

// Level orders log verbosity from silent to chatty. Numerically higher
// levels are noisier; a Logger only emits messages whose level is at or
// below its configured Level (see Logger.log).
type Level int

const (
	// LevelNone suppresses all output. Zero value, so an unconfigured
	// Logger is silent by default.
	LevelNone Level = iota
	// LevelErr logs unrecoverable-for-the-caller conditions (e.g. a
	// failed path rebuild, or registering an entity on an empty graph).
	LevelErr
	// LevelWarning logs recoverable oddities (e.g. NoPath, a path request
	// toward an unknown node).
	LevelWarning
	// LevelInfo logs coarse lifecycle events (registration, rebuilds).
	LevelInfo
	// LevelDebug logs per-tick detail; expensive, intended for test
	// harnesses and engine development, not production use.
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelErr:
		return "err"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return fmt.Sprintf("wlog.Level(%d)", int(l))
	}
}

// Logger is a small leveled wrapper around the standard library's *log.Logger.
// The zero value is a valid, silent Logger (Level == LevelNone).
type Logger struct {
	level Level
	out   *log.Logger
}

// New returns a Logger at the given level, writing to os.Stderr with a
// microsecond timestamp prefix. Pass LevelNone to obtain a silent logger.
func New(level Level) *Logger {
	return &Logger{
		level: level,
		out:   log.New(os.Stderr, "", log.Lmicroseconds),
	}
}

// Level reports the logger's configured verbosity.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelNone
	}
	return l.level
}

// SetLevel adjusts verbosity at runtime. Safe to call between ticks; not
// safe to call concurrently with Tick (see engine package concurrency note).
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	l.level = level
}

func (l *Logger) log(at Level, format string, args ...interface{}) {
	if l == nil || l.out == nil || l.level < at {
		return
	}
	l.out.Printf("["+at.String()+"] "+format, args...)
}

// Errf logs at LevelErr.
func (l *Logger) Errf(format string, args ...interface{}) { l.log(LevelErr, format, args...) }

// Warnf logs at LevelWarning.
func (l *Logger) Warnf(format string, args ...interface{}) { l.log(LevelWarning, format, args...) }

// Infof logs at LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) { l.log(LevelInfo, format, args...) }

// Debugf logs at LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) { l.log(LevelDebug, format, args...) }
