// log.go - minimal leveled-logger seam used by the engine's error paths

package ggm

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the small interface the engine logs construction, patch,
// runtime and queue-overflow errors (§7) through. Embedders supply
// their own implementation (or use SetLogger with a discarding one in
// tests) so the engine package never hard-codes a concrete logging
// backend.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// charmLogger adapts github.com/charmbracelet/log to Logger.
type charmLogger struct {
	l *charmlog.Logger
}

func (c charmLogger) Debugf(format string, args ...interface{}) { c.l.Debugf(format, args...) }
func (c charmLogger) Infof(format string, args ...interface{})  { c.l.Infof(format, args...) }
func (c charmLogger) Warnf(format string, args ...interface{})  { c.l.Warnf(format, args...) }
func (c charmLogger) Errorf(format string, args ...interface{}) { c.l.Errorf(format, args...) }

// NewCharmLogger builds the default Logger implementation: a
// charmbracelet/log console logger with timestamps disabled (the
// engine logs are about program state, not wall-clock events) and
// level-based coloring when stderr is a terminal.
func NewCharmLogger(level charmlog.Level) Logger {
	l := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
		Level:           level,
	})
	return charmLogger{l: l}
}

// discardLogger implements Logger with no-ops; used as the package
// default and by tests that deliberately exercise error paths.
type discardLogger struct{}

func (discardLogger) Debugf(string, ...interface{}) {}
func (discardLogger) Infof(string, ...interface{})  {}
func (discardLogger) Warnf(string, ...interface{})  {}
func (discardLogger) Errorf(string, ...interface{}) {}

// defaultLogger is package state read by NewSynth when a Synth is
// constructed; Synth.SetLogger replaces it for a single synth.
var defaultLogger Logger = discardLogger{}

// SetDefaultLogger overrides the logger new Synths use when none is
// supplied explicitly. A host demo calls this once at startup with
// NewCharmLogger; tests leave it as the discarding default.
func SetDefaultLogger(l Logger) {
	if l == nil {
		l = discardLogger{}
	}
	defaultLogger = l
}
