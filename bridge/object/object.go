// Package object is the owned-object bridge: callers that can hold a
// reference get a Logger object with its own lifetime instead of a
// numeric handle. Construction opens console logging so interactive
// hosts see output immediately.
package object

import (
	xlog "github.com/wippyai/xlog-go"
	"github.com/wippyai/xlog-go/engine"
	"github.com/wippyai/xlog-go/errors"
)

// Logger wraps one owned handle. Close releases it; the native
// instance goes away when the last owner (here or elsewhere) closes.
type Logger struct {
	inner *xlog.Logger
}

// New creates a native instance from cfg. Errors are always typed
// *errors.Error so foreign bindings can map them to their own
// exception taxonomy.
func New(eng engine.Engine, cfg xlog.Config, level xlog.Level) (*Logger, error) {
	l, err := xlog.New(eng, cfg, level)
	if err != nil {
		var e *errors.Error
		if errors.As(err, &e) {
			return nil, e
		}
		return nil, errors.Wrap(errors.PhaseBridge, errors.KindInitFailed, err, "create logger")
	}
	l.SetConsoleLogOpen(true)
	return &Logger{inner: l}, nil
}

// Log writes a message without provenance.
func (o *Logger) Log(level xlog.Level, tag, message string) {
	o.inner.WriteWithMeta(level, tag, "", "", 0, message)
}

// LogWithMeta writes a message with provenance supplied by the caller.
func (o *Logger) LogWithMeta(level xlog.Level, tag, file, fn string, line int32, message string) {
	o.inner.WriteWithMeta(level, tag, file, fn, line, message)
}

// IsEnabled reports whether level would be written.
func (o *Logger) IsEnabled(level xlog.Level) bool {
	return o.inner.IsEnabled(level)
}

// SetLevel sets the instance's minimum level.
func (o *Logger) SetLevel(level xlog.Level) {
	o.inner.SetLevel(level)
}

// Flush flushes buffered logs.
func (o *Logger) Flush(sync bool) {
	o.inner.Flush(sync)
}

// Close releases this owner's reference. Safe to call more than once.
func (o *Logger) Close() {
	o.inner.Close()
}
