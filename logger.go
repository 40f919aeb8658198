package xlog

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/wippyai/xlog-go/engine"
	"github.com/wippyai/xlog-go/errors"
)

// Logger is a shareable handle to one native logger instance.
//
// A Logger is never copied as a value; additional owners are created
// with Clone. Every handle is closed at most once, and the native
// instance is released exactly once, when the last handle closes.
// All operations are safe for concurrent use from multiple goroutines;
// per-write synchronization is the engine's responsibility.
type Logger struct {
	shared *sharedInstance
	closed atomic.Bool
}

type sharedInstance struct {
	eng        engine.Engine
	id         engine.InstanceID
	namePrefix string
	refs       atomic.Int64
}

func newLogger(eng engine.Engine, id engine.InstanceID, namePrefix string) *Logger {
	s := &sharedInstance{
		eng:        eng,
		id:         id,
		namePrefix: namePrefix,
	}
	s.refs.Store(1)
	return &Logger{shared: s}
}

// New validates cfg, marshals it and creates a native instance.
// Validation failures never reach the engine.
func New(eng engine.Engine, cfg Config, level Level) (*Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	id := eng.NewInstance(cfg.marshal(), int32(level))
	if id == 0 {
		return nil, errors.InitFailed("new instance " + cfg.NamePrefix)
	}
	return newLogger(eng, id, cfg.NamePrefix), nil
}

// Get looks up a live instance by name prefix. Absence is reported
// through the boolean, not as an error.
func Get(eng engine.Engine, namePrefix string) (*Logger, bool) {
	id := eng.GetInstance(engine.CleanString(namePrefix))
	if id == 0 {
		return nil, false
	}
	return newLogger(eng, id, namePrefix), true
}

// Clone returns a new handle sharing the same native instance.
func (l *Logger) Clone() *Logger {
	l.shared.refs.Add(1)
	return &Logger{shared: l.shared}
}

// Close releases this handle. Closing the last handle releases the
// native instance; closing an already-closed handle is a no-op.
func (l *Logger) Close() {
	if !l.closed.CompareAndSwap(false, true) {
		return
	}
	if l.shared.refs.Add(-1) == 0 {
		l.shared.eng.ReleaseInstance(engine.CleanString(l.shared.namePrefix))
	}
}

// NamePrefix returns the instance's lookup key.
func (l *Logger) NamePrefix() string {
	return l.shared.namePrefix
}

// Instance returns the raw native instance id.
func (l *Logger) Instance() engine.InstanceID {
	return l.shared.id
}

// IsEnabled reports whether events at level would be written. Every
// write path checks this before doing any formatting work.
func (l *Logger) IsEnabled(level Level) bool {
	return l.shared.eng.IsEnabled(l.shared.id, int32(level))
}

// Level returns the instance's configured minimum level.
func (l *Logger) Level() Level {
	return LevelFromInt(l.shared.eng.GetLevel(l.shared.id))
}

// SetLevel sets the instance's minimum level. Applies to every clone.
func (l *Logger) SetLevel(level Level) {
	l.shared.eng.SetLevel(l.shared.id, int32(level))
}

// SetAppenderMode switches between async and sync appending.
func (l *Logger) SetAppenderMode(mode AppenderMode) {
	l.shared.eng.SetAppenderMode(l.shared.id, int32(mode))
}

// Flush flushes buffered logs for this instance.
func (l *Logger) Flush(sync bool) {
	l.shared.eng.Flush(l.shared.id, sync)
}

// SetConsoleLogOpen enables or disables console logging.
func (l *Logger) SetConsoleLogOpen(open bool) {
	l.shared.eng.SetConsoleLogOpen(l.shared.id, open)
}

// SetMaxFileSize sets the max log file size in bytes (0 disables splitting).
func (l *Logger) SetMaxFileSize(maxBytes int64) {
	l.shared.eng.SetMaxFileSize(l.shared.id, maxBytes)
}

// SetMaxAliveTime sets the max log file age in seconds before rotation.
func (l *Logger) SetMaxAliveTime(seconds int64) {
	l.shared.eng.SetMaxAliveTime(l.shared.id, seconds)
}

// Log writes msg, capturing the caller's file and line. An empty tag
// defaults to the name prefix.
func (l *Logger) Log(level Level, tag, msg string) {
	if !l.IsEnabled(level) {
		return
	}
	var file string
	var line int
	if _, f, ln, ok := runtime.Caller(1); ok {
		file, line = f, ln
	}
	l.write(level, tag, file, "", int32(line), msg)
}

// Write writes msg without provenance.
func (l *Logger) Write(level Level, tag, msg string) {
	if !l.IsEnabled(level) {
		return
	}
	l.write(level, tag, "", "", 0, msg)
}

// WriteWithMeta writes msg with explicit provenance. Use this when the
// caller already carries file/function/line, for example a bridge.
func (l *Logger) WriteWithMeta(level Level, tag, file, fn string, line int32, msg string) {
	if !l.IsEnabled(level) {
		return
	}
	l.write(level, tag, file, fn, line, msg)
}

func (l *Logger) write(level Level, tag, file, fn string, line int32, msg string) {
	if tag == "" {
		tag = l.shared.namePrefix
	}
	now := time.Now()
	info := &engine.WriteInfo{
		Level:    int32(level),
		Tag:      engine.CleanString(tag),
		Filename: engine.CleanString(file),
		FuncName: engine.CleanString(fn),
		Line:     line,
		Sec:      now.Unix(),
		USec:     int64(now.Nanosecond() / 1000),
		PID:      -1,
		TID:      -1,
		MainTID:  -1,
		TraceLog: 0,
	}
	l.shared.eng.Write(l.shared.id, info, engine.CleanString(msg))
}
