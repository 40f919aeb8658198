// Package numeric is the flat-function bridge for callers that can only
// carry an integer handle across their boundary. Handles come from the
// shared registry table and are never reused; every operation on an
// unknown handle is silently skipped for mutators and returns a zero
// value for queries.
package numeric

import (
	xlog "github.com/wippyai/xlog-go"
	"github.com/wippyai/xlog-go/engine"
	"github.com/wippyai/xlog-go/registry"
)

// CreateLogger creates a native instance and registers it, returning
// its numeric handle. Empty pubKey and cacheDir mean absent. Returns 0
// when the config is invalid or the engine refuses the instance.
func CreateLogger(eng engine.Engine, logDir, namePrefix, pubKey, cacheDir string, cacheDays, mode, compressMode, compressLevel, level int32) uint64 {
	cfg := xlog.NewConfig(logDir, namePrefix).
		WithPubKey(pubKey).
		WithCacheDir(cacheDir).
		WithCacheDays(cacheDays).
		WithMode(xlog.AppenderMode(mode)).
		WithCompressMode(xlog.CompressMode(compressMode)).
		WithCompressLevel(compressLevel)

	l, err := xlog.New(eng, cfg, xlog.LevelFromInt(level))
	if err != nil {
		return 0
	}
	return uint64(registry.Default.Insert(l))
}

// GetLogger looks up a live instance by name prefix and registers a new
// handle to it. Returns 0 when no such instance exists.
func GetLogger(eng engine.Engine, namePrefix string) uint64 {
	l, ok := xlog.Get(eng, namePrefix)
	if !ok {
		return 0
	}
	return uint64(registry.Default.Insert(l))
}

// ReleaseLogger drops the handle, releasing the native instance when it
// was the last reference. Releasing an unknown handle returns false.
func ReleaseLogger(id uint64) bool {
	return registry.Default.Remove(registry.ID(id))
}

// withLogger runs fn against a clone of the registered Logger. The
// clone pins the instance for the duration of fn even if the handle is
// removed concurrently.
func withLogger(id uint64, fn func(*xlog.Logger)) bool {
	l, ok := registry.Default.Get(registry.ID(id))
	if !ok {
		return false
	}
	defer l.Close()
	fn(l)
	return true
}

// IsEnabled reports whether the instance would write at level. Unknown
// handles report false.
func IsEnabled(id uint64, level int32) bool {
	enabled := false
	withLogger(id, func(l *xlog.Logger) {
		enabled = l.IsEnabled(xlog.LevelFromInt(level))
	})
	return enabled
}

// GetLevel returns the instance's minimum level, or -1 for unknown
// handles.
func GetLevel(id uint64) int32 {
	level := int32(-1)
	withLogger(id, func(l *xlog.Logger) {
		level = int32(l.Level())
	})
	return level
}

// SetLevel sets the instance's minimum level.
func SetLevel(id uint64, level int32) {
	withLogger(id, func(l *xlog.Logger) {
		l.SetLevel(xlog.LevelFromInt(level))
	})
}

// SetAppenderMode switches between async and sync appending.
func SetAppenderMode(id uint64, mode int32) {
	withLogger(id, func(l *xlog.Logger) {
		l.SetAppenderMode(xlog.AppenderMode(mode))
	})
}

// Flush flushes the instance's buffered logs.
func Flush(id uint64, sync bool) {
	withLogger(id, func(l *xlog.Logger) {
		l.Flush(sync)
	})
}

// FlushAll flushes every live instance plus the global appender.
func FlushAll(eng engine.Engine, sync bool) {
	xlog.FlushAll(eng, sync)
}

// SetConsoleLogOpen toggles console logging for the instance.
func SetConsoleLogOpen(id uint64, open bool) {
	withLogger(id, func(l *xlog.Logger) {
		l.SetConsoleLogOpen(open)
	})
}

// SetMaxFileSize sets the instance's max log file size in bytes.
func SetMaxFileSize(id uint64, maxBytes int64) {
	withLogger(id, func(l *xlog.Logger) {
		l.SetMaxFileSize(maxBytes)
	})
}

// SetMaxAliveTime sets the instance's max log file age in seconds.
func SetMaxAliveTime(id uint64, seconds int64) {
	withLogger(id, func(l *xlog.Logger) {
		l.SetMaxAliveTime(seconds)
	})
}

// Write writes a message without provenance.
func Write(id uint64, level int32, tag, msg string) {
	withLogger(id, func(l *xlog.Logger) {
		l.Write(xlog.LevelFromInt(level), tag, msg)
	})
}

// WriteWithMeta writes a message with explicit provenance carried over
// from the foreign caller.
func WriteWithMeta(id uint64, level int32, tag, file, fn string, line int32, msg string) {
	withLogger(id, func(l *xlog.Logger) {
		l.WriteWithMeta(xlog.LevelFromInt(level), tag, file, fn, line, msg)
	})
}

// OpenAppender opens the engine's global appender. Returns false when
// the config is invalid.
func OpenAppender(eng engine.Engine, logDir, namePrefix, pubKey, cacheDir string, cacheDays, mode, compressMode, compressLevel, level int32) bool {
	cfg := xlog.NewConfig(logDir, namePrefix).
		WithPubKey(pubKey).
		WithCacheDir(cacheDir).
		WithCacheDays(cacheDays).
		WithMode(xlog.AppenderMode(mode)).
		WithCompressMode(xlog.CompressMode(compressMode)).
		WithCompressLevel(compressLevel)

	return xlog.Open(eng, cfg, xlog.LevelFromInt(level)) == nil
}

// CloseAppender closes the global appender.
func CloseAppender(eng engine.Engine) {
	xlog.CloseAppender(eng)
}

// CurrentLogPath returns the global appender's active log file path, or
// "" when none is open.
func CurrentLogPath(eng engine.Engine) string {
	path, _ := xlog.CurrentLogPath(eng)
	return path
}

// CurrentLogCachePath returns the global appender's cache file path, or
// "" when none is open.
func CurrentLogCachePath(eng engine.Engine) string {
	path, _ := xlog.CurrentLogCachePath(eng)
	return path
}

// FilepathsFromTimespan lists log file paths for the last timespan days.
func FilepathsFromTimespan(eng engine.Engine, timespan int32, prefix string) []string {
	return xlog.FilepathsFromTimespan(eng, timespan, prefix)
}

// MakeLogfileName builds the log file names for the given timespan.
func MakeLogfileName(eng engine.Engine, timespan int32, prefix string) []string {
	return xlog.MakeLogfileName(eng, timespan, prefix)
}

// OneshotFlush flushes buffered logs without opening an appender,
// returning the engine's file IO action code or -1 on failure.
func OneshotFlush(eng engine.Engine, logDir, namePrefix, cacheDir string, cacheDays int32) int32 {
	cfg := xlog.NewConfig(logDir, namePrefix).
		WithCacheDir(cacheDir).
		WithCacheDays(cacheDays)

	action, err := xlog.OneshotFlush(eng, cfg)
	if err != nil {
		return -1
	}
	return int32(action)
}

// Dump decodes a binary log buffer into text.
func Dump(eng engine.Engine, buf []byte) string {
	return xlog.Dump(eng, buf)
}

// MemoryDump decodes an in-memory-only log buffer into text.
func MemoryDump(eng engine.Engine, buf []byte) string {
	return xlog.MemoryDump(eng, buf)
}
