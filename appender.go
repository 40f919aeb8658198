package xlog

import (
	"github.com/wippyai/xlog-go/engine"
	"github.com/wippyai/xlog-go/errors"
)

// Open opens the engine's single global appender. Unlike New it does
// not yield a handle; the appender is addressed through the package
// functions below and closed with CloseAppender.
func Open(eng engine.Engine, cfg Config, level Level) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	eng.AppenderOpen(cfg.marshal(), int32(level))
	return nil
}

// CloseAppender closes the global appender.
func CloseAppender(eng engine.Engine) {
	eng.AppenderClose()
}

// FlushAll flushes every live instance plus the global appender.
func FlushAll(eng engine.Engine, sync bool) {
	eng.FlushAll(sync)
}

// CurrentLogPath returns the global appender's active log file path.
func CurrentLogPath(eng engine.Engine) (string, bool) {
	return engine.ReadCString(eng.CurrentLogPath)
}

// CurrentLogCachePath returns the global appender's cache file path.
func CurrentLogCachePath(eng engine.Engine) (string, bool) {
	return engine.ReadCString(eng.CurrentLogCachePath)
}

// FilepathsFromTimespan lists log file paths written within timespan
// days from today. Order is engine-defined, typically newest first.
func FilepathsFromTimespan(eng engine.Engine, timespan int32, prefix string) []string {
	p := engine.CleanString(prefix)
	return engine.ReadJoined(func(buf []byte) int {
		return eng.FilepathsFromTimespan(timespan, p, buf)
	})
}

// MakeLogfileName builds the log file names the engine would use for
// the given timespan.
func MakeLogfileName(eng engine.Engine, timespan int32, prefix string) []string {
	p := engine.CleanString(prefix)
	return engine.ReadJoined(func(buf []byte) int {
		return eng.MakeLogfileName(timespan, p, buf)
	})
}

// OneshotFlush flushes buffered logs for cfg without opening an
// appender, returning the engine's file IO action code.
func OneshotFlush(eng engine.Engine, cfg Config) (FileIOAction, error) {
	if err := cfg.Validate(); err != nil {
		return ActionNone, err
	}
	var action int32
	if !eng.OneshotFlush(cfg.marshal(), &action) {
		return ActionNone, errors.InitFailed("oneshot flush " + cfg.NamePrefix)
	}
	return ActionFromInt(action), nil
}

// Dump decodes a binary log buffer into text.
func Dump(eng engine.Engine, buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	return eng.Dump(buf)
}

// MemoryDump decodes an in-memory-only log buffer into text.
func MemoryDump(eng engine.Engine, buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	return eng.MemoryDump(buf)
}
