package xlog

import (
	"github.com/wippyai/xlog-go/engine"
)

// Level is a log severity. Levels form a strict total order:
// Verbose < Debug < Info < Warn < Error < Fatal < None.
// None disables all output.
type Level int32

const (
	LevelVerbose Level = Level(engine.LevelVerbose)
	LevelDebug   Level = Level(engine.LevelDebug)
	LevelInfo    Level = Level(engine.LevelInfo)
	LevelWarn    Level = Level(engine.LevelWarn)
	LevelError   Level = Level(engine.LevelError)
	LevelFatal   Level = Level(engine.LevelFatal)
	LevelNone    Level = Level(engine.LevelNone)
)

// LevelFromInt maps a raw contract value to a Level. Out-of-range
// values map to LevelNone, matching the engine's behavior.
func LevelFromInt(v int32) Level {
	if v < int32(LevelVerbose) || v > int32(LevelNone) {
		return LevelNone
	}
	return Level(v)
}

func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "none"
	}
}

// AppenderMode controls whether the engine appends asynchronously or
// synchronously.
type AppenderMode int32

const (
	ModeAsync AppenderMode = AppenderMode(engine.ModeAsync)
	ModeSync  AppenderMode = AppenderMode(engine.ModeSync)
)

// CompressMode selects the engine's compression algorithm.
type CompressMode int32

const (
	CompressZlib CompressMode = CompressMode(engine.CompressZlib)
	CompressZstd CompressMode = CompressMode(engine.CompressZstd)
)

// FileIOAction is the result code of a one-shot flush.
type FileIOAction int32

const (
	ActionNone         FileIOAction = FileIOAction(engine.ActionNone)
	ActionSuccess      FileIOAction = FileIOAction(engine.ActionSuccess)
	ActionUnnecessary  FileIOAction = FileIOAction(engine.ActionUnnecessary)
	ActionOpenFailed   FileIOAction = FileIOAction(engine.ActionOpenFailed)
	ActionReadFailed   FileIOAction = FileIOAction(engine.ActionReadFailed)
	ActionWriteFailed  FileIOAction = FileIOAction(engine.ActionWriteFailed)
	ActionCloseFailed  FileIOAction = FileIOAction(engine.ActionCloseFailed)
	ActionRemoveFailed FileIOAction = FileIOAction(engine.ActionRemoveFailed)
)

// ActionFromInt maps a raw contract value to a FileIOAction.
// Unknown values map to ActionNone.
func ActionFromInt(v int32) FileIOAction {
	if v < int32(ActionNone) || v > int32(ActionRemoveFailed) {
		return ActionNone
	}
	return FileIOAction(v)
}
