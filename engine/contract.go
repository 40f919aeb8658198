package engine

// InstanceID identifies one native logger instance.
// The engine returns 0 for failure or absence; this layer never
// interprets the value arithmetically.
type InstanceID uint64

// Raw contract values shared with the native engine. These mirror the
// C enums one to one and must not be reordered.
const (
	LevelVerbose int32 = 0
	LevelDebug   int32 = 1
	LevelInfo    int32 = 2
	LevelWarn    int32 = 3
	LevelError   int32 = 4
	LevelFatal   int32 = 5
	LevelNone    int32 = 6
)

const (
	ModeAsync int32 = 0
	ModeSync  int32 = 1
)

const (
	CompressZlib int32 = 0
	CompressZstd int32 = 1
)

// File IO action codes returned by the one-shot flush operation.
const (
	ActionNone         int32 = 0
	ActionSuccess      int32 = 1
	ActionUnnecessary  int32 = 2
	ActionOpenFailed   int32 = 3
	ActionReadFailed   int32 = 4
	ActionWriteFailed  int32 = 5
	ActionCloseFailed  int32 = 6
	ActionRemoveFailed int32 = 7
)

// Params is the native creation parameter block. Optional fields are
// pointers: nil crosses the boundary as a null pointer, which the
// engine reads as "feature disabled". An empty-but-present string is
// never equivalent to nil here.
type Params struct {
	Mode          int32
	LogDir        string
	NamePrefix    string
	PubKey        *string
	CompressMode  int32
	CompressLevel int32
	CacheDir      *string
	CacheDays     int32
}

// WriteInfo is the per-write metadata record. PID, TID and MainTID may
// be -1, in which case the engine fills in the current process/thread
// identifiers itself.
type WriteInfo struct {
	Level    int32
	Tag      string
	Filename string
	FuncName string
	Line     int32
	Sec      int64
	USec     int64
	PID      int64
	TID      int64
	MainTID  int64
	TraceLog int32
}

// Engine is the fixed operation set the external logging engine
// exposes. Implementations must be safe for concurrent use; per-write
// synchronization is the engine's responsibility.
//
// Mutators deliberately return nothing: the engine no-ops on invalid
// instance ids instead of reporting errors.
type Engine interface {
	// NewInstance creates an instance from cfg. Returns 0 on failure.
	NewInstance(cfg *Params, level int32) InstanceID

	// GetInstance looks up a live instance by name prefix. Returns 0
	// when no such instance exists.
	GetInstance(namePrefix string) InstanceID

	// ReleaseInstance drops the engine's instance registered under the
	// name prefix. Unknown names are ignored.
	ReleaseInstance(namePrefix string)

	// AppenderOpen opens the single global appender.
	AppenderOpen(cfg *Params, level int32)

	// AppenderClose closes the global appender.
	AppenderClose()

	Write(id InstanceID, info *WriteInfo, msg string)
	IsEnabled(id InstanceID, level int32) bool
	GetLevel(id InstanceID) int32
	SetLevel(id InstanceID, level int32)

	SetAppenderMode(id InstanceID, mode int32)
	Flush(id InstanceID, sync bool)
	FlushAll(sync bool)
	SetConsoleLogOpen(id InstanceID, open bool)
	SetMaxFileSize(id InstanceID, maxBytes int64)
	SetMaxAliveTime(id InstanceID, seconds int64)

	// CurrentLogPath writes the global appender's current log path into
	// buf as a NUL-terminated string. Returns false when no path is
	// available or buf is too small.
	CurrentLogPath(buf []byte) bool

	// CurrentLogCachePath is CurrentLogPath for the cache directory.
	CurrentLogCachePath(buf []byte) bool

	// FilepathsFromTimespan writes newline-joined log file paths for
	// the given timespan (days back from today) into buf and returns
	// the byte length required to hold the full result, terminator
	// included. A return value larger than len(buf) means buf was too
	// small and holds a truncated result.
	FilepathsFromTimespan(timespan int32, prefix string, buf []byte) int

	// MakeLogfileName is FilepathsFromTimespan for generated file
	// names rather than existing paths.
	MakeLogfileName(timespan int32, prefix string, buf []byte) int

	// OneshotFlush flushes buffered logs without opening an appender.
	// The action result code is stored through action. Returns false
	// when the operation could not run at all.
	OneshotFlush(cfg *Params, action *int32) bool

	// Dump decodes a binary log buffer into text. The result is copied
	// out of engine-owned storage before returning.
	Dump(buf []byte) string

	// MemoryDump decodes an in-memory-only log buffer into text.
	MemoryDump(buf []byte) string
}
