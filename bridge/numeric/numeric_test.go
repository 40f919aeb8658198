package numeric

import (
	"strings"
	"testing"

	"github.com/wippyai/xlog-go/engine"
	"github.com/wippyai/xlog-go/engine/memengine"
)

func create(t *testing.T, e *memengine.Engine, prefix string, level int32) uint64 {
	t.Helper()
	id := CreateLogger(e, "/logs", prefix, "", "", 0,
		engine.ModeAsync, engine.CompressZlib, 6, level)
	if id == 0 {
		t.Fatalf("create %q failed", prefix)
	}
	return id
}

func TestCreateAndRelease(t *testing.T) {
	e := memengine.New()
	id := create(t, e, "app", engine.LevelInfo)

	if !ReleaseLogger(id) {
		t.Fatal("release of live handle failed")
	}
	if ReleaseLogger(id) {
		t.Error("second release must report false")
	}
	if e.LiveInstances() != 0 {
		t.Error("native instance leaked")
	}
}

func TestCreate_InvalidConfig(t *testing.T) {
	e := memengine.New()
	id := CreateLogger(e, "", "app", "", "", 0,
		engine.ModeAsync, engine.CompressZlib, 6, engine.LevelInfo)
	if id != 0 {
		t.Errorf("invalid config yielded handle %d", id)
	}
	if e.NewCalls() != 0 {
		t.Error("invalid config reached the engine")
	}
}

func TestCreate_OptionalsAbsent(t *testing.T) {
	e := memengine.New()
	id := create(t, e, "app", engine.LevelInfo)
	defer ReleaseLogger(id)

	p := e.LastParams()
	if p.PubKey != nil || p.CacheDir != nil {
		t.Error("empty optionals must cross as nil")
	}
}

func TestGetLogger(t *testing.T) {
	e := memengine.New()

	if id := GetLogger(e, "missing"); id != 0 {
		t.Errorf("missing prefix yielded handle %d", id)
	}

	created := create(t, e, "app", engine.LevelInfo)
	got := GetLogger(e, "app")
	if got == 0 {
		t.Fatal("lookup of live prefix failed")
	}
	if got == created {
		t.Error("handles must be distinct even for the same instance")
	}

	// Both handles hold the instance; both must go before it does.
	ReleaseLogger(created)
	if e.LiveInstances() != 1 {
		t.Fatal("instance released while a handle remains")
	}
	ReleaseLogger(got)
	if e.LiveInstances() != 0 {
		t.Error("instance leaked")
	}
}

func TestWriteOperations(t *testing.T) {
	e := memengine.New()
	id := create(t, e, "app", engine.LevelVerbose)
	defer ReleaseLogger(id)

	Write(id, engine.LevelInfo, "tag", "plain")
	WriteWithMeta(id, engine.LevelError, "net", "conn.c", "dial", 42, "refused")

	writes := e.WritesFor("app")
	if len(writes) != 2 {
		t.Fatalf("got %d writes", len(writes))
	}
	if writes[1].Info.Filename != "conn.c" || writes[1].Info.Line != 42 {
		t.Errorf("meta not carried: %+v", writes[1].Info)
	}
}

func TestUnknownHandleOperations(t *testing.T) {
	e := memengine.New()
	const ghost = uint64(999999)

	// Mutators are silently skipped, queries return zero values.
	Write(ghost, engine.LevelInfo, "", "dropped")
	SetLevel(ghost, engine.LevelError)
	Flush(ghost, true)
	SetConsoleLogOpen(ghost, true)
	SetMaxFileSize(ghost, 1024)
	SetMaxAliveTime(ghost, 60)
	SetAppenderMode(ghost, engine.ModeSync)

	if IsEnabled(ghost, engine.LevelFatal) {
		t.Error("unknown handle reported enabled")
	}
	if got := GetLevel(ghost); got != -1 {
		t.Errorf("GetLevel = %d, want -1", got)
	}
	if len(e.Writes()) != 0 {
		t.Error("write through unknown handle crossed the boundary")
	}
}

func TestLevelControls(t *testing.T) {
	e := memengine.New()
	id := create(t, e, "app", engine.LevelInfo)
	defer ReleaseLogger(id)

	if !IsEnabled(id, engine.LevelWarn) {
		t.Error("warn must be enabled at info")
	}
	SetLevel(id, engine.LevelError)
	if IsEnabled(id, engine.LevelWarn) {
		t.Error("warn still enabled after raising to error")
	}
	if got := GetLevel(id); got != engine.LevelError {
		t.Errorf("GetLevel = %d", got)
	}
}

func TestAppenderSurface(t *testing.T) {
	e := memengine.New()

	if !OpenAppender(e, "/logs", "main", "", "", 0,
		engine.ModeAsync, engine.CompressZlib, 6, engine.LevelInfo) {
		t.Fatal("open appender failed")
	}
	if path := CurrentLogPath(e); !strings.HasSuffix(path, "main.xlog") {
		t.Errorf("path = %q", path)
	}

	if paths := FilepathsFromTimespan(e, 1, ""); len(paths) != 2 {
		t.Errorf("got %d paths", len(paths))
	}
	if names := MakeLogfileName(e, 0, ""); len(names) != 1 {
		t.Errorf("got %d names", len(names))
	}

	CloseAppender(e)
	if path := CurrentLogPath(e); path != "" {
		t.Errorf("path after close = %q", path)
	}
}

func TestOneshotFlush(t *testing.T) {
	e := memengine.New()
	id := create(t, e, "app", engine.LevelVerbose)
	Write(id, engine.LevelInfo, "", "buffered")
	ReleaseLogger(id)

	if got := OneshotFlush(e, "/logs", "app", "", 0); got != engine.ActionSuccess {
		t.Errorf("action = %d, want success", got)
	}
	if got := OneshotFlush(e, "/logs", "", "", 0); got != -1 {
		t.Errorf("invalid config: action = %d, want -1", got)
	}
}

func TestFlushAll(t *testing.T) {
	e := memengine.New()
	FlushAll(e, false)
	if e.FlushAllCalls() != 1 {
		t.Errorf("flush all calls = %d", e.FlushAllCalls())
	}
}

func TestDumps(t *testing.T) {
	e := memengine.New()
	if got := Dump(e, []byte("raw")); got != "raw" {
		t.Errorf("Dump = %q", got)
	}
	if got := MemoryDump(e, nil); got != "" {
		t.Errorf("MemoryDump(nil) = %q", got)
	}
}
