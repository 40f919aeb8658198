package zapxlog

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xlog "github.com/wippyai/xlog-go"
	"github.com/wippyai/xlog-go/engine/memengine"
)

func newTestLogger(t *testing.T, e *memengine.Engine) *xlog.Logger {
	t.Helper()
	l, err := xlog.New(e, xlog.NewConfig("/logs", "app"), xlog.LevelVerbose)
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}
	return l
}

func TestCore_ForwardsEvents(t *testing.T) {
	e := memengine.New()
	l := newTestLogger(t, e)
	defer l.Close()

	core, _ := NewCore(l, xlog.LevelDebug)
	log := zap.New(core)
	log.Info("user login", zap.String("user", "ada"), zap.Int("attempt", 2))

	writes := e.WritesFor("app")
	if len(writes) != 1 {
		t.Fatalf("got %d writes, want 1", len(writes))
	}
	msg := writes[0].Msg
	if !strings.HasPrefix(msg, "user login ") {
		t.Errorf("message = %q", msg)
	}
	if !strings.Contains(msg, "{user=ada, attempt=2}") {
		t.Errorf("fields not rendered: %q", msg)
	}
	if writes[0].Info.Level != int32(xlog.LevelInfo) {
		t.Errorf("level = %d", writes[0].Info.Level)
	}
}

func TestCore_LevelGate(t *testing.T) {
	e := memengine.New()
	l := newTestLogger(t, e)
	defer l.Close()

	core, _ := NewCore(l, xlog.LevelWarn)
	log := zap.New(core)

	log.Debug("filtered")
	log.Info("filtered")
	log.Warn("kept")
	log.Error("kept")

	if got := len(e.WritesFor("app")); got != 2 {
		t.Fatalf("got %d writes, want 2", got)
	}
}

func TestCore_GateDisables(t *testing.T) {
	e := memengine.New()
	l := newTestLogger(t, e)
	defer l.Close()

	core, gate := NewCore(l, xlog.LevelDebug)
	log := zap.New(core)

	gate.SetEnabled(false)
	log.Error("suppressed")
	if got := len(e.WritesFor("app")); got != 0 {
		t.Fatalf("gate off but %d writes crossed", got)
	}

	gate.SetEnabled(true)
	log.Error("forwarded")
	if got := len(e.WritesFor("app")); got != 1 {
		t.Fatalf("gate on but got %d writes", got)
	}
}

func TestCore_GateSetLevel(t *testing.T) {
	e := memengine.New()
	l := newTestLogger(t, e)
	defer l.Close()

	core, gate := NewCore(l, xlog.LevelDebug)
	log := zap.New(core)

	gate.SetLevel(xlog.LevelError)
	log.Info("filtered")
	log.Error("kept")

	writes := e.WritesFor("app")
	if len(writes) != 1 || writes[0].Msg != "kept" {
		t.Fatalf("writes = %v", writes)
	}
	if l.Level() != xlog.LevelError {
		t.Errorf("native level = %v, want error", l.Level())
	}
}

func TestCore_With(t *testing.T) {
	e := memengine.New()
	l := newTestLogger(t, e)
	defer l.Close()

	core, _ := NewCore(l, xlog.LevelDebug)
	log := zap.New(core).With(zap.String("session", "s1"))
	log.Info("event", zap.Bool("ok", true))

	writes := e.WritesFor("app")
	if len(writes) != 1 {
		t.Fatalf("got %d writes", len(writes))
	}
	if !strings.Contains(writes[0].Msg, "{session=s1, ok=true}") {
		t.Errorf("bound fields not carried: %q", writes[0].Msg)
	}
}

func TestCore_Tag(t *testing.T) {
	e := memengine.New()
	l := newTestLogger(t, e)
	defer l.Close()

	core, _ := NewCore(l, xlog.LevelDebug, WithTag("net"))
	zap.New(core).Info("event")

	writes := e.WritesFor("app")
	if len(writes) != 1 || writes[0].Info.Tag != "net" {
		t.Fatalf("tag = %q, want net", writes[0].Info.Tag)
	}
}

func TestCore_NamedLoggerTag(t *testing.T) {
	e := memengine.New()
	l := newTestLogger(t, e)
	defer l.Close()

	core, _ := NewCore(l, xlog.LevelDebug)
	zap.New(core).Named("transport").Info("event")

	writes := e.WritesFor("app")
	if len(writes) != 1 || writes[0].Info.Tag != "transport" {
		t.Fatalf("tag = %q, want transport", writes[0].Info.Tag)
	}
}

func TestCore_Caller(t *testing.T) {
	e := memengine.New()
	l := newTestLogger(t, e)
	defer l.Close()

	core, _ := NewCore(l, xlog.LevelDebug)
	zap.New(core, zap.AddCaller()).Info("event")

	writes := e.WritesFor("app")
	if len(writes) != 1 {
		t.Fatalf("got %d writes", len(writes))
	}
	info := writes[0].Info
	if !strings.HasSuffix(info.Filename, "core_test.go") || info.Line <= 0 {
		t.Errorf("caller not carried: %q:%d", info.Filename, info.Line)
	}
}

func TestCore_Sync(t *testing.T) {
	e := memengine.New()
	l := newTestLogger(t, e)
	defer l.Close()

	core, _ := NewCore(l, xlog.LevelDebug)
	if err := core.Sync(); err != nil {
		t.Fatal(err)
	}
	if got := e.FlushCount(l.Instance()); got != 1 {
		t.Errorf("flush count = %d", got)
	}
}

func TestRenderEvent(t *testing.T) {
	tests := []struct {
		name   string
		entry  zapcore.Entry
		fields []zapcore.Field
		want   string
	}{
		{
			name:  "message only",
			entry: zapcore.Entry{Message: "plain"},
			want:  "plain",
		},
		{
			name:  "empty message falls back to name",
			entry: zapcore.Entry{LoggerName: "transport"},
			want:  "transport",
		},
		{
			name:   "mixed field kinds",
			entry:  zapcore.Entry{Message: "m"},
			fields: []zapcore.Field{zap.Int("i", -4), zap.Uint("u", 7), zap.Float64("f", 1.5), zap.Bool("b", false)},
			want:   "m {i=-4, u=7, f=1.5, b=false}",
		},
		{
			name:   "skip fields are dropped",
			entry:  zapcore.Entry{Message: "m"},
			fields: []zapcore.Field{zap.Skip(), zap.String("k", "v")},
			want:   "m {k=v}",
		},
		{
			name:   "fields without message",
			entry:  zapcore.Entry{},
			fields: []zapcore.Field{zap.String("k", "v")},
			want:   "{k=v}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderEvent(tt.entry, nil, tt.fields); got != tt.want {
				t.Errorf("renderEvent = %q, want %q", got, tt.want)
			}
		})
	}
}
