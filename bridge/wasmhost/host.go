// Package wasmhost exposes the logging surface to WebAssembly guests as
// a wazero host module. Strings cross the boundary as packed i64
// pointer+length pairs into guest memory; host-to-guest strings are
// placed through the guest's "allocate" export. Logger handles are
// numeric registry ids, so a guest can never hold a dangling pointer.
package wasmhost

import (
	"context"
	"encoding/json"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	xlog "github.com/wippyai/xlog-go"
	"github.com/wippyai/xlog-go/engine"
	"github.com/wippyai/xlog-go/registry"
)

// ModuleName is the import module guests link against.
const ModuleName = "xlog_host"

// Host wires one engine and one handle table into a wazero runtime.
type Host struct {
	eng   engine.Engine
	table *registry.Table
	log   *zap.Logger
}

// Option configures a Host.
type Option func(*Host)

// WithTable uses a dedicated handle table instead of the process-wide
// default.
func WithTable(t *registry.Table) Option {
	return func(h *Host) {
		h.table = t
	}
}

// WithLogger sets the host's own diagnostic logger.
func WithLogger(log *zap.Logger) Option {
	return func(h *Host) {
		h.log = log
	}
}

// NewHost creates a Host over eng.
func NewHost(eng engine.Engine, opts ...Option) *Host {
	h := &Host{
		eng:   eng,
		table: registry.Default,
		log:   engine.Logger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// wireConfig is the JSON config guests pass to create.
type wireConfig struct {
	LogDir        string `json:"log_dir"`
	NamePrefix    string `json:"name_prefix"`
	PubKey        string `json:"pub_key,omitempty"`
	CacheDir      string `json:"cache_dir,omitempty"`
	CacheDays     int32  `json:"cache_days,omitempty"`
	Mode          int32  `json:"mode"`
	CompressMode  int32  `json:"compress_mode"`
	CompressLevel int32  `json:"compress_level"`
}

// wireMeta is the JSON payload for write_meta.
type wireMeta struct {
	Tag      string `json:"tag,omitempty"`
	Filename string `json:"file,omitempty"`
	FuncName string `json:"func,omitempty"`
	Line     int32  `json:"line,omitempty"`
	Message  string `json:"message"`
}

// Register instantiates the host module on rt. Call once per runtime
// before instantiating guests that import it.
func (h *Host) Register(ctx context.Context, rt wazero.Runtime) error {
	builder := rt.NewHostModuleBuilder(ModuleName)

	builder.NewFunctionBuilder().
		WithFunc(h.create).
		Export("create")
	builder.NewFunctionBuilder().
		WithFunc(h.get).
		Export("get")
	builder.NewFunctionBuilder().
		WithFunc(h.release).
		Export("release")
	builder.NewFunctionBuilder().
		WithFunc(h.isEnabled).
		Export("is_enabled")
	builder.NewFunctionBuilder().
		WithFunc(h.setLevel).
		Export("set_level")
	builder.NewFunctionBuilder().
		WithFunc(h.write).
		Export("write")
	builder.NewFunctionBuilder().
		WithFunc(h.writeMeta).
		Export("write_meta")
	builder.NewFunctionBuilder().
		WithFunc(h.flush).
		Export("flush")
	builder.NewFunctionBuilder().
		WithFunc(h.flushAll).
		Export("flush_all")
	builder.NewFunctionBuilder().
		WithFunc(h.currentLogPath).
		Export("current_log_path")

	_, err := builder.Instantiate(ctx)
	return err
}

// create decodes a JSON config from guest memory and creates an
// instance, returning its handle or 0.
func (h *Host) create(ctx context.Context, m api.Module, cfgPacked uint64, level int32) uint64 {
	payload, ok := readBytes(m, cfgPacked)
	if !ok {
		return 0
	}
	var wc wireConfig
	if err := json.Unmarshal(payload, &wc); err != nil {
		h.log.Warn("guest sent malformed config", zap.Error(err))
		return 0
	}

	cfg := xlog.NewConfig(wc.LogDir, wc.NamePrefix).
		WithPubKey(wc.PubKey).
		WithCacheDir(wc.CacheDir).
		WithCacheDays(wc.CacheDays).
		WithMode(xlog.AppenderMode(wc.Mode)).
		WithCompressMode(xlog.CompressMode(wc.CompressMode)).
		WithCompressLevel(wc.CompressLevel)

	l, err := xlog.New(h.eng, cfg, xlog.LevelFromInt(level))
	if err != nil {
		h.log.Warn("guest create failed", zap.String("prefix", wc.NamePrefix), zap.Error(err))
		return 0
	}
	return uint64(h.table.Insert(l))
}

// get resolves a name prefix to a new handle, or 0.
func (h *Host) get(ctx context.Context, m api.Module, namePacked uint64) uint64 {
	name, ok := readString(m, namePacked)
	if !ok {
		return 0
	}
	l, found := xlog.Get(h.eng, name)
	if !found {
		return 0
	}
	return uint64(h.table.Insert(l))
}

// release drops a handle. Returns 1 when the handle was live.
func (h *Host) release(ctx context.Context, handle uint64) uint32 {
	if h.table.Remove(registry.ID(handle)) {
		return 1
	}
	return 0
}

func (h *Host) isEnabled(ctx context.Context, handle uint64, level int32) uint32 {
	l, ok := h.table.Get(registry.ID(handle))
	if !ok {
		return 0
	}
	defer l.Close()
	if l.IsEnabled(xlog.LevelFromInt(level)) {
		return 1
	}
	return 0
}

func (h *Host) setLevel(ctx context.Context, handle uint64, level int32) {
	l, ok := h.table.Get(registry.ID(handle))
	if !ok {
		return
	}
	defer l.Close()
	l.SetLevel(xlog.LevelFromInt(level))
}

func (h *Host) write(ctx context.Context, m api.Module, handle uint64, level int32, tagPacked, msgPacked uint64) {
	l, ok := h.table.Get(registry.ID(handle))
	if !ok {
		return
	}
	defer l.Close()

	tag, _ := readString(m, tagPacked)
	msg, ok := readString(m, msgPacked)
	if !ok {
		return
	}
	l.Write(xlog.LevelFromInt(level), tag, msg)
}

func (h *Host) writeMeta(ctx context.Context, m api.Module, handle uint64, level int32, metaPacked uint64) {
	l, ok := h.table.Get(registry.ID(handle))
	if !ok {
		return
	}
	defer l.Close()

	payload, ok := readBytes(m, metaPacked)
	if !ok {
		return
	}
	var wm wireMeta
	if err := json.Unmarshal(payload, &wm); err != nil {
		h.log.Warn("guest sent malformed write meta", zap.Error(err))
		return
	}
	l.WriteWithMeta(xlog.LevelFromInt(level), wm.Tag, wm.Filename, wm.FuncName, wm.Line, wm.Message)
}

func (h *Host) flush(ctx context.Context, handle uint64, sync uint32) {
	l, ok := h.table.Get(registry.ID(handle))
	if !ok {
		return
	}
	defer l.Close()
	l.Flush(sync != 0)
}

func (h *Host) flushAll(ctx context.Context, sync uint32) {
	xlog.FlushAll(h.eng, sync != 0)
}

// currentLogPath writes the global appender's log path into guest
// memory, returning packed ptr+len or 0 when no appender is open.
func (h *Host) currentLogPath(ctx context.Context, m api.Module) uint64 {
	path, ok := xlog.CurrentLogPath(h.eng)
	if !ok {
		return 0
	}
	return writeString(ctx, m, path)
}
