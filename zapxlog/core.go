package zapxlog

import (
	"sync/atomic"

	"go.uber.org/zap/zapcore"

	xlog "github.com/wippyai/xlog-go"
)

// Gate is runtime control over the adapter, shared by every clone of a
// Core. Disabling the gate or raising its level suppresses events
// before any formatting work, without touching the native instance.
type Gate struct {
	enabled atomic.Bool
	min     atomic.Int32
	logger  *xlog.Logger
}

// SetEnabled toggles the adapter on or off.
func (g *Gate) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

// Enabled reports whether the adapter forwards events at all.
func (g *Gate) Enabled() bool {
	return g.enabled.Load()
}

// SetLevel sets the minimum level at both the gate and the underlying
// native instance.
func (g *Gate) SetLevel(level xlog.Level) {
	g.logger.SetLevel(level)
	g.min.Store(int32(level))
}

// Level returns the gate's minimum level.
func (g *Gate) Level() xlog.Level {
	return xlog.LevelFromInt(g.min.Load())
}

// Core forwards zap entries to a Logger. Events pass three gates in
// order: the adapter gate, the native instance's level, and only then
// field rendering.
type Core struct {
	gate   *Gate
	logger *xlog.Logger
	tag    string
	fields []zapcore.Field
}

var _ zapcore.Core = (*Core)(nil)

// Option configures a Core.
type Option func(*Core)

// WithTag overrides the tag forwarded with every event. By default the
// entry's logger name is used, falling back to the handle's name
// prefix.
func WithTag(tag string) Option {
	return func(c *Core) {
		c.tag = tag
	}
}

// NewCore builds a Core over logger with the given minimum level. The
// level is applied to the native instance as well. The returned Gate
// toggles the adapter at runtime.
func NewCore(logger *xlog.Logger, level xlog.Level, opts ...Option) (*Core, *Gate) {
	logger.SetLevel(level)

	gate := &Gate{logger: logger}
	gate.enabled.Store(true)
	gate.min.Store(int32(level))

	core := &Core{
		gate:   gate,
		logger: logger,
	}
	for _, opt := range opts {
		opt(core)
	}
	return core, gate
}

// Gate returns the core's runtime gate.
func (c *Core) Gate() *Gate {
	return c.gate
}

func (c *Core) gatePass(level xlog.Level) bool {
	if level >= xlog.LevelNone || !c.gate.enabled.Load() {
		return false
	}
	return int32(level) >= c.gate.min.Load()
}

// Enabled implements zapcore.Core. It consults only the adapter gate;
// the native instance's level is checked in Write, closest to the
// formatting work it guards.
func (c *Core) Enabled(lvl zapcore.Level) bool {
	return c.gatePass(fromZapLevel(lvl))
}

// With implements zapcore.Core.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := &Core{
		gate:   c.gate,
		logger: c.logger,
		tag:    c.tag,
	}
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return clone
}

// Check implements zapcore.Core.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write implements zapcore.Core. No rendering happens unless both the
// gate and the native instance accept the level.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	level := fromZapLevel(ent.Level)
	if !c.gatePass(level) {
		return nil
	}
	if !c.logger.IsEnabled(level) {
		return nil
	}

	msg := renderEvent(ent, c.fields, fields)

	tag := c.tag
	if tag == "" {
		tag = ent.LoggerName
	}

	var file, fn string
	var line int32
	if ent.Caller.Defined {
		file = ent.Caller.File
		fn = ent.Caller.Function
		line = int32(ent.Caller.Line)
	}

	c.logger.WriteWithMeta(level, tag, file, fn, line, msg)
	return nil
}

// Sync implements zapcore.Core with a synchronous engine flush.
func (c *Core) Sync() error {
	c.logger.Flush(true)
	return nil
}

func fromZapLevel(lvl zapcore.Level) xlog.Level {
	switch lvl {
	case zapcore.DebugLevel:
		return xlog.LevelDebug
	case zapcore.InfoLevel:
		return xlog.LevelInfo
	case zapcore.WarnLevel:
		return xlog.LevelWarn
	case zapcore.ErrorLevel:
		return xlog.LevelError
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return xlog.LevelFatal
	default:
		if lvl < zapcore.DebugLevel {
			return xlog.LevelVerbose
		}
		return xlog.LevelNone
	}
}
