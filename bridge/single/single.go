// Package single is the builder-style bridge for hosts that configure
// one global logger up front. Setters accumulate into the builder and
// Build performs the single creation call; a failed build is reported
// as an error, never a panic, so embedding hosts stay alive.
package single

import (
	xlog "github.com/wippyai/xlog-go"
	"github.com/wippyai/xlog-go/engine"
)

// Builder accumulates logger options.
type Builder struct {
	eng      engine.Engine
	logDir   string
	prefix   string
	pubKey   string
	cacheDir string
	async    bool
	console  bool
	level    xlog.Level
}

// NewBuilder starts a builder with the required fields and the usual
// defaults: async appending, console off, level info.
func NewBuilder(eng engine.Engine, logDir, namePrefix string) *Builder {
	return &Builder{
		eng:    eng,
		logDir: logDir,
		prefix: namePrefix,
		async:  true,
		level:  xlog.LevelInfo,
	}
}

// PubKey sets the encryption public key.
func (b *Builder) PubKey(key string) *Builder {
	b.pubKey = key
	return b
}

// CacheDir sets the cache directory.
func (b *Builder) CacheDir(dir string) *Builder {
	b.cacheDir = dir
	return b
}

// Async selects async (true) or sync (false) appending.
func (b *Builder) Async(async bool) *Builder {
	b.async = async
	return b
}

// Console toggles console logging on the built logger.
func (b *Builder) Console(open bool) *Builder {
	b.console = open
	return b
}

// Level sets the minimum level.
func (b *Builder) Level(level xlog.Level) *Builder {
	b.level = level
	return b
}

// Build creates the native instance.
func (b *Builder) Build() (*Logger, error) {
	mode := xlog.ModeAsync
	if !b.async {
		mode = xlog.ModeSync
	}
	cfg := xlog.NewConfig(b.logDir, b.prefix).
		WithPubKey(b.pubKey).
		WithCacheDir(b.cacheDir).
		WithMode(mode)

	l, err := xlog.New(b.eng, cfg, b.level)
	if err != nil {
		return nil, err
	}
	l.SetConsoleLogOpen(b.console)
	return &Logger{inner: l}, nil
}

// Logger is the single host-wide logger produced by a Builder.
type Logger struct {
	inner *xlog.Logger
}

// Log writes a message.
func (s *Logger) Log(level xlog.Level, tag, message string) {
	s.inner.Write(level, tag, message)
}

// Flush flushes buffered logs.
func (s *Logger) Flush(sync bool) {
	s.inner.Flush(sync)
}

// Close releases the logger. Safe to call more than once.
func (s *Logger) Close() {
	s.inner.Close()
}
