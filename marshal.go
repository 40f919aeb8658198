package xlog

import (
	"github.com/wippyai/xlog-go/engine"
)

// marshal produces the native parameter block for one call. Every
// string is sanitized of embedded NUL bytes; optional fields left empty
// become nil so the engine sees "feature disabled" rather than an empty
// value. The block and its strings are only valid for the duration of
// the call that consumes them.
func (c Config) marshal() *engine.Params {
	return &engine.Params{
		Mode:          int32(c.Mode),
		LogDir:        engine.CleanString(c.LogDir),
		NamePrefix:    engine.CleanString(c.NamePrefix),
		PubKey:        engine.CleanOpt(c.PubKey),
		CompressMode:  int32(c.CompressMode),
		CompressLevel: c.CompressLevel,
		CacheDir:      engine.CleanOpt(c.CacheDir),
		CacheDays:     c.CacheDays,
	}
}
