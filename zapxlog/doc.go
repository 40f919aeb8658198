// Package zapxlog adapts zap's structured events onto a single xlog
// write call. Level gating runs before any field rendering: the
// adapter's own gate first (cheap, toggleable at runtime), then the
// native instance's level, and only then are fields folded into the
// final "{k=v, ...}" message.
//
//	core, gate := zapxlog.NewCore(logger, xlog.LevelInfo)
//	log := zap.New(core, zap.AddCaller())
//	log.Info("user login", zap.String("user", "ada"), zap.Int("attempt", 2))
//	gate.SetEnabled(false) // suppress without touching the native instance
package zapxlog
