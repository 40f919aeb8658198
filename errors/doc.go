// Package errors provides structured error types for the xlog boundary layer.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Two kinds matter to callers: invalid_config, raised locally
// before any native call, and init_failed, raised when the engine returns a
// failure sentinel. Lookup misses and unknown handle ids are modeled as
// absence, not as errors.
//
// Example:
//
//	if _, err := xlog.New(eng, cfg, xlog.LevelInfo); err != nil {
//		var xerr *errors.Error
//		if stderrors.As(err, &xerr) && xerr.Kind == errors.KindInvalidConfig {
//			// fix the config, no native state was touched
//		}
//	}
package errors
