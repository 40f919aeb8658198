// Package engine defines the contract of the external native logging
// engine: the fixed operation set, the parameter and metadata record
// layouts, and the string and buffer conventions used at the boundary.
//
// The package contains no logging logic of its own. Buffering,
// compression, encryption and file rotation all live behind the Engine
// interface; this layer only guarantees that values cross the boundary
// safely (no embedded NUL bytes, nil for absent optionals, bounded
// retry for variable-length output).
package engine
