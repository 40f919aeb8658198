// Package xlog is a safety boundary around an opaque native logging
// engine. The engine owns buffering, compression, encryption and file
// rotation; this package owns everything that can go wrong at the
// boundary: handle lifetime, string marshalling, and variable-length
// output retrieval.
//
// # Architecture Overview
//
// The module is organized into packages with distinct responsibilities:
//
//	xlog/            Core Logger handle, Config, levels, appender ops
//	├── engine/      Native engine contract and boundary conventions
//	│   ├── memengine/  In-memory engine for tests and demos
//	│   └── native/     cgo binding to the real engine (build tag marsxlog)
//	├── errors/      Structured error types
//	├── registry/    Numeric handle table for integer-only callers
//	├── zapxlog/     zapcore.Core forwarding structured events to a Logger
//	├── bridge/
//	│   ├── numeric/ Flat functions over 64-bit handle ids
//	│   ├── object/  Constructible logger object
//	│   ├── single/  Config builder producing a minimal logger
//	│   └── wasmhost/ wazero host module exporting the numeric surface
//	└── cmd/xlog-console/  Interactive demo console
//
// # Quick Start
//
// Create a logger against an engine and write through it:
//
//	eng := memengine.New()
//	logger, err := xlog.New(eng, xlog.NewConfig("/tmp/logs", "app"), xlog.LevelInfo)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logger.Close()
//
//	logger.Log(xlog.LevelInfo, "boot", "service started")
//	logger.Flush(true)
//
// # Handle Lifetime
//
// A Logger is shared by cloning, never by copying. Each clone must be
// closed once; the native instance is released exactly once, when the
// last clone closes. The registry package stores owning clones behind
// small integer ids for callers that cannot hold Go objects.
package xlog
