// Package native binds the real mars xlog appender through cgo. It is
// compiled only with the marsxlog build tag, since it needs the
// prebuilt native library on the link path; everything else in the
// module runs against any engine.Engine, typically memengine in tests.
package native
