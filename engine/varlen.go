package engine

import "strings"

// DefaultBufferSize is the initial capacity for variable-length
// queries. Most path results fit on the first call.
const DefaultBufferSize = 4096

// cstring returns the prefix of buf up to the first NUL byte.
func cstring(buf []byte) string {
	if i := strings.IndexByte(string(buf), 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}

// ReadCString runs a fixed-buffer query and returns the NUL-terminated
// result. fn reports whether the engine produced output.
func ReadCString(fn func(buf []byte) bool) (string, bool) {
	buf := make([]byte, DefaultBufferSize)
	if !fn(buf) {
		return "", false
	}
	return cstring(buf), true
}

// ReadJoined runs a variable-length query using the probe-then-resize
// protocol: fn returns the byte length required for the full result,
// terminator included. When the first call's buffer is too small the
// query is retried exactly once with a buffer of the required size; a
// second shortfall yields empty output rather than looping.
//
// The engine joins multiple results with newlines; the joined string is
// split back into the ordered sequence here. An empty result maps to an
// empty slice, never to a one-element slice holding "".
func ReadJoined(fn func(buf []byte) int) []string {
	buf := make([]byte, DefaultBufferSize)
	required := fn(buf)
	if required > len(buf) {
		buf = make([]byte, required)
		if fn(buf) > len(buf) {
			return nil
		}
	}
	s := cstring(buf)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
