package engine

import "strings"

// CleanString strips embedded NUL bytes from s. The native boundary
// treats NUL as a terminator, so an embedded one would silently cut the
// string short; dropping the byte is the defined policy rather than an
// error.
func CleanString(s string) string {
	if !strings.ContainsRune(s, 0) {
		return s
	}
	return strings.ReplaceAll(s, "\x00", "")
}

// CleanOpt converts an optional string value into its marshalled form:
// empty means absent and crosses the boundary as nil.
func CleanOpt(s string) *string {
	if s == "" {
		return nil
	}
	clean := CleanString(s)
	return &clean
}
