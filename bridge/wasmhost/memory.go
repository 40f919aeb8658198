package wasmhost

import (
	"context"

	"github.com/tetratelabs/wazero/api"
)

// packPtrLen packs a guest pointer and length into one i64.
// Upper 32 bits carry the pointer, lower 32 the length.
func packPtrLen(ptr, length uint32) uint64 {
	return (uint64(ptr) << 32) | uint64(length)
}

// unpackPtrLen splits a packed i64 back into pointer and length.
func unpackPtrLen(packed uint64) (ptr, length uint32) {
	return uint32(packed >> 32), uint32(packed)
}

// readBytes reads a packed region out of guest memory. A zero length is
// valid and yields an empty slice.
func readBytes(m api.Module, packed uint64) ([]byte, bool) {
	ptr, length := unpackPtrLen(packed)
	if length == 0 {
		return nil, true
	}
	return m.Memory().Read(ptr, length)
}

func readString(m api.Module, packed uint64) (string, bool) {
	b, ok := readBytes(m, packed)
	if !ok {
		return "", false
	}
	return string(b), true
}

// writeString places s into guest memory through the guest's
// "allocate" export and returns the packed region, or 0 on failure.
func writeString(ctx context.Context, m api.Module, s string) uint64 {
	allocate := m.ExportedFunction("allocate")
	if allocate == nil {
		return 0
	}
	results, err := allocate.Call(ctx, uint64(len(s)))
	if err != nil || len(results) == 0 {
		return 0
	}
	ptr := uint32(results[0])
	if !m.Memory().Write(ptr, []byte(s)) {
		return 0
	}
	return packPtrLen(ptr, uint32(len(s)))
}
