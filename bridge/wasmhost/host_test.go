package wasmhost

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/xlog-go/engine/memengine"
	"github.com/wippyai/xlog-go/registry"
)

func TestPackUnpack(t *testing.T) {
	tests := []struct {
		ptr, length uint32
	}{
		{0, 0},
		{1, 1},
		{4096, 128},
		{0xFFFFFFFF, 0xFFFFFFFF},
	}
	for _, tt := range tests {
		packed := packPtrLen(tt.ptr, tt.length)
		ptr, length := unpackPtrLen(packed)
		if ptr != tt.ptr || length != tt.length {
			t.Errorf("roundtrip (%d, %d) -> (%d, %d)", tt.ptr, tt.length, ptr, length)
		}
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	h := NewHost(memengine.New(), WithTable(registry.NewTable()))
	if err := h.Register(ctx, rt); err != nil {
		t.Fatalf("register host module: %v", err)
	}

	// A second registration under the same name must fail rather than
	// silently shadow the first.
	if err := h.Register(ctx, rt); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestHandleOperations(t *testing.T) {
	// The handle surface is callable without a guest: these paths take
	// handles and plain integers only.
	e := memengine.New()
	tbl := registry.NewTable()
	h := NewHost(e, WithTable(tbl))
	ctx := context.Background()

	if got := h.release(ctx, 42); got != 0 {
		t.Errorf("release of unknown handle = %d, want 0", got)
	}
	if got := h.isEnabled(ctx, 42, 2); got != 0 {
		t.Errorf("is_enabled on unknown handle = %d, want 0", got)
	}

	// set_level and flush on unknown handles are silent no-ops.
	h.setLevel(ctx, 42, 5)
	h.flush(ctx, 42, 1)

	h.flushAll(ctx, 1)
	if e.FlushAllCalls() != 1 {
		t.Errorf("flush_all calls = %d", e.FlushAllCalls())
	}
}
