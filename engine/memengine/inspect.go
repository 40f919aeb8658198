package memengine

import "github.com/wippyai/xlog-go/engine"

// Inspection accessors used by tests and the demo console. All return
// snapshots taken under the engine lock.

// Writes returns every write observed so far.
func (e *Engine) Writes() []WriteRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]WriteRecord, len(e.writes))
	copy(out, e.writes)
	return out
}

// WritesFor returns the writes routed to the instance registered under
// namePrefix, including writes to instances already released.
func (e *Engine) WritesFor(namePrefix string) []WriteRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []WriteRecord
	for _, w := range e.writes {
		if w.Name == namePrefix {
			out = append(out, w)
		}
	}
	return out
}

// NewCalls returns how many times NewInstance was invoked.
func (e *Engine) NewCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.newCalls
}

// GetCalls returns how many times GetInstance was invoked.
func (e *Engine) GetCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.getCalls
}

// OneshotCalls returns how many times OneshotFlush was invoked.
func (e *Engine) OneshotCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.oneshotCalls
}

// Releases returns how many times ReleaseInstance was invoked for the
// given name prefix.
func (e *Engine) Releases(namePrefix string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.releases[namePrefix]
}

// FlushCount returns how many times Flush was invoked for id.
func (e *Engine) FlushCount(id engine.InstanceID) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.flushes[id]
}

// FlushAllCalls returns how many times FlushAll was invoked.
func (e *Engine) FlushAllCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.flushAllCalls
}

// LiveInstances returns the number of instances currently alive.
func (e *Engine) LiveInstances() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.byID)
}

// LastParams returns the parameter block passed to the most recent
// NewInstance call, or nil.
func (e *Engine) LastParams() *engine.Params {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastParams
}
