package registry

import (
	"sync"
	"sync/atomic"

	xlog "github.com/wippyai/xlog-go"
)

// ID is an opaque numeric handle to a Logger in a table.
// ID 0 is reserved and always invalid.
type ID uint64

// Table maps numeric ids to owning Logger references for callers that
// can only carry an integer across their boundary. Ids come from a
// monotonic counter and are never reused, so a freed id can never be
// confused with a later one. All map access goes through one exclusive
// lock; no operation assumes access without it.
type Table struct {
	nextID  atomic.Uint64
	mu      sync.Mutex
	entries map[ID]*xlog.Logger
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries: make(map[ID]*xlog.Logger),
	}
}

// Default is the process-wide table used by the bridges.
var Default = NewTable()

// Insert stores l and returns its id. The table takes ownership of one
// reference; the caller must not close l afterwards.
func (t *Table) Insert(l *xlog.Logger) ID {
	if l == nil {
		return 0
	}
	id := ID(t.nextID.Add(1))

	t.mu.Lock()
	t.entries[id] = l
	t.mu.Unlock()

	return id
}

// Get returns a new shared reference to the Logger stored under id.
// The clone keeps the native instance alive for the duration of the
// caller's operation even if the id is removed concurrently; the
// caller closes it when done. Returns (nil, false) for unknown ids.
func (t *Table) Get(id ID) (*xlog.Logger, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.entries[id]
	if !ok {
		return nil, false
	}
	return l.Clone(), true
}

// Remove drops the mapping and closes the table's reference, which
// releases the native instance if no other references remain. Removing
// an unknown or already-removed id returns false, never an error.
func (t *Table) Remove(id ID) bool {
	t.mu.Lock()
	l, ok := t.entries[id]
	if ok {
		delete(t.entries, id)
	}
	t.mu.Unlock()

	if !ok {
		return false
	}
	l.Close()
	return true
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Clear removes every entry, closing the table's references.
func (t *Table) Clear() {
	t.mu.Lock()
	loggers := make([]*xlog.Logger, 0, len(t.entries))
	for id, l := range t.entries {
		loggers = append(loggers, l)
		delete(t.entries, id)
	}
	t.mu.Unlock()

	for _, l := range loggers {
		l.Close()
	}
}
