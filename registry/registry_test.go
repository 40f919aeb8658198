package registry

import (
	"sync"
	"testing"

	xlog "github.com/wippyai/xlog-go"
	"github.com/wippyai/xlog-go/engine/memengine"
)

func newLogger(t *testing.T, e *memengine.Engine, prefix string) *xlog.Logger {
	t.Helper()
	l, err := xlog.New(e, xlog.NewConfig("/logs", prefix), xlog.LevelInfo)
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}
	return l
}

func TestInsertGet(t *testing.T) {
	e := memengine.New()
	tbl := NewTable()

	id := tbl.Insert(newLogger(t, e, "app"))
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	l, ok := tbl.Get(id)
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	defer l.Close()
	if l.NamePrefix() != "app" {
		t.Errorf("prefix = %q, want app", l.NamePrefix())
	}
}

func TestInsertNil(t *testing.T) {
	tbl := NewTable()
	if id := tbl.Insert(nil); id != 0 {
		t.Errorf("Insert(nil) = %d, want 0", id)
	}
}

func TestGet_Unknown(t *testing.T) {
	tbl := NewTable()
	if _, ok := tbl.Get(0); ok {
		t.Error("id 0 must never resolve")
	}
	if _, ok := tbl.Get(12345); ok {
		t.Error("unknown id must not resolve")
	}
}

func TestRemove(t *testing.T) {
	e := memengine.New()
	tbl := NewTable()
	id := tbl.Insert(newLogger(t, e, "app"))

	if !tbl.Remove(id) {
		t.Fatal("first remove must succeed")
	}
	if tbl.Remove(id) {
		t.Error("second remove must report false")
	}
	if _, ok := tbl.Get(id); ok {
		t.Error("removed id must not resolve")
	}
	if e.LiveInstances() != 0 {
		t.Errorf("native instance still live after remove")
	}
}

func TestIDsNeverReused(t *testing.T) {
	e := memengine.New()
	tbl := NewTable()

	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := tbl.Insert(newLogger(t, e, "app"))
		if seen[id] {
			t.Fatalf("id %d handed out twice", id)
		}
		seen[id] = true
		tbl.Remove(id)
	}
}

func TestGetClonePinsInstance(t *testing.T) {
	e := memengine.New()
	tbl := NewTable()
	id := tbl.Insert(newLogger(t, e, "app"))

	l, ok := tbl.Get(id)
	if !ok {
		t.Fatal("lookup failed")
	}

	// Removing the table's reference must not take the instance away
	// from the outstanding clone.
	tbl.Remove(id)
	if e.LiveInstances() != 1 {
		t.Fatal("instance released while a clone is outstanding")
	}
	l.Write(xlog.LevelInfo, "", "still alive")
	if len(e.WritesFor("app")) != 1 {
		t.Error("write through outstanding clone was dropped")
	}

	l.Close()
	if e.LiveInstances() != 0 {
		t.Error("instance not released after last clone closed")
	}
}

func TestConcurrentAccess(t *testing.T) {
	e := memengine.New()
	tbl := NewTable()

	const workers = 16
	var wg sync.WaitGroup
	ids := make([]ID, workers)

	loggers := make([]*xlog.Logger, workers)
	for i := range loggers {
		loggers[i] = newLogger(t, e, "app")
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			ids[i] = tbl.Insert(loggers[i])
		}(i)
	}
	wg.Wait()

	seen := make(map[ID]bool)
	for _, id := range ids {
		if id == 0 || seen[id] {
			t.Fatalf("duplicate or zero id %d", id)
		}
		seen[id] = true
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			if l, ok := tbl.Get(ids[i]); ok {
				l.Write(xlog.LevelInfo, "", "concurrent")
				l.Close()
			}
			tbl.Remove(ids[i])
		}(i)
	}
	wg.Wait()

	if tbl.Len() != 0 {
		t.Errorf("Len = %d after removing everything", tbl.Len())
	}
	if e.LiveInstances() != 0 {
		t.Errorf("%d native instances leaked", e.LiveInstances())
	}
}

func TestClear(t *testing.T) {
	e := memengine.New()
	tbl := NewTable()
	for i := 0; i < 5; i++ {
		tbl.Insert(newLogger(t, e, "app"))
	}

	tbl.Clear()
	if tbl.Len() != 0 {
		t.Errorf("Len = %d after Clear", tbl.Len())
	}
	if e.LiveInstances() != 0 {
		t.Errorf("native instances leaked after Clear")
	}
}
