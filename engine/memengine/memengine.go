// Package memengine is a pure-Go engine honoring the native contract.
// It keeps everything in memory and records every call, so tests can
// assert exactly which operations crossed the boundary. The demo
// console also runs against it.
package memengine

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/wippyai/xlog-go/engine"
)

// WriteRecord is one observed write call.
type WriteRecord struct {
	Instance engine.InstanceID
	Name     string
	Info     engine.WriteInfo
	Msg      string
}

type instance struct {
	id     engine.InstanceID
	name   string
	params engine.Params
	level  int32
	mode   int32
	refs   int

	console     bool
	maxFileSize int64
	maxAliveSec int64
}

// Engine implements engine.Engine in memory.
type Engine struct {
	mu     sync.Mutex
	nextID uint64
	byName map[string]*instance
	byID   map[engine.InstanceID]*instance

	globalOpen   bool
	globalParams engine.Params
	globalLevel  int32

	writes        []WriteRecord
	pendingByName map[string]int

	newCalls      int
	getCalls      int
	oneshotCalls  int
	flushAllCalls int
	releases      map[string]int
	flushes       map[engine.InstanceID]int
	lastParams    *engine.Params
}

// New returns an empty in-memory engine.
func New() *Engine {
	return &Engine{
		byName:        make(map[string]*instance),
		byID:          make(map[engine.InstanceID]*instance),
		pendingByName: make(map[string]int),
		releases:      make(map[string]int),
		flushes:       make(map[engine.InstanceID]int),
	}
}

var _ engine.Engine = (*Engine)(nil)

func (e *Engine) NewInstance(cfg *engine.Params, level int32) engine.InstanceID {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.newCalls++
	e.lastParams = cfg
	if cfg == nil || cfg.LogDir == "" || cfg.NamePrefix == "" {
		return 0
	}

	if inst, ok := e.byName[cfg.NamePrefix]; ok {
		inst.refs++
		return inst.id
	}

	e.nextID++
	inst := &instance{
		id:     engine.InstanceID(e.nextID),
		name:   cfg.NamePrefix,
		params: *cfg,
		level:  level,
		mode:   cfg.Mode,
		refs:   1,
	}
	e.byName[inst.name] = inst
	e.byID[inst.id] = inst
	return inst.id
}

func (e *Engine) GetInstance(namePrefix string) engine.InstanceID {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.getCalls++
	inst, ok := e.byName[namePrefix]
	if !ok {
		return 0
	}
	inst.refs++
	return inst.id
}

func (e *Engine) ReleaseInstance(namePrefix string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.releases[namePrefix]++
	inst, ok := e.byName[namePrefix]
	if !ok {
		return
	}
	inst.refs--
	if inst.refs <= 0 {
		delete(e.byName, inst.name)
		delete(e.byID, inst.id)
	}
}

func (e *Engine) AppenderOpen(cfg *engine.Params, level int32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cfg == nil {
		return
	}
	e.globalOpen = true
	e.globalParams = *cfg
	e.globalLevel = level
}

func (e *Engine) AppenderClose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.globalOpen = false
}

func (e *Engine) Write(id engine.InstanceID, info *engine.WriteInfo, msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	inst, ok := e.byID[id]
	if !ok || info == nil {
		return
	}
	e.writes = append(e.writes, WriteRecord{Instance: id, Name: inst.name, Info: *info, Msg: msg})
	e.pendingByName[inst.name]++
}

func (e *Engine) IsEnabled(id engine.InstanceID, level int32) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	inst, ok := e.byID[id]
	if !ok {
		return false
	}
	return level < engine.LevelNone && inst.level < engine.LevelNone && level >= inst.level
}

func (e *Engine) GetLevel(id engine.InstanceID) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if inst, ok := e.byID[id]; ok {
		return inst.level
	}
	return engine.LevelNone
}

func (e *Engine) SetLevel(id engine.InstanceID, level int32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if inst, ok := e.byID[id]; ok {
		inst.level = level
	}
}

func (e *Engine) SetAppenderMode(id engine.InstanceID, mode int32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if inst, ok := e.byID[id]; ok {
		inst.mode = mode
	}
}

func (e *Engine) Flush(id engine.InstanceID, sync bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	inst, ok := e.byID[id]
	if !ok {
		return
	}
	e.flushes[id]++
	e.pendingByName[inst.name] = 0
}

func (e *Engine) FlushAll(sync bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.flushAllCalls++
	for name := range e.pendingByName {
		e.pendingByName[name] = 0
	}
}

func (e *Engine) SetConsoleLogOpen(id engine.InstanceID, open bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if inst, ok := e.byID[id]; ok {
		inst.console = open
	}
}

func (e *Engine) SetMaxFileSize(id engine.InstanceID, maxBytes int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if inst, ok := e.byID[id]; ok {
		inst.maxFileSize = maxBytes
	}
}

func (e *Engine) SetMaxAliveTime(id engine.InstanceID, seconds int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if inst, ok := e.byID[id]; ok {
		inst.maxAliveSec = seconds
	}
}

func (e *Engine) CurrentLogPath(buf []byte) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.globalOpen {
		return false
	}
	path := filepath.Join(e.globalParams.LogDir, e.globalParams.NamePrefix+".xlog")
	return writeCString(buf, path)
}

func (e *Engine) CurrentLogCachePath(buf []byte) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.globalOpen || e.globalParams.CacheDir == nil {
		return false
	}
	path := filepath.Join(*e.globalParams.CacheDir, e.globalParams.NamePrefix+".xlog.cache")
	return writeCString(buf, path)
}

func (e *Engine) FilepathsFromTimespan(timespan int32, prefix string, buf []byte) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	dir, name, ok := e.resolvePrefix(prefix)
	if !ok {
		return 0
	}
	names := logfileNames(timespan, name)
	for i, n := range names {
		names[i] = filepath.Join(dir, n)
	}
	return writeJoined(buf, names)
}

func (e *Engine) MakeLogfileName(timespan int32, prefix string, buf []byte) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, name, ok := e.resolvePrefix(prefix)
	if !ok {
		return 0
	}
	return writeJoined(buf, logfileNames(timespan, name))
}

func (e *Engine) OneshotFlush(cfg *engine.Params, action *int32) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.oneshotCalls++
	if cfg == nil || action == nil || cfg.LogDir == "" || cfg.NamePrefix == "" {
		return false
	}
	if e.pendingByName[cfg.NamePrefix] > 0 {
		e.pendingByName[cfg.NamePrefix] = 0
		*action = engine.ActionSuccess
	} else {
		*action = engine.ActionUnnecessary
	}
	return true
}

func (e *Engine) Dump(buf []byte) string {
	return strings.ToValidUTF8(strings.ReplaceAll(string(buf), "\x00", ""), ".")
}

func (e *Engine) MemoryDump(buf []byte) string {
	return e.Dump(buf)
}

// resolvePrefix picks the log dir and name a path query refers to: an
// explicit prefix matches a live instance first, then the global
// appender; an empty prefix means the global appender.
func (e *Engine) resolvePrefix(prefix string) (dir, name string, ok bool) {
	if prefix != "" {
		if inst, found := e.byName[prefix]; found {
			return inst.params.LogDir, inst.name, true
		}
		if e.globalOpen && e.globalParams.NamePrefix == prefix {
			return e.globalParams.LogDir, prefix, true
		}
		return "", "", false
	}
	if !e.globalOpen {
		return "", "", false
	}
	return e.globalParams.LogDir, e.globalParams.NamePrefix, true
}

// logfileNames generates one name per day, newest first.
func logfileNames(timespan int32, prefix string) []string {
	if timespan < 0 {
		timespan = 0
	}
	names := make([]string, 0, timespan+1)
	now := time.Now()
	for d := int32(0); d <= timespan; d++ {
		day := now.AddDate(0, 0, -int(d))
		names = append(names, prefix+"_"+day.Format("20060102")+".xlog")
	}
	return names
}

// writeCString copies s into buf with a NUL terminator.
func writeCString(buf []byte, s string) bool {
	if len(s)+1 > len(buf) {
		return false
	}
	n := copy(buf, s)
	buf[n] = 0
	return true
}

// writeJoined copies the newline-joined values into buf and returns the
// required length, terminator included.
func writeJoined(buf []byte, values []string) int {
	if len(values) == 0 {
		return 0
	}
	joined := strings.Join(values, "\n")
	required := len(joined) + 1
	switch {
	case required <= len(buf):
		n := copy(buf, joined)
		buf[n] = 0
	case len(buf) > 0:
		// Truncated copy; the caller is expected to retry with a
		// buffer of the required size.
		n := copy(buf[:len(buf)-1], joined)
		buf[n] = 0
	}
	return required
}
