//go:build marsxlog

package native

/*
#cgo LDFLAGS: -lmarsxlog -lstdc++ -lz
#include <stdlib.h>
#include <stdint.h>
#include <stddef.h>
#include <sys/time.h>

typedef struct mars_xlog_config_t {
    int mode;
    const char* logdir;
    const char* nameprefix;
    const char* pub_key;
    int compress_mode;
    int compress_level;
    const char* cache_dir;
    int cache_days;
} mars_xlog_config_t;

typedef struct XLoggerInfo_t {
    int level;
    const char* tag;
    const char* filename;
    const char* func_name;
    int line;
    struct timeval timeval;
    intmax_t pid;
    intmax_t tid;
    intmax_t maintid;
    int traceLog;
} XLoggerInfo_t;

extern uintptr_t mars_xlog_new_instance(const mars_xlog_config_t* cfg, int level);
extern uintptr_t mars_xlog_get_instance(const char* nameprefix);
extern void mars_xlog_release_instance(const char* nameprefix);

extern void mars_xlog_appender_open(const mars_xlog_config_t* cfg, int level);
extern void mars_xlog_appender_close(void);

extern void mars_xlog_write(uintptr_t instance, const XLoggerInfo_t* info, const char* log);
extern int mars_xlog_is_enabled(uintptr_t instance, int level);
extern int mars_xlog_get_level(uintptr_t instance);
extern void mars_xlog_set_level(uintptr_t instance, int level);

extern void mars_xlog_set_appender_mode(uintptr_t instance, int mode);
extern void mars_xlog_flush(uintptr_t instance, int is_sync);
extern void mars_xlog_flush_all(int is_sync);
extern void mars_xlog_set_console_log_open(uintptr_t instance, int is_open);
extern void mars_xlog_set_max_file_size(uintptr_t instance, long max_file_size);
extern void mars_xlog_set_max_alive_time(uintptr_t instance, long alive_seconds);

extern int mars_xlog_get_current_log_path(char* buf, unsigned int len);
extern int mars_xlog_get_current_log_cache_path(char* buf, unsigned int len);

extern size_t mars_xlog_get_filepath_from_timespan(int timespan, const char* prefix, char* buf, size_t len);
extern size_t mars_xlog_make_logfile_name(int timespan, const char* prefix, char* buf, size_t len);

extern int mars_xlog_oneshot_flush(const mars_xlog_config_t* cfg, int* result_action);

extern const char* mars_xlog_dump(const void* buffer, size_t len);
extern const char* mars_xlog_memory_dump(const void* buffer, size_t len);

extern void mars_xlog_set_console_fun(int fun);
*/
import "C"

import (
	"unsafe"

	"github.com/wippyai/xlog-go/engine"
)

// Engine is the cgo-backed engine. It is stateless on the Go side; all
// instance state lives in the native library, keyed by name prefix.
type Engine struct{}

// New returns the native engine.
func New() *Engine {
	return &Engine{}
}

var _ engine.Engine = (*Engine)(nil)

// cstr allocates a C copy of s. The caller frees it.
func cstr(s string) *C.char {
	return C.CString(s)
}

// optCstr allocates a C copy of *p, or returns nil for an absent value.
func optCstr(p *string) *C.char {
	if p == nil {
		return nil
	}
	return C.CString(*p)
}

func freeCstr(p *C.char) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}

// marshalConfig builds the C config. Strings are freed by the returned
// cleanup; the config must not outlive it.
func marshalConfig(cfg *engine.Params) (*C.mars_xlog_config_t, func()) {
	logdir := cstr(cfg.LogDir)
	nameprefix := cstr(cfg.NamePrefix)
	pubKey := optCstr(cfg.PubKey)
	cacheDir := optCstr(cfg.CacheDir)

	cc := &C.mars_xlog_config_t{
		mode:           C.int(cfg.Mode),
		logdir:         logdir,
		nameprefix:     nameprefix,
		pub_key:        pubKey,
		compress_mode:  C.int(cfg.CompressMode),
		compress_level: C.int(cfg.CompressLevel),
		cache_dir:      cacheDir,
		cache_days:     C.int(cfg.CacheDays),
	}
	return cc, func() {
		freeCstr(logdir)
		freeCstr(nameprefix)
		freeCstr(pubKey)
		freeCstr(cacheDir)
	}
}

func (e *Engine) NewInstance(cfg *engine.Params, level int32) engine.InstanceID {
	if cfg == nil {
		return 0
	}
	cc, free := marshalConfig(cfg)
	defer free()
	return engine.InstanceID(C.mars_xlog_new_instance(cc, C.int(level)))
}

func (e *Engine) GetInstance(namePrefix string) engine.InstanceID {
	cs := cstr(namePrefix)
	defer freeCstr(cs)
	return engine.InstanceID(C.mars_xlog_get_instance(cs))
}

func (e *Engine) ReleaseInstance(namePrefix string) {
	cs := cstr(namePrefix)
	defer freeCstr(cs)
	C.mars_xlog_release_instance(cs)
}

func (e *Engine) AppenderOpen(cfg *engine.Params, level int32) {
	if cfg == nil {
		return
	}
	cc, free := marshalConfig(cfg)
	defer free()
	C.mars_xlog_appender_open(cc, C.int(level))
}

func (e *Engine) AppenderClose() {
	C.mars_xlog_appender_close()
}

func (e *Engine) Write(id engine.InstanceID, info *engine.WriteInfo, msg string) {
	if info == nil {
		return
	}
	tag := cstr(info.Tag)
	filename := cstr(info.Filename)
	funcName := cstr(info.FuncName)
	log := cstr(msg)
	defer freeCstr(tag)
	defer freeCstr(filename)
	defer freeCstr(funcName)
	defer freeCstr(log)

	ci := C.XLoggerInfo_t{
		level:     C.int(info.Level),
		tag:       tag,
		filename:  filename,
		func_name: funcName,
		line:      C.int(info.Line),
		pid:       C.intmax_t(info.PID),
		tid:       C.intmax_t(info.TID),
		maintid:   C.intmax_t(info.MainTID),
		traceLog:  C.int(info.TraceLog),
	}
	ci.timeval.tv_sec = C.long(info.Sec)
	ci.timeval.tv_usec = C.long(info.USec)

	C.mars_xlog_write(C.uintptr_t(id), &ci, log)
}

func (e *Engine) IsEnabled(id engine.InstanceID, level int32) bool {
	return C.mars_xlog_is_enabled(C.uintptr_t(id), C.int(level)) != 0
}

func (e *Engine) GetLevel(id engine.InstanceID) int32 {
	return int32(C.mars_xlog_get_level(C.uintptr_t(id)))
}

func (e *Engine) SetLevel(id engine.InstanceID, level int32) {
	C.mars_xlog_set_level(C.uintptr_t(id), C.int(level))
}

func (e *Engine) SetAppenderMode(id engine.InstanceID, mode int32) {
	C.mars_xlog_set_appender_mode(C.uintptr_t(id), C.int(mode))
}

func (e *Engine) Flush(id engine.InstanceID, sync bool) {
	C.mars_xlog_flush(C.uintptr_t(id), cbool(sync))
}

func (e *Engine) FlushAll(sync bool) {
	C.mars_xlog_flush_all(cbool(sync))
}

func (e *Engine) SetConsoleLogOpen(id engine.InstanceID, open bool) {
	C.mars_xlog_set_console_log_open(C.uintptr_t(id), cbool(open))
}

func (e *Engine) SetMaxFileSize(id engine.InstanceID, maxBytes int64) {
	C.mars_xlog_set_max_file_size(C.uintptr_t(id), C.long(maxBytes))
}

func (e *Engine) SetMaxAliveTime(id engine.InstanceID, seconds int64) {
	C.mars_xlog_set_max_alive_time(C.uintptr_t(id), C.long(seconds))
}

func (e *Engine) CurrentLogPath(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	p := (*C.char)(unsafe.Pointer(&buf[0]))
	return C.mars_xlog_get_current_log_path(p, C.uint(len(buf))) != 0
}

func (e *Engine) CurrentLogCachePath(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	p := (*C.char)(unsafe.Pointer(&buf[0]))
	return C.mars_xlog_get_current_log_cache_path(p, C.uint(len(buf))) != 0
}

func (e *Engine) FilepathsFromTimespan(timespan int32, prefix string, buf []byte) int {
	cs := cstr(prefix)
	defer freeCstr(cs)
	var p *C.char
	if len(buf) > 0 {
		p = (*C.char)(unsafe.Pointer(&buf[0]))
	}
	return int(C.mars_xlog_get_filepath_from_timespan(C.int(timespan), cs, p, C.size_t(len(buf))))
}

func (e *Engine) MakeLogfileName(timespan int32, prefix string, buf []byte) int {
	cs := cstr(prefix)
	defer freeCstr(cs)
	var p *C.char
	if len(buf) > 0 {
		p = (*C.char)(unsafe.Pointer(&buf[0]))
	}
	return int(C.mars_xlog_make_logfile_name(C.int(timespan), cs, p, C.size_t(len(buf))))
}

func (e *Engine) OneshotFlush(cfg *engine.Params, action *int32) bool {
	if cfg == nil || action == nil {
		return false
	}
	cc, free := marshalConfig(cfg)
	defer free()

	var result C.int
	ok := C.mars_xlog_oneshot_flush(cc, &result) != 0
	*action = int32(result)
	return ok
}

func (e *Engine) Dump(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	// The native side returns a pointer into its own storage, so the
	// result is copied, never freed here.
	s := C.mars_xlog_dump(unsafe.Pointer(&buf[0]), C.size_t(len(buf)))
	return C.GoString(s)
}

func (e *Engine) MemoryDump(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	s := C.mars_xlog_memory_dump(unsafe.Pointer(&buf[0]), C.size_t(len(buf)))
	return C.GoString(s)
}

// SetConsoleFun selects the console output primitive on Apple
// platforms. No-op elsewhere.
func (e *Engine) SetConsoleFun(fun int32) {
	C.mars_xlog_set_console_fun(C.int(fun))
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
