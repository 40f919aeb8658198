package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	xlog "github.com/wippyai/xlog-go"
	"github.com/wippyai/xlog-go/engine"
	"github.com/wippyai/xlog-go/engine/memengine"
)

func main() {
	var (
		logDir      = flag.String("dir", "/tmp/xlog", "Log directory")
		prefix      = flag.String("prefix", "console", "Log file name prefix")
		cacheDir    = flag.String("cache", "", "Cache directory (optional)")
		levelStr    = flag.String("level", "info", "Minimum level (verbose|debug|info|warn|error|fatal)")
		sync        = flag.Bool("sync", false, "Synchronous appender mode")
		tag         = flag.String("tag", "", "Tag for one-shot messages")
		msg         = flag.String("msg", "", "Write one message and exit")
		timespan    = flag.Int("timespan", 0, "List log file paths for the last N days and exit")
		verbose     = flag.Bool("v", false, "Verbose internal logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		if zl, err := zap.NewDevelopment(); err == nil {
			engine.SetLogger(zl)
			defer zl.Sync()
		}
	}

	level, ok := parseLevel(*levelStr)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown level %q\n", *levelStr)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*logDir, *prefix, *cacheDir, level, *sync); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*logDir, *prefix, *cacheDir, *tag, *msg, level, *sync, *timespan); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logDir, prefix, cacheDir, tag, msg string, level xlog.Level, syncMode bool, timespan int) error {
	eng := memengine.New()

	cfg := xlog.NewConfig(logDir, prefix).WithCacheDir(cacheDir)
	if syncMode {
		cfg = cfg.WithMode(xlog.ModeSync)
	}

	if err := xlog.Open(eng, cfg, level); err != nil {
		return err
	}
	defer xlog.CloseAppender(eng)

	logger, err := xlog.New(eng, cfg, level)
	if err != nil {
		return err
	}
	defer logger.Close()

	fmt.Printf("Instance: %s (id %d, level %s)\n", logger.NamePrefix(), logger.Instance(), level)
	if path, ok := xlog.CurrentLogPath(eng); ok {
		fmt.Printf("Log path: %s\n", path)
	}

	if timespan > 0 {
		fmt.Printf("\nLog files for the last %d day(s):\n", timespan)
		for _, p := range xlog.FilepathsFromTimespan(eng, int32(timespan), prefix) {
			fmt.Printf("  %s\n", p)
		}
		return nil
	}

	if msg != "" {
		logger.Log(level, tag, msg)
	} else {
		// Demo traffic exercising the level gate.
		logger.Log(xlog.LevelDebug, tag, "debug message")
		logger.Log(xlog.LevelInfo, tag, "info message")
		logger.Log(xlog.LevelWarn, tag, "warn message")
		logger.Log(xlog.LevelError, tag, "error message")
	}
	logger.Flush(true)

	writes := eng.WritesFor(prefix)
	fmt.Printf("\n%d write(s) crossed the boundary:\n", len(writes))
	for _, w := range writes {
		fmt.Printf("  [%s] %s: %s\n", xlog.LevelFromInt(w.Info.Level), w.Info.Tag, w.Msg)
	}
	return nil
}

func parseLevel(s string) (xlog.Level, bool) {
	switch strings.ToLower(s) {
	case "verbose", "v":
		return xlog.LevelVerbose, true
	case "debug", "d":
		return xlog.LevelDebug, true
	case "info", "i":
		return xlog.LevelInfo, true
	case "warn", "w":
		return xlog.LevelWarn, true
	case "error", "e":
		return xlog.LevelError, true
	case "fatal", "f":
		return xlog.LevelFatal, true
	default:
		return xlog.LevelNone, false
	}
}
