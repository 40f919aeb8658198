package xlog_test

import (
	"testing"

	xlog "github.com/wippyai/xlog-go"
	"github.com/wippyai/xlog-go/engine/memengine"
	"github.com/wippyai/xlog-go/errors"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     xlog.Config
		wantErr bool
	}{
		{"valid", xlog.NewConfig("/logs", "app"), false},
		{"missing dir", xlog.NewConfig("", "app"), true},
		{"missing prefix", xlog.NewConfig("/logs", ""), true},
		{"negative cache days", xlog.NewConfig("/logs", "app").WithCacheDays(-1), true},
		{"full", xlog.NewConfig("/logs", "app").
			WithPubKey("key").
			WithCacheDir("/cache").
			WithCacheDays(10).
			WithMode(xlog.ModeSync).
			WithCompressMode(xlog.CompressZstd).
			WithCompressLevel(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var e *errors.Error
				if !errors.As(err, &e) {
					t.Fatalf("error is not typed: %T", err)
				}
				if e.Kind != errors.KindInvalidConfig {
					t.Errorf("kind = %q, want invalid_config", e.Kind)
				}
			}
		})
	}
}

func TestInvalidConfigNeverReachesEngine(t *testing.T) {
	e := memengine.New()

	if _, err := xlog.New(e, xlog.NewConfig("", "app"), xlog.LevelInfo); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := xlog.OneshotFlush(e, xlog.NewConfig("/logs", "")); err == nil {
		t.Fatal("expected validation error")
	}
	if err := xlog.Open(e, xlog.NewConfig("", ""), xlog.LevelInfo); err == nil {
		t.Fatal("expected validation error")
	}

	if e.NewCalls() != 0 || e.OneshotCalls() != 0 {
		t.Errorf("invalid config crossed the boundary: new=%d oneshot=%d",
			e.NewCalls(), e.OneshotCalls())
	}
}

func TestNewPassesAbsentOptionalsAsNil(t *testing.T) {
	e := memengine.New()

	if _, err := xlog.New(e, xlog.NewConfig("/logs", "app"), xlog.LevelInfo); err != nil {
		t.Fatal(err)
	}

	p := e.LastParams()
	if p == nil {
		t.Fatal("no params recorded")
	}
	if p.PubKey != nil {
		t.Error("empty pub key must cross as nil")
	}
	if p.CacheDir != nil {
		t.Error("empty cache dir must cross as nil")
	}
}
