package xlog

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/wippyai/xlog-go/errors"
)

// Config describes one logger instance or the global appender. It is
// consumed by a single creation call and may be discarded afterwards.
type Config struct {
	// LogDir is the directory for log files. Required.
	LogDir string `validate:"required"`

	// NamePrefix prefixes log file names and doubles as the instance
	// lookup key. Required.
	NamePrefix string `validate:"required"`

	// PubKey enables log encryption downstream when non-empty.
	PubKey string

	// CacheDir is an optional directory for mmap buffers and
	// temporary logs.
	CacheDir string

	// CacheDays is how many days cached logs are kept before being
	// moved to LogDir.
	CacheDays int32 `validate:"gte=0"`

	// Mode selects async or sync appending.
	Mode AppenderMode

	// CompressMode selects the compression algorithm.
	CompressMode CompressMode

	// CompressLevel is forwarded to the compressor unchanged.
	CompressLevel int32
}

// NewConfig returns a Config with required fields set and the engine's
// defaults for everything else.
func NewConfig(logDir, namePrefix string) Config {
	return Config{
		LogDir:        logDir,
		NamePrefix:    namePrefix,
		Mode:          ModeAsync,
		CompressMode:  CompressZlib,
		CompressLevel: 6,
	}
}

// WithPubKey sets the public key used to encrypt logs.
func (c Config) WithPubKey(key string) Config {
	c.PubKey = key
	return c
}

// WithCacheDir sets the cache directory for mmap buffers and temp files.
func (c Config) WithCacheDir(dir string) Config {
	c.CacheDir = dir
	return c
}

// WithCacheDays sets how long cached logs are kept before moving them.
func (c Config) WithCacheDays(days int32) Config {
	c.CacheDays = days
	return c
}

// WithMode sets the appender mode.
func (c Config) WithMode(mode AppenderMode) Config {
	c.Mode = mode
	return c
}

// WithCompressMode sets the compression algorithm.
func (c Config) WithCompressMode(mode CompressMode) Config {
	c.CompressMode = mode
	return c
}

// WithCompressLevel sets the compression level.
func (c Config) WithCompressLevel(level int32) Config {
	c.CompressLevel = level
	return c
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks required fields. It runs before marshalling so that
// a bad config never reaches the engine.
func (c Config) Validate() error {
	if err := configValidator().Struct(c); err != nil {
		if ferrs, ok := err.(validator.ValidationErrors); ok && len(ferrs) > 0 {
			fe := ferrs[0]
			return errors.InvalidConfigField(fe.Field(), "failed "+fe.Tag()+" validation")
		}
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidConfig, err, "validate config")
	}
	return nil
}
