package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrOrderStrideInvalid = errors.New("menu config: order stride must be positive")
var ErrDragBreakpointInvalid = errors.New("menu config: drag breakpoint must be positive")
var ErrStorageDriverUnknown = errors.New("menu config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("menu config: storage dsn is required for database drivers")
var ErrCacheTTLInvalid = errors.New("menu config: cache ttl must be zero or positive")
var ErrIconFallbackRequired = errors.New("menu config: icon fallback name is required")
var ErrLoggingProviderRequired = errors.New("menu config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("menu config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("menu config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("menu config: logging format is invalid")

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config aggregates editor behaviour, storage bindings and feature flags.
type Config struct {
	Editor   EditorConfig  `mapstructure:"editor"`
	Storage  StorageConfig `mapstructure:"storage"`
	Cache    CacheConfig   `mapstructure:"cache"`
	Icons    IconsConfig   `mapstructure:"icons"`
	Logging  LoggingConfig `mapstructure:"logging"`
	Features Features      `mapstructure:"features"`
}

// EditorConfig tunes the editing session.
type EditorConfig struct {
	// OrderStride spaces root ordering keys.
	OrderStride int `mapstructure:"order_stride"`
	// DragBreakpoint is the narrowest viewport, in columns, that keeps drag mode.
	DragBreakpoint int  `mapstructure:"drag_breakpoint"`
	ConfirmDelete  bool `mapstructure:"confirm_delete"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	DefaultTTL time.Duration `mapstructure:"default_ttl"`
}

// IconsConfig controls icon resolution.
type IconsConfig struct {
	Fallback string            `mapstructure:"fallback"`
	Aliases  map[string]string `mapstructure:"aliases"`
}

// LoggingConfig selects the logger provider.
type LoggingConfig struct {
	Provider  string   `mapstructure:"provider"`
	Level     string   `mapstructure:"level"`
	Format    string   `mapstructure:"format"`
	AddSource bool     `mapstructure:"add_source"`
	Focus     []string `mapstructure:"focus"`
}

// Features toggles optional subsystems.
type Features struct {
	Logger  bool `mapstructure:"logger"`
	Metrics bool `mapstructure:"metrics"`
}

// DefaultConfig returns the baseline configuration: sqlite on a local file,
// cache on, console logging off.
func DefaultConfig() Config {
	return Config{
		Editor: EditorConfig{
			OrderStride:    10,
			DragBreakpoint: 80,
			ConfirmDelete:  true,
		},
		Storage: StorageConfig{
			Driver: DriverSQLite,
			DSN:    "file:menus.db?cache=shared&_fk=1",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Icons: IconsConfig{
			Fallback: "default",
			Aliases:  map[string]string{},
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate ensures the configuration is internally consistent.
func (cfg Config) Validate() error {
	if cfg.Editor.OrderStride <= 0 {
		return ErrOrderStrideInvalid
	}
	if cfg.Editor.DragBreakpoint <= 0 {
		return ErrDragBreakpointInvalid
	}

	switch driver := NormalizeDriver(cfg.Storage.Driver); driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return fmt.Errorf("%w: %s", ErrStorageDSNRequired, driver)
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
	}

	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if strings.TrimSpace(cfg.Icons.Fallback) == "" {
		return ErrIconFallbackRequired
	}

	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// NormalizeDriver lowercases a driver name and maps common aliases.
func NormalizeDriver(driver string) string {
	switch d := strings.ToLower(strings.TrimSpace(driver)); d {
	case "sqlite3":
		return DriverSQLite
	case "postgresql", "pg":
		return DriverPostgres
	default:
		return d
	}
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
