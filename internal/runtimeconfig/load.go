package runtimeconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultEnvPrefix namespaces environment overrides, e.g. MENU_EDITOR_STORAGE_DRIVER.
const DefaultEnvPrefix = "MENU_EDITOR"

// Load layers an optional config file and prefixed environment variables over
// DefaultConfig, then validates the result. An empty path skips the file.
func Load(path, envPrefix string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if envPrefix == "" {
		envPrefix = DefaultEnvPrefix
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("menu config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("menu config: decode: %w", err)
	}
	cfg.Storage.Driver = NormalizeDriver(cfg.Storage.Driver)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve overrides for
// keys missing from the file.
func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("editor.order_stride", cfg.Editor.OrderStride)
	v.SetDefault("editor.drag_breakpoint", cfg.Editor.DragBreakpoint)
	v.SetDefault("editor.confirm_delete", cfg.Editor.ConfirmDelete)
	v.SetDefault("storage.driver", cfg.Storage.Driver)
	v.SetDefault("storage.dsn", cfg.Storage.DSN)
	v.SetDefault("cache.enabled", cfg.Cache.Enabled)
	v.SetDefault("cache.default_ttl", cfg.Cache.DefaultTTL)
	v.SetDefault("icons.fallback", cfg.Icons.Fallback)
	v.SetDefault("icons.aliases", cfg.Icons.Aliases)
	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)
	v.SetDefault("logging.focus", cfg.Logging.Focus)
	v.SetDefault("features.logger", cfg.Features.Logger)
	v.SetDefault("features.metrics", cfg.Features.Metrics)
}
