package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goliatone/go-menu-editor/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{
			name:   "zero stride",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Editor.OrderStride = 0 },
			want:   runtimeconfig.ErrOrderStrideInvalid,
		},
		{
			name:   "negative breakpoint",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Editor.DragBreakpoint = -1 },
			want:   runtimeconfig.ErrDragBreakpointInvalid,
		},
		{
			name:   "unknown driver",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Storage.Driver = "mongo" },
			want:   runtimeconfig.ErrStorageDriverUnknown,
		},
		{
			name: "postgres without dsn",
			mutate: func(cfg *runtimeconfig.Config) {
				cfg.Storage.Driver = "postgresql"
				cfg.Storage.DSN = " "
			},
			want: runtimeconfig.ErrStorageDSNRequired,
		},
		{
			name: "memory without dsn",
			mutate: func(cfg *runtimeconfig.Config) {
				cfg.Storage.Driver = "memory"
				cfg.Storage.DSN = ""
			},
		},
		{
			name:   "negative ttl",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Cache.DefaultTTL = -time.Second },
			want:   runtimeconfig.ErrCacheTTLInvalid,
		},
		{
			name:   "missing icon fallback",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Icons.Fallback = "" },
			want:   runtimeconfig.ErrIconFallbackRequired,
		},
		{
			name: "logger without provider",
			mutate: func(cfg *runtimeconfig.Config) {
				cfg.Features.Logger = true
				cfg.Logging.Provider = ""
			},
			want: runtimeconfig.ErrLoggingProviderRequired,
		},
		{
			name: "unknown logging provider",
			mutate: func(cfg *runtimeconfig.Config) {
				cfg.Features.Logger = true
				cfg.Logging.Provider = "syslog"
			},
			want: runtimeconfig.ErrLoggingProviderUnknown,
		},
		{
			name: "invalid logging level",
			mutate: func(cfg *runtimeconfig.Config) {
				cfg.Features.Logger = true
				cfg.Logging.Level = "loud"
			},
			want: runtimeconfig.ErrLoggingLevelInvalid,
		},
		{
			name: "invalid gologger format",
			mutate: func(cfg *runtimeconfig.Config) {
				cfg.Features.Logger = true
				cfg.Logging.Provider = "gologger"
				cfg.Logging.Format = "xml"
			},
			want: runtimeconfig.ErrLoggingFormatInvalid,
		},
		{
			name: "logging ignored when feature disabled",
			mutate: func(cfg *runtimeconfig.Config) {
				cfg.Logging.Provider = "syslog"
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadReadsFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu-editor.yaml")
	content := []byte(`editor:
  order_stride: 100
storage:
  driver: sqlite3
  dsn: file:test.db
cache:
  default_ttl: 5m
icons:
  fallback: dot
  aliases:
    house: home
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MENU_EDITOR_EDITOR_DRAG_BREAKPOINT", "120")
	t.Setenv("MENU_EDITOR_FEATURES_METRICS", "true")

	cfg, err := runtimeconfig.Load(path, "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Editor.OrderStride != 100 {
		t.Fatalf("expected stride from file, got %d", cfg.Editor.OrderStride)
	}
	if cfg.Editor.DragBreakpoint != 120 {
		t.Fatalf("expected breakpoint from env, got %d", cfg.Editor.DragBreakpoint)
	}
	if !cfg.Editor.ConfirmDelete {
		t.Fatal("expected confirm delete default to survive")
	}
	if cfg.Storage.Driver != runtimeconfig.DriverSQLite {
		t.Fatalf("expected normalized driver, got %q", cfg.Storage.Driver)
	}
	if cfg.Cache.DefaultTTL != 5*time.Minute {
		t.Fatalf("expected 5m ttl, got %s", cfg.Cache.DefaultTTL)
	}
	if cfg.Icons.Fallback != "dot" || cfg.Icons.Aliases["house"] != "home" {
		t.Fatalf("unexpected icons config %+v", cfg.Icons)
	}
	if !cfg.Features.Metrics {
		t.Fatal("expected metrics feature from env")
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := runtimeconfig.Load("", "MENU_EDITOR_TEST_UNSET")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Editor.OrderStride != 10 || cfg.Storage.Driver != runtimeconfig.DriverSQLite {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("MENU_EDITOR_STORAGE_DRIVER", "mongo")
	if _, err := runtimeconfig.Load("", ""); !errors.Is(err, runtimeconfig.ErrStorageDriverUnknown) {
		t.Fatalf("expected ErrStorageDriverUnknown, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := runtimeconfig.Load(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Fatal("expected error for missing file")
	}
}
