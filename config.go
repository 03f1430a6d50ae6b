package menueditor

import "github.com/goliatone/go-menu-editor/internal/runtimeconfig"

var (
	ErrOrderStrideInvalid      = runtimeconfig.ErrOrderStrideInvalid
	ErrDragBreakpointInvalid   = runtimeconfig.ErrDragBreakpointInvalid
	ErrStorageDriverUnknown    = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired      = runtimeconfig.ErrStorageDSNRequired
	ErrCacheTTLInvalid         = runtimeconfig.ErrCacheTTLInvalid
	ErrIconFallbackRequired    = runtimeconfig.ErrIconFallbackRequired
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

const (
	DriverSQLite   = runtimeconfig.DriverSQLite
	DriverPostgres = runtimeconfig.DriverPostgres
	DriverMemory   = runtimeconfig.DriverMemory
)

type (
	Config        = runtimeconfig.Config
	EditorConfig  = runtimeconfig.EditorConfig
	StorageConfig = runtimeconfig.StorageConfig
	CacheConfig   = runtimeconfig.CacheConfig
	IconsConfig   = runtimeconfig.IconsConfig
	LoggingConfig = runtimeconfig.LoggingConfig
	Features      = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads path (optional) and MENU_EDITOR_* environment variables on
// top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path, runtimeconfig.DefaultEnvPrefix)
}
