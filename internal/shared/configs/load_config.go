package configs

import (
	"fmt"
	"strings"

	"net-profiler/internal/shared/validators"

	"github.com/spf13/viper"
)

const (
	DefaultExemptSocketName    = "Unreal"
	DefaultPacketOverheadBytes = 28
	DefaultMaxUploadMB         = 64

	envPrefix = "NET_PROFILER"
)

// LoadConfig reads configuration from file and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetDefault("profiler.exempt_socket_name", DefaultExemptSocketName)
	v.SetDefault("profiler.packet_overhead_bytes", DefaultPacketOverheadBytes)
	v.SetDefault("profiler.max_upload_mb", DefaultMaxUploadMB)

	// Environment overrides, e.g. NET_PROFILER_CATALOG_PATH
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %s", validators.Describe(err))
	}

	return &cfg, nil
}
