package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Catalog     CatalogConfig     `mapstructure:"catalog" validate:"required"`
	Profiler    ProfilerConfig    `mapstructure:"profiler"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration for trace blobs and summaries.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// CatalogConfig holds the trace catalog database configuration.
type CatalogConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// ProfilerConfig holds trace aggregation settings. Zero values fall back to defaults.
type ProfilerConfig struct {
	ExemptSocketName    string `mapstructure:"exempt_socket_name"`
	PacketOverheadBytes int64  `mapstructure:"packet_overhead_bytes" validate:"min=0,max=1024"`
	MaxUploadMB         int    `mapstructure:"max_upload_mb" validate:"min=0,max=4096"`
}
