package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Sources     SourcesConfig     `mapstructure:"sources" validate:"required"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
	Refresh     RefreshConfig     `mapstructure:"refresh" validate:"required"`
	Dashboard   DashboardConfig   `mapstructure:"dashboard" validate:"required"`
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

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// SourcesConfig names the log files, relative to file_storage.root_dir.
// An empty key disables that source; at least one must be set.
type SourcesConfig struct {
	AccessLog string `mapstructure:"access_log" validate:"required_without=AuditLog"`
	AuditLog  string `mapstructure:"audit_log" validate:"required_without=AccessLog"`
}

// AggregationConfig holds aggregation configuration.
type AggregationConfig struct {
	TimeZone           string `mapstructure:"time_zone" validate:"required,timezone"`
	DefaultGranularity string `mapstructure:"default_granularity" validate:"required,oneof=15m 30m 1h 2h 12h 1d"`
}

// RefreshConfig holds the periodic refresh configuration.
type RefreshConfig struct {
	Interval int `mapstructure:"interval" validate:"required,min=1"` // seconds
}

// DashboardConfig holds presentation limits applied on top of the aggregation output.
type DashboardConfig struct {
	MaxDisplayedBuckets    int    `mapstructure:"max_displayed_buckets" validate:"required,min=1"`
	TimeBucketRankingLimit int    `mapstructure:"time_bucket_ranking_limit" validate:"required,min=1"`
	SnapshotKey            string `mapstructure:"snapshot_key" validate:"required"`
}
