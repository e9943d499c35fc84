package domain

// Source types.
const (
	SourceManifest = "manifest"
	SourceGoMod    = "gomod"
	SourceDir      = "dir"
)

// Baseline backends.
const (
	BackendFile  = "file"
	BackendSQL   = "sql"
	BackendS3    = "s3"
	BackendRedis = "redis"
)

// Baseline file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCBOR = "cbor"
)

// SQL drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the resolved recorder configuration.
type Config struct {
	// Root is the absolute directory relative paths in the configuration are resolved against.
	Root     string
	Checksum ChecksumConfig
	Sources  []SourceConfig
	Baseline BaselineConfig
}

// ChecksumConfig configures the checksum generator.
type ChecksumConfig struct {
	Algorithm Algorithm
	// Concurrency bounds simultaneous digests. Zero means runtime.NumCPU().
	Concurrency int
}

// SourceConfig configures one live dependency source.
type SourceConfig struct {
	Type    string
	Path    string
	Cache   string
	Pattern string
	Group   string
}

// BaselineConfig configures where the baseline is persisted.
type BaselineConfig struct {
	Backend string

	// file
	Path   string
	Format string

	// sql
	Driver string
	DSN    string

	// s3
	Bucket    string
	Key       string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string

	// redis
	URL      string
	RedisKey string
}
