package config

// fileDTO is the structure of retrial.yaml.
type fileDTO struct {
	Version  string      `mapstructure:"version" yaml:"version"`
	Root     string      `mapstructure:"root" yaml:"root"`
	Checksum checksumDTO `mapstructure:"checksum" yaml:"checksum"`
	Sources  []sourceDTO `mapstructure:"sources" yaml:"sources"`
	Baseline baselineDTO `mapstructure:"baseline" yaml:"baseline"`
}

type checksumDTO struct {
	Algorithm   string `mapstructure:"algorithm" yaml:"algorithm"`
	Concurrency int    `mapstructure:"concurrency" yaml:"concurrency"`
}

// sourceDTO is one entry of the sources list.
type sourceDTO struct {
	Type    string `mapstructure:"type" yaml:"type"`
	Path    string `mapstructure:"path" yaml:"path"`
	Cache   string `mapstructure:"cache" yaml:"cache"`
	Pattern string `mapstructure:"pattern" yaml:"pattern"`
	Group   string `mapstructure:"group" yaml:"group"`
}

type baselineDTO struct {
	Backend  string `mapstructure:"backend" yaml:"backend"`
	Path     string `mapstructure:"path" yaml:"path"`
	Format   string `mapstructure:"format" yaml:"format"`
	Driver   string `mapstructure:"driver" yaml:"driver"`
	DSN      string `mapstructure:"dsn" yaml:"dsn"`
	Bucket   string `mapstructure:"bucket" yaml:"bucket"`
	Key      string `mapstructure:"key" yaml:"key"`
	Region   string `mapstructure:"region" yaml:"region"`
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
	// Keys are meant to come from RETRIAL_BASELINE_ACCESSKEY and RETRIAL_BASELINE_SECRETKEY.
	AccessKey string `mapstructure:"accessKey" yaml:"accessKey"`
	SecretKey string `mapstructure:"secretKey" yaml:"secretKey"`
	URL       string `mapstructure:"url" yaml:"url"`
	RedisKey  string `mapstructure:"redisKey" yaml:"redisKey"`
}
