// Package config provides configuration loading, validation, and hot
// reload for the catalog server.
package config

// Config is the root configuration for the catalog server.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Admin     AdminConfig     `yaml:"admin"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Static    StaticConfig    `yaml:"static"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig configures the main HTTP listener.
type ServerConfig struct {
	Bind string `yaml:"bind"`
	Port int    `yaml:"port"`
}

// AdminConfig configures the admin listener serving health and metrics
// endpoints.
type AdminConfig struct {
	Enabled bool   `yaml:"enabled"`
	Bind    string `yaml:"bind"`
	Port    int    `yaml:"port"`
}

// CatalogConfig configures the catalog data source.
type CatalogConfig struct {
	// DataFile is the path to the JSON file holding the record
	// collection. It is re-read on every request to the data route.
	DataFile string `yaml:"dataFile"`
}

// StaticConfig configures static page content.
type StaticConfig struct {
	// HomeFile is the path to the HTML file served on the home route.
	// When empty, a built-in page is served instead.
	HomeFile string `yaml:"homeFile"`
}

// RateLimitConfig configures the global request rate limiter.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerSecond int  `yaml:"requestsPerSecond"`
	Burst             int  `yaml:"burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Default configuration values.
const (
	DefaultBind      = "0.0.0.0"
	DefaultPort      = 8080
	DefaultAdminPort = 9090
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "stdout"
)

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Bind: DefaultBind,
			Port: DefaultPort,
		},
		Admin: AdminConfig{
			Enabled: true,
			Bind:    DefaultBind,
			Port:    DefaultAdminPort,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			Output: DefaultLogOutput,
		},
	}
}

// applyDefaults fills in zero-valued fields with defaults.
func (c *Config) applyDefaults() {
	if c.Server.Bind == "" {
		c.Server.Bind = DefaultBind
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Admin.Bind == "" {
		c.Admin.Bind = DefaultBind
	}
	if c.Admin.Port == 0 {
		c.Admin.Port = DefaultAdminPort
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Log.Output == "" {
		c.Log.Output = DefaultLogOutput
	}
	if c.RateLimit.Enabled && c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = c.RateLimit.RequestsPerSecond
	}
}
