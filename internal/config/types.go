package config

// RateStoreType selects where rate-limit counters live.
type RateStoreType string

const (
	RateStoreMemory RateStoreType = "memory"
	RateStoreRedis  RateStoreType = "redis"
)

// LogFormat selects the zerolog output writer.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level advisor configuration, corresponding to .advisor.yml.
type Config struct {
	Backend BackendConfig `yaml:"backend" koanf:"backend"`
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	DataDir string        `yaml:"data_dir" koanf:"data_dir"`
	View    ViewConfig    `yaml:"view" koanf:"view"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
}

// BackendConfig points at the product-search backend.
type BackendConfig struct {
	URL string `yaml:"url" koanf:"url"`
	// TimeoutSeconds of 0 leaves the transport default in place.
	TimeoutSeconds int `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// ServerConfig holds the UI server settings.
type ServerConfig struct {
	Port            int     `yaml:"port" koanf:"port"`
	AllowAllOrigins bool    `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RateLimit       float64 `yaml:"rate_limit" koanf:"rate_limit"`
	RateBurst       int     `yaml:"rate_burst" koanf:"rate_burst"`
	SecureCookies   bool    `yaml:"secure_cookies" koanf:"secure_cookies"`
	// RateStore of redis shares the limit between advisor processes.
	RateStore RateStoreType `yaml:"rate_store" koanf:"rate_store"`
	RedisURL  string        `yaml:"redis_url" koanf:"redis_url"`
}

// ViewConfig controls rendering.
type ViewConfig struct {
	RenderMarkdown bool   `yaml:"render_markdown" koanf:"render_markdown"`
	LayoutFile     string `yaml:"layout_file" koanf:"layout_file"`
}

// LogConfig controls zerolog.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
