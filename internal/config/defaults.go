package config

import "time"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".advisor.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			URL: "http://localhost:5000",
		},
		Server: ServerConfig{
			Port:      8080,
			RateLimit: 10,
			RateBurst: 20,
			RateStore: RateStoreMemory,
			RedisURL:  "redis://localhost:6379/0",
		},
		DataDir: ".advisor",
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}

// BackendTimeout returns the backend client timeout. Zero means no timeout.
func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}
