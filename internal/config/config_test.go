package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Backend.URL != "http://localhost:5000" {
		t.Errorf("expected default backend url, got %q", cfg.Backend.URL)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.RateStore != RateStoreMemory {
		t.Errorf("expected default rate store %q, got %q", RateStoreMemory, cfg.Server.RateStore)
	}
	if cfg.BackendTimeout() != 0 {
		t.Errorf("expected no backend timeout by default, got %v", cfg.BackendTimeout())
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.advisor.yml")

	original := DefaultConfig()
	original.Backend.URL = "https://search.internal:9000"
	original.Backend.TimeoutSeconds = 15
	original.Server.Port = 9090
	original.Server.RateStore = RateStoreRedis
	original.View.RenderMarkdown = true
	original.Log.Format = LogFormatJSON

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Backend.URL != original.Backend.URL {
		t.Errorf("backend.url: got %q, want %q", loaded.Backend.URL, original.Backend.URL)
	}
	if loaded.BackendTimeout() != 15*time.Second {
		t.Errorf("backend timeout: got %v, want 15s", loaded.BackendTimeout())
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("server.port: got %d, want 9090", loaded.Server.Port)
	}
	if loaded.Server.RateStore != RateStoreRedis {
		t.Errorf("server.rate_store: got %q, want %q", loaded.Server.RateStore, RateStoreRedis)
	}
	if !loaded.View.RenderMarkdown {
		t.Error("view.render_markdown: expected true")
	}
	if loaded.Log.Format != LogFormatJSON {
		t.Errorf("log.format: got %q, want %q", loaded.Log.Format, LogFormatJSON)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("ADVISOR_BACKEND__URL", "http://backend:8081")
	t.Setenv("ADVISOR_DATA_DIR", "/var/lib/advisor")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Backend.URL != "http://backend:8081" {
		t.Errorf("env override failed: got %q", loaded.Backend.URL)
	}
	if loaded.DataDir != "/var/lib/advisor" {
		t.Errorf("env override failed: got %q", loaded.DataDir)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ADVISOR_BACKEND__URL", "backend.url"},
		{"ADVISOR_DATA_DIR", "data_dir"},
		{"ADVISOR_SERVER__RATE_STORE", "server.rate_store"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty backend url", func(c *Config) { c.Backend.URL = "" }},
		{"relative backend url", func(c *Config) { c.Backend.URL = "/api" }},
		{"ftp backend url", func(c *Config) { c.Backend.URL = "ftp://host" }},
		{"negative timeout", func(c *Config) { c.Backend.TimeoutSeconds = -1 }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"negative rate limit", func(c *Config) { c.Server.RateLimit = -1 }},
		{"zero burst", func(c *Config) { c.Server.RateBurst = 0 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"unknown rate store", func(c *Config) { c.Server.RateStore = "memcached" }},
		{"redis without url", func(c *Config) {
			c.Server.RateStore = RateStoreRedis
			c.Server.RedisURL = ""
		}},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestValidateRateLimitDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.RateLimit = 0
	cfg.Server.RateBurst = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled rate limiting should not need a burst, got: %v", err)
	}
}

func TestWizardValidators(t *testing.T) {
	if err := validateBackendURL("http://localhost:5000"); err != nil {
		t.Errorf("expected valid url, got %v", err)
	}
	if err := validateBackendURL("localhost:5000"); err == nil {
		t.Error("expected error for url without scheme")
	}
	if err := validatePort("8080"); err != nil {
		t.Errorf("expected valid port, got %v", err)
	}
	for _, bad := range []string{"0", "65536", "http"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("expected error for port %q", bad)
		}
	}
}

func TestLoadUnreadablePath(t *testing.T) {
	dir := t.TempDir()
	// A directory is not a readable YAML file.
	if _, err := Load(dir); err == nil {
		t.Error("expected error loading a directory as config")
	}
}
