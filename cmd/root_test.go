package cmd

import (
	"testing"

	"github.com/akashgh003/gen-ai-asgn/internal/config"
)

func TestConfigFlagDefault(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	if flag == nil {
		t.Fatal("missing --config flag")
	}
	if flag.DefValue != config.DefaultConfigFile {
		t.Errorf("--config default = %q, want %q", flag.DefValue, config.DefaultConfigFile)
	}
}

func TestRateStoreLabel(t *testing.T) {
	cfg := config.DefaultConfig()
	if got := rateStoreLabel(cfg); got != "memory" {
		t.Errorf("default = %q", got)
	}
	cfg.Server.RateStore = config.RateStoreRedis
	if got := rateStoreLabel(cfg); got != "redis" {
		t.Errorf("redis = %q", got)
	}
	cfg.Server.RateLimit = 0
	if got := rateStoreLabel(cfg); got != "disabled" {
		t.Errorf("no limit = %q", got)
	}
}
