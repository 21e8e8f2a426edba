package config

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to advisor! Let's point the UI at your product-search backend.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Backend URL.
	backendPrompt := promptui.Prompt{
		Label:    "Backend base URL",
		Default:  cfg.Backend.URL,
		Validate: validateBackendURL,
	}
	backendURL, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend url: %w", err)
	}
	cfg.Backend.URL = backendURL

	// 2. UI port.
	portPrompt := promptui.Prompt{
		Label:    "Port for the advisor UI",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Where rate-limit counters live.
	storePrompt := promptui.Select{
		Label: "Where should rate-limit counters be kept",
		Items: []string{
			"memory (single process, nothing to run)",
			"redis (shared between several advisor instances)",
		},
	}
	storeIdx, _, err := storePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("rate store selection: %w", err)
	}
	if storeIdx == 1 {
		cfg.Server.RateStore = RateStoreRedis
		redisPrompt := promptui.Prompt{
			Label:   "Redis URL",
			Default: cfg.Server.RedisURL,
		}
		cfg.Server.RedisURL, err = redisPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("redis url: %w", err)
		}
	}

	// 4. Markdown rendering of answers.
	mdPrompt := promptui.Select{
		Label: "Render backend answers as markdown",
		Items: []string{"no", "yes"},
	}
	mdIdx, _, err := mdPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("markdown selection: %w", err)
	}
	cfg.View.RenderMarkdown = mdIdx == 1

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateBackendURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
