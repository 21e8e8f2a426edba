package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akashgh003/gen-ai-asgn/internal/backend"
	"github.com/akashgh003/gen-ai-asgn/internal/config"
	"github.com/akashgh003/gen-ai-asgn/internal/logging"
	"github.com/akashgh003/gen-ai-asgn/internal/view"
)

// loadConfig loads and validates the config and configures logging,
// providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `advisor init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	if err := logging.Setup(os.Stderr, level, string(cfg.Log.Format)); err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}
	return cfg, nil
}

// newBackendClient creates the product-search client described by cfg.
func newBackendClient(cfg *config.Config) *backend.Client {
	return backend.NewClient(cfg.Backend.URL, cfg.BackendTimeout())
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printProducts writes a numbered, card-like listing of products.
func printProducts(w io.Writer, products []backend.Product) {
	for i, p := range products {
		fmt.Fprintf(w, "  %d. %s", i+1, p.Name)
		if score := view.MatchScore(p.MatchScore); score != "" {
			fmt.Fprintf(w, " [%s]", score)
		}
		fmt.Fprintln(w)

		price := view.Price(p.Price)
		if orig := view.OriginalPrice(p); orig != "" {
			price += " (was " + orig + ")"
		}
		if discount := view.DiscountLabel(p); discount != "" {
			price += " " + discount
		}
		fmt.Fprintf(w, "     %s  %s (%d reviews)\n", price, view.Stars(p.Rating), view.ReviewCount(p))

		if tags := view.CardTags(p); len(tags) > 0 {
			fmt.Fprintf(w, "     %s\n", strings.Join(tags, " · "))
		}
		if p.Description != "" {
			fmt.Fprintf(w, "     %s\n", truncate(p.Description, 120))
		}
		fmt.Fprintln(w)
	}
}

// printProductDetail writes every field of a single product.
func printProductDetail(w io.Writer, p backend.Product) {
	fmt.Fprintf(w, "%s\n", p.Name)
	if p.Category != "" {
		fmt.Fprintf(w, "%s\n", p.Category)
	}
	fmt.Fprintf(w, "%s (%d reviews)\n", view.Stars(p.Rating), view.ReviewCount(p))

	price := view.Price(p.Price)
	if orig := view.OriginalPrice(p); orig != "" {
		price += " (was " + orig + ")"
	}
	if discount := view.DiscountLabel(p); discount != "" {
		price += " " + discount
	}
	fmt.Fprintf(w, "%s\n", price)

	if p.Description != "" {
		fmt.Fprintf(w, "\nDescription\n  %s\n", p.Description)
	}
	if len(p.Specs) > 0 {
		fmt.Fprintf(w, "\nSpecifications\n")
		for _, s := range p.Specs {
			fmt.Fprintf(w, "  %s %s: %s\n", view.SpecIcon(s.Key), view.SpecLabel(s.Key), s.Value)
		}
	}
	if p.Recommendation != "" {
		fmt.Fprintf(w, "\nWhy We Recommend This\n  %s\n", p.Recommendation)
	}
}

func printRationale(w io.Writer, title string, rationale []string) {
	if len(rationale) == 0 {
		return
	}
	fmt.Fprintf(w, "%s\n", title)
	for _, r := range rationale {
		fmt.Fprintf(w, "  - %s\n", r)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
