package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashgh003/gen-ai-asgn/internal/backend"
)

func ptr[T any](v T) *T { return &v }

func TestPrintProducts(t *testing.T) {
	var buf bytes.Buffer
	printProducts(&buf, []backend.Product{
		{
			Name:          "Legion 5",
			Category:      "Laptops",
			Price:         900,
			OriginalPrice: ptr(1000.0),
			Rating:        ptr(4.0),
			ReviewCount:   ptr(12),
			MatchScore:    ptr(0.9),
			Specs:         backend.Specs{{Key: "processor", Value: "AMD Ryzen 7"}},
		},
		{Name: "Basic", Price: 10},
	})
	out := buf.String()

	for _, want := range []string{
		"1. Legion 5 [90% match]",
		"$900.00 (was $1000.00) 10% off  ★★★★☆ (12 reviews)",
		"Laptops · AMD Ryzen",
		"2. Basic\n",
		"$10.00  ☆☆☆☆☆ (0 reviews)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintProductDetail(t *testing.T) {
	var buf bytes.Buffer
	printProductDetail(&buf, backend.Product{
		Name:           "Legion 5",
		Price:          1299,
		Specs:          backend.Specs{{Key: "processor", Value: "Intel i7"}, {Key: "weight", Value: "2 kg"}},
		Recommendation: "Great cooling.",
	})
	out := buf.String()

	for _, want := range []string{
		"💻 Processor: Intel i7",
		"📊 Weight: 2 kg",
		"Why We Recommend This\n  Great cooling.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Processor") > strings.Index(out, "Weight") {
		t.Error("specs should keep backend order")
	}
}

func TestPrintQueryResult(t *testing.T) {
	var buf bytes.Buffer
	printQueryResult(&buf, &backend.QueryResult{
		Response:  "Nothing under $100.",
		Rationale: []string{"Budget too low"},
	}, "Why these recommendations?")
	out := buf.String()

	if strings.Contains(out, "Found") {
		t.Errorf("no product listing expected:\n%s", out)
	}
	if !strings.Contains(out, "Why these recommendations?\n  - Budget too low") {
		t.Errorf("rationale missing:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abcdefghij", 4); got != "abcd..." {
		t.Errorf("truncate = %q", got)
	}
}
