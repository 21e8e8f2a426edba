package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RequiredElements are the element ids the page script binds to.
var RequiredElements = []string{
	"search-form",
	"query-input",
	"results-container",
	"followup-section",
	"followup-form",
	"followup-input",
	"followup-response",
	"theme-toggle",
	"text-search-input",
	"text-search-button",
	"search-results",
	"product-modal",
	"modal-content-container",
	"modal-close",
	"technical-info-card",
	"model-info-card",
}

// ValidateLayout parses an HTML page and reports every required element
// that is missing from it.
func ValidateLayout(r io.Reader) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return fmt.Errorf("parsing layout: %w", err)
	}
	var missing []string
	for _, id := range RequiredElements {
		if doc.Find(`[id="` + id + `"]`).Length() == 0 {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("layout is missing required elements: %s", strings.Join(missing, ", "))
	}
	return nil
}
