package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/akashgh003/gen-ai-asgn/internal/backend"
)

// Options configures a Renderer.
type Options struct {
	// Markdown renders backend answers as markdown instead of plain text.
	Markdown bool
	// LayoutFile replaces the built-in page layout. The file must define
	// every element in RequiredElements.
	LayoutFile string
}

// PageData is the data passed to the page layout.
type PageData struct {
	ThemeClass string
	// PageID identifies this page load. The script sends it with every
	// request so that tabs sharing a cookie keep separate request streams.
	PageID string
}

type resultsData struct {
	Response  string
	Products  []backend.Product
	Rationale []string
}

type followupData struct {
	Question string
	Answer   string
}

// Renderer renders the advisor page and its HTML fragments.
type Renderer struct {
	tmpl *template.Template
}

// New parses the templates and checks the page layout for the elements the
// script depends on.
func New(opts Options) (*Renderer, error) {
	answers := newAnswerRenderer(opts.Markdown)
	funcs := template.FuncMap{
		"stars":         Stars,
		"matchScore":    MatchScore,
		"price":         Price,
		"originalPrice": OriginalPrice,
		"discount":      DiscountLabel,
		"reviews":       ReviewCount,
		"specIcon":      SpecIcon,
		"specLabel":     SpecLabel,
		"tags":          CardTags,
		"healthWidth":   HealthWidth,
		"answer":        answers.render,
	}

	tmpl, err := template.New("advisor").Funcs(funcs).Parse(fragmentTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment templates: %w", err)
	}

	layout := pageTemplate
	if opts.LayoutFile != "" {
		data, err := os.ReadFile(opts.LayoutFile)
		if err != nil {
			return nil, fmt.Errorf("reading layout: %w", err)
		}
		layout = `{{define "page"}}` + string(data) + `{{end}}`
	}
	if _, err := tmpl.Parse(layout); err != nil {
		return nil, fmt.Errorf("parsing page layout: %w", err)
	}

	r := &Renderer{tmpl: tmpl}

	var buf bytes.Buffer
	if err := r.Page(&buf, PageData{}); err != nil {
		return nil, fmt.Errorf("rendering page layout: %w", err)
	}
	if err := ValidateLayout(&buf); err != nil {
		return nil, err
	}
	return r, nil
}

// ThemeClass maps a stored theme to the body class applied on page load.
// Unset or unknown themes get no class.
func ThemeClass(theme string) string {
	switch theme {
	case "light":
		return "light-theme"
	case "dark":
		return "dark-theme"
	}
	return ""
}

// Page renders the full advisor page.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	return r.tmpl.ExecuteTemplate(w, "page", data)
}

// QueryResults renders a primary query answer with its product grid and
// rationale. Every card carries its own detail view, so opening a card
// needs nothing from the server.
func (r *Renderer) QueryResults(w io.Writer, res *backend.QueryResult) error {
	return r.tmpl.ExecuteTemplate(w, "query-results", resultsData{
		Response:  res.Response,
		Products:  res.Products,
		Rationale: res.Rationale,
	})
}

// SearchResults renders a text search answer. The rationale is omitted when
// no products matched.
func (r *Renderer) SearchResults(w io.Writer, res *backend.QueryResult) error {
	return r.tmpl.ExecuteTemplate(w, "search-results", resultsData{
		Response:  res.Response,
		Products:  res.Products,
		Rationale: res.Rationale,
	})
}

// Followup renders the quoted question followed by the backend's answer.
func (r *Renderer) Followup(w io.Writer, question string, res *backend.FollowupResult) error {
	return r.tmpl.ExecuteTemplate(w, "followup", followupData{
		Question: question,
		Answer:   res.Response,
	})
}

// ProductDetail renders the modal body for one product.
func (r *Renderer) ProductDetail(w io.Writer, p backend.Product) error {
	return r.tmpl.ExecuteTemplate(w, "detail", p)
}

func (r *Renderer) TechnicalInfo(w io.Writer, info *backend.TechnicalInfo) error {
	return r.tmpl.ExecuteTemplate(w, "technical-info", info)
}

func (r *Renderer) TechnicalInfoError(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "technical-info-error", nil)
}

func (r *Renderer) ModelInfo(w io.Writer, info *backend.ModelInfo) error {
	return r.tmpl.ExecuteTemplate(w, "model-info", info)
}

func (r *Renderer) ModelInfoError(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "model-info-error", nil)
}

// InlineError renders msg inside an error block.
func (r *Renderer) InlineError(w io.Writer, msg string) error {
	return r.tmpl.ExecuteTemplate(w, "inline-error", msg)
}
