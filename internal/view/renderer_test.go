package view

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/akashgh003/gen-ai-asgn/internal/backend"
)

func newTestRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func parse(t *testing.T, buf *bytes.Buffer) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(buf)
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	return doc
}

// cardFace returns the visible part of a card, without its detail template.
func cardFace(card *goquery.Selection) *goquery.Selection {
	face := card.Clone()
	face.Find("template").Remove()
	return face
}

func sampleProducts() []backend.Product {
	return []backend.Product{
		{
			Name:          "Aero 15",
			Description:   "Thin gaming laptop",
			Category:      "Laptops",
			Price:         1299.99,
			OriginalPrice: ptr(1499.99),
			Rating:        ptr(4.5),
			ReviewCount:   ptr(120),
			MatchScore:    ptr(0.92),
			Specs: backend.Specs{
				{Key: "processor", Value: "Intel Core i7-12700H"},
				{Key: "weight", Value: "2.1 kg"},
			},
			Recommendation: "Best balance of power and weight.",
		},
		{
			Name:     "Note 14",
			Category: "Laptops",
			Price:    799,
		},
	}
}

func TestPageHasRequiredElements(t *testing.T) {
	r := newTestRenderer(t, Options{})
	var buf bytes.Buffer
	if err := r.Page(&buf, PageData{ThemeClass: ThemeClass("dark"), PageID: "page-1"}); err != nil {
		t.Fatalf("Page: %v", err)
	}
	doc := parse(t, &buf)
	for _, id := range RequiredElements {
		if doc.Find("#"+id).Length() != 1 {
			t.Errorf("page missing #%s", id)
		}
	}
	if !doc.Find("body").HasClass("dark-theme") {
		t.Error("body should carry dark-theme")
	}
	if id, _ := doc.Find("body").Attr("data-page"); id != "page-1" {
		t.Errorf("data-page = %q", id)
	}
	if !doc.Find("#followup-section").HasClass("hidden") {
		t.Error("follow-up section should start hidden")
	}
}

func TestThemeClass(t *testing.T) {
	tests := map[string]string{"light": "light-theme", "dark": "dark-theme", "": "", "blue": ""}
	for in, want := range tests {
		if got := ThemeClass(in); got != want {
			t.Errorf("ThemeClass(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestQueryResults(t *testing.T) {
	r := newTestRenderer(t, Options{})
	var buf bytes.Buffer
	err := r.QueryResults(&buf, &backend.QueryResult{
		Response:  "Here are two laptops.",
		Products:  sampleProducts(),
		Rationale: []string{"Both fit the budget", "Both weigh under 2.5 kg"},
	})
	if err != nil {
		t.Fatalf("QueryResults: %v", err)
	}
	doc := parse(t, &buf)

	if got := doc.Find(".response-message").Text(); got != "Here are two laptops." {
		t.Errorf("response = %q", got)
	}
	cards := doc.Find(".product-card")
	if cards.Length() != 2 {
		t.Fatalf("cards = %d, want 2", cards.Length())
	}
	if got := cards.Eq(1).Find("template.product-detail-template .product-detail-name").Text(); got != "Note 14" {
		t.Errorf("second card detail = %q", got)
	}

	first := cardFace(cards.Eq(0))
	checks := map[string]string{
		".match-score":    "92% match",
		".rating-stars":   "★★★★☆",
		".review-count":   "(120 reviews)",
		".current-price":  "$1299.99",
		".original-price": "$1499.99",
		".price-savings":  "13% off",
	}
	for sel, want := range checks {
		if got := strings.TrimSpace(first.Find(sel).Text()); got != want {
			t.Errorf("%s = %q, want %q", sel, got, want)
		}
	}
	if tags := first.Find(".product-tag"); tags.Length() != 2 || tags.Eq(1).Text() != "Intel Core" {
		t.Errorf("tags = %q", tags.Text())
	}

	second := cardFace(cards.Eq(1))
	if second.Find(".match-score").Length() != 0 || second.Find(".original-price").Length() != 0 {
		t.Error("second card should have no match score or original price")
	}
	if got := second.Find(".review-count").Text(); got != "(0 reviews)" {
		t.Errorf("missing review count = %q", got)
	}

	if title := doc.Find(".rationale-title").Text(); title != "Why these recommendations?" {
		t.Errorf("rationale title = %q", title)
	}
	if doc.Find(".rationale-item").Length() != 2 {
		t.Errorf("rationale items = %d", doc.Find(".rationale-item").Length())
	}
}

func TestQueryResultsWithoutProducts(t *testing.T) {
	r := newTestRenderer(t, Options{})
	var buf bytes.Buffer
	if err := r.QueryResults(&buf, &backend.QueryResult{Response: "Nothing matched.", Rationale: []string{"Budget too low"}}); err != nil {
		t.Fatalf("QueryResults: %v", err)
	}
	doc := parse(t, &buf)
	if doc.Find(".product-grid").Length() != 0 {
		t.Error("empty result should have no grid")
	}
	if doc.Find(".rationale-item").Length() != 1 {
		t.Error("rationale should still render")
	}
}

func TestSearchResults(t *testing.T) {
	r := newTestRenderer(t, Options{})

	var buf bytes.Buffer
	if err := r.SearchResults(&buf, &backend.QueryResult{
		Response:  "Found 2 products.",
		Products:  sampleProducts(),
		Rationale: []string{"Keyword match"},
	}); err != nil {
		t.Fatalf("SearchResults: %v", err)
	}
	doc := parse(t, &buf)
	if got := doc.Find(".product-card").First().Find("template .product-detail-name").Text(); got != "Aero 15" {
		t.Errorf("first card detail = %q", got)
	}
	if got := doc.Find(".rationale-section h3").Text(); got != "Why these results?" {
		t.Errorf("rationale title = %q", got)
	}

	buf.Reset()
	if err := r.SearchResults(&buf, &backend.QueryResult{Response: "No matches.", Rationale: []string{"ignored"}}); err != nil {
		t.Fatalf("SearchResults: %v", err)
	}
	doc = parse(t, &buf)
	if got := doc.Find(".response-header").Text(); got != "No matches." {
		t.Errorf("header = %q", got)
	}
	if doc.Find(".rationale-section").Length() != 0 {
		t.Error("rationale should be omitted without products")
	}
}

func TestFollowup(t *testing.T) {
	r := newTestRenderer(t, Options{})
	var buf bytes.Buffer
	if err := r.Followup(&buf, "Which is lighter?", &backend.FollowupResult{Response: "The Note 14."}); err != nil {
		t.Fatalf("Followup: %v", err)
	}
	doc := parse(t, &buf)
	if got := doc.Find(".followup-question").Text(); got != `"Which is lighter?"` {
		t.Errorf("question = %q", got)
	}
	if got := doc.Find(".followup-answer").Text(); got != "The Note 14." {
		t.Errorf("answer = %q", got)
	}
}

func TestProductDetail(t *testing.T) {
	r := newTestRenderer(t, Options{})
	var buf bytes.Buffer
	if err := r.ProductDetail(&buf, sampleProducts()[0]); err != nil {
		t.Fatalf("ProductDetail: %v", err)
	}
	doc := parse(t, &buf)

	if got := doc.Find(".product-detail-name").Text(); got != "Aero 15" {
		t.Errorf("name = %q", got)
	}
	specs := doc.Find(".spec-item")
	if specs.Length() != 2 {
		t.Fatalf("specs = %d, want 2", specs.Length())
	}
	if got := specs.Eq(0).Find(".spec-icon").Text(); got != "💻" {
		t.Errorf("first icon = %q", got)
	}
	if got := specs.Eq(0).Find(".spec-label").Text(); got != "Processor" {
		t.Errorf("first label = %q", got)
	}
	if got := specs.Eq(1).Find(".spec-icon").Text(); got != DefaultSpecIcon {
		t.Errorf("unknown key icon = %q", got)
	}
	if doc.Find(".no-image").Text() != "No image available" {
		t.Error("missing image placeholder")
	}
	if got := doc.Find(".product-detail-recommendation h3").Text(); got != "Why We Recommend This" {
		t.Errorf("recommendation heading = %q", got)
	}

	buf.Reset()
	if err := r.ProductDetail(&buf, sampleProducts()[1]); err != nil {
		t.Fatalf("ProductDetail: %v", err)
	}
	doc = parse(t, &buf)
	if doc.Find(".product-detail-recommendation").Length() != 0 {
		t.Error("recommendation block should be omitted")
	}
}

func TestMarkupIsEscaped(t *testing.T) {
	r := newTestRenderer(t, Options{})
	p := backend.Product{
		Name:     `<script>alert("x")</script>`,
		Price:    1,
		ImageURL: "javascript:alert(1)",
	}
	var buf bytes.Buffer
	if err := r.ProductDetail(&buf, p); err != nil {
		t.Fatalf("ProductDetail: %v", err)
	}
	doc := parse(t, &buf)
	if doc.Find("script").Length() != 0 {
		t.Error("product name was injected as markup")
	}
	if got := doc.Find(".product-detail-name").Text(); got != p.Name {
		t.Errorf("name text = %q", got)
	}
	if src, _ := doc.Find("img").Attr("src"); strings.HasPrefix(src, "javascript:") {
		t.Errorf("unsafe image src kept: %q", src)
	}

	buf.Reset()
	if err := r.QueryResults(&buf, &backend.QueryResult{Response: "<b>bold</b>"}); err != nil {
		t.Fatalf("QueryResults: %v", err)
	}
	doc = parse(t, &buf)
	if doc.Find(".response-message b").Length() != 0 {
		t.Error("answer markup should be escaped")
	}
}

func TestMarkdownAnswers(t *testing.T) {
	r := newTestRenderer(t, Options{Markdown: true})
	var buf bytes.Buffer
	if err := r.QueryResults(&buf, &backend.QueryResult{Response: "**Top pick** <script>alert(1)</script>"}); err != nil {
		t.Fatalf("QueryResults: %v", err)
	}
	doc := parse(t, &buf)
	if got := doc.Find(".response-message strong").Text(); got != "Top pick" {
		t.Errorf("strong = %q", got)
	}
	if doc.Find("script").Length() != 0 {
		t.Error("raw html should be dropped")
	}
}

func TestInfoCards(t *testing.T) {
	r := newTestRenderer(t, Options{})

	var buf bytes.Buffer
	if err := r.TechnicalInfo(&buf, &backend.TechnicalInfo{EmbeddingModel: "all-MiniLM-L6-v2", VectorDimensions: "384"}); err != nil {
		t.Fatalf("TechnicalInfo: %v", err)
	}
	doc := parse(t, &buf)
	items := doc.Find(".tech-info-item")
	if items.Length() != 6 {
		t.Fatalf("items = %d, want 6", items.Length())
	}
	if got := items.Eq(0).Find(".tech-info-label").Text(); got != "Embedding Model:" {
		t.Errorf("first label = %q", got)
	}
	if got := items.Eq(3).Find(".tech-info-value").Text(); got != "384" {
		t.Errorf("dimensions = %q", got)
	}

	buf.Reset()
	if err := r.ModelInfo(&buf, &backend.ModelInfo{Model: "llama3", Status: backend.ModelStatus{Health: "Good", Percentage: 140}}); err != nil {
		t.Fatalf("ModelInfo: %v", err)
	}
	doc = parse(t, &buf)
	style, _ := doc.Find(".progress-fill").Attr("style")
	if !strings.Contains(style, "100%") {
		t.Errorf("style = %q, want clamped width", style)
	}

	buf.Reset()
	if err := r.TechnicalInfoError(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Error loading technical information.") {
		t.Errorf("technical error = %q", buf.String())
	}
	buf.Reset()
	if err := r.ModelInfoError(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Error loading model information.") {
		t.Errorf("model error = %q", buf.String())
	}
}

func TestCustomLayout(t *testing.T) {
	dir := t.TempDir()

	var page strings.Builder
	page.WriteString(`<html><body{{if .ThemeClass}} class="{{.ThemeClass}}"{{end}}>`)
	for _, id := range RequiredElements {
		page.WriteString(`<div id="` + id + `"></div>`)
	}
	page.WriteString(`</body></html>`)
	good := filepath.Join(dir, "good.html")
	if err := os.WriteFile(good, []byte(page.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(Options{LayoutFile: good}); err != nil {
		t.Errorf("valid layout rejected: %v", err)
	}

	bad := filepath.Join(dir, "bad.html")
	if err := os.WriteFile(bad, []byte(`<html><body><div id="search-form"></div></body></html>`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := New(Options{LayoutFile: bad})
	if err == nil {
		t.Fatal("expected error for layout without required elements")
	}
	if !strings.Contains(err.Error(), "followup-section") || strings.Contains(err.Error(), "search-form,") {
		t.Errorf("error = %v", err)
	}

	if _, err := New(Options{LayoutFile: filepath.Join(dir, "missing.html")}); err == nil {
		t.Error("expected error for missing layout file")
	}
}

func TestCardDetailMatchesProductDetail(t *testing.T) {
	r := newTestRenderer(t, Options{})
	products := sampleProducts()

	var buf bytes.Buffer
	if err := r.QueryResults(&buf, &backend.QueryResult{Response: "ok", Products: products}); err != nil {
		t.Fatalf("QueryResults: %v", err)
	}
	embedded, err := parse(t, &buf).Find(".product-card").Eq(0).Find("template .product-detail").Html()
	if err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := r.ProductDetail(&buf, products[0]); err != nil {
		t.Fatalf("ProductDetail: %v", err)
	}
	standalone, err := parse(t, &buf).Find(".product-detail").Html()
	if err != nil {
		t.Fatal(err)
	}
	if embedded != standalone {
		t.Errorf("card detail differs from ProductDetail:\n%s\n---\n%s", embedded, standalone)
	}
}

func TestScriptRequestHandling(t *testing.T) {
	checks := []struct {
		name string
		want string
	}{
		{"sends page id", `init.headers[HEADER_PAGE] = document.body.getAttribute("data-page")`},
		{"drops responses of replaced requests", `if (latest[target.id] !== token) { return false; }`},
		{"restores content on alert", `if (!opts.keepLoading) { target.innerHTML = previous; }`},
		{"search keeps its loading text on alert", `keepLoading: true`},
		{"detail opens from the card", `card.querySelector("template.product-detail-template")`},
	}
	for _, c := range checks {
		if !strings.Contains(JS, c.want) {
			t.Errorf("%s: script lacks %q", c.name, c.want)
		}
	}
	if strings.Contains(JS, "/ui/products/") {
		t.Error("opening a card should not fetch anything")
	}
	if n := strings.Count(JS, "keepLoading: true"); n != 1 {
		t.Errorf("only text search keeps its loading text, found %d", n)
	}
}
