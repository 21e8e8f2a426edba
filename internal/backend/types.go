package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Product is one catalog entry as returned by the search backend.
type Product struct {
	ID             int      `json:"id,omitempty"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Price          float64  `json:"price"`
	OriginalPrice  *float64 `json:"originalPrice,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
	ReviewCount    *int     `json:"reviewCount,omitempty"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	Specs          Specs    `json:"specs,omitempty"`
	MatchScore     *float64 `json:"matchScore,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// UnmarshalJSON decodes a product and rejects one without a numeric price.
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	aux := struct {
		*plain
		Price *float64 `json:"price"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Price == nil {
		return fmt.Errorf("product %q has no price", p.Name)
	}
	p.Price = *aux.Price
	return nil
}

// Spec is a single key/value specification line.
type Spec struct {
	Key   string
	Value string
}

// Specs keeps product specifications in the order the backend sent them.
type Specs []Spec

// Get returns the value stored under key.
func (s Specs) Get(key string) (string, bool) {
	for _, spec := range s {
		if spec.Key == key {
			return spec.Value, true
		}
	}
	return "", false
}

// UnmarshalJSON reads a JSON object preserving member order. Non-string
// scalar values keep their JSON text.
func (s *Specs) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("specs: expected object, got %v", tok)
	}

	var out Specs
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw interface{}
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("specs %q: %w", key, err)
		}
		out = append(out, Spec{Key: key, Value: scalarText(raw)})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

// MarshalJSON writes the specs back as an ordered JSON object.
func (s Specs) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, spec := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(spec.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(spec.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Scalar is a JSON string or number kept as display text.
type Scalar string

// UnmarshalJSON accepts any JSON scalar.
func (v *Scalar) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*v = Scalar(scalarText(raw))
	return nil
}

func scalarText(raw interface{}) string {
	switch x := raw.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		b, _ := json.Marshal(x)
		return string(b)
	}
}

// QueryResult is the answer to a primary query or a text search.
type QueryResult struct {
	Response  string    `json:"response"`
	Products  []Product `json:"products"`
	Rationale []string  `json:"rationale,omitempty"`
}

// FollowupResult is the answer to a follow-up question.
type FollowupResult struct {
	Response string `json:"response"`
}

// TechnicalInfo describes the backend's retrieval stack.
type TechnicalInfo struct {
	EmbeddingModel   Scalar `json:"embeddingModel"`
	VectorDatabase   Scalar `json:"vectorDatabase"`
	LLM              Scalar `json:"llm"`
	VectorDimensions Scalar `json:"vectorDimensions"`
	SimilarityMetric Scalar `json:"similarityMetric"`
	CatalogSize      Scalar `json:"catalogSize"`
}

// InfoItem is one labelled technical detail.
type InfoItem struct {
	Label string
	Value string
}

// Items returns the technical details in display order.
func (t TechnicalInfo) Items() []InfoItem {
	return []InfoItem{
		{Label: "Embedding Model", Value: string(t.EmbeddingModel)},
		{Label: "Vector Database", Value: string(t.VectorDatabase)},
		{Label: "LLM", Value: string(t.LLM)},
		{Label: "Vector Dimensions", Value: string(t.VectorDimensions)},
		{Label: "Similarity Metric", Value: string(t.SimilarityMetric)},
		{Label: "Catalog Size", Value: string(t.CatalogSize)},
	}
}

// ModelInfo reports which model answers queries and how healthy it is.
type ModelInfo struct {
	Model  string      `json:"model"`
	Status ModelStatus `json:"status"`
}

// ModelStatus is the health block of ModelInfo.
type ModelStatus struct {
	Health     string  `json:"health"`
	Percentage float64 `json:"percentage"`
}

type queryRequest struct {
	Query string `json:"query"`
}

type followupRequest struct {
	OriginalQuery string `json:"originalQuery"`
	FollowupQuery string `json:"followupQuery"`
}
