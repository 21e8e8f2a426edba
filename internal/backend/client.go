// Package backend is a typed client for the product-search backend API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client talks to the backend over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the backend at baseURL. A zero timeout
// keeps the transport default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Query sends a primary natural-language query.
func (c *Client) Query(ctx context.Context, query string) (*QueryResult, error) {
	var out QueryResult
	if err := c.do(ctx, http.MethodPost, "/api/query", queryRequest{Query: query}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Followup asks a follow-up question scoped to an earlier query.
func (c *Client) Followup(ctx context.Context, originalQuery, followupQuery string) (*FollowupResult, error) {
	req := followupRequest{OriginalQuery: originalQuery, FollowupQuery: followupQuery}
	var out FollowupResult
	if err := c.do(ctx, http.MethodPost, "/api/query/followup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs a keyword text search.
func (c *Client) Search(ctx context.Context, query string) (*QueryResult, error) {
	var out QueryResult
	if err := c.do(ctx, http.MethodGet, "/api/search?q="+url.QueryEscape(query), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TechnicalInfo fetches the backend's retrieval stack description.
func (c *Client) TechnicalInfo(ctx context.Context) (*TechnicalInfo, error) {
	var out TechnicalInfo
	if err := c.do(ctx, http.MethodGet, "/api/technical-info", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ModelInfo fetches the answering model and its health.
func (c *Client) ModelInfo(ctx context.Context) (*ModelInfo, error) {
	var out ModelInfo
	if err := c.do(ctx, http.MethodGet, "/api/model-info", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Products lists the whole catalog.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Product fetches a single catalog entry by id.
func (c *Client) Product(ctx context.Context, id int) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("backend request %s failed: %w", path, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return &StatusError{Endpoint: endpointName(path), StatusCode: httpResp.StatusCode, Body: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpointName(path), err)
	}
	return nil
}

func endpointName(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
