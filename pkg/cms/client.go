package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Entry is a marketing copy document served by the headless content service.
type Entry struct {
	Slug      string          `json:"slug"`
	Locale    string          `json:"locale"`
	Title     string          `json:"title"`
	Body      json.RawMessage `json:"body"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Client talks to the headless content service. The service is consumed
// read-only; this API never mutates marketing content.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a content client with a bounded request timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// GetEntry fetches a single content entry for a tenant by slug.
func (c *Client) GetEntry(ctx context.Context, tenantID, slug string) (*Entry, error) {
	endpoint := fmt.Sprintf("%s/api/content/%s?tenant=%s", c.baseURL, url.PathEscape(slug), url.QueryEscape(tenantID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build content request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch content entry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrEntryNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("content service status %d: %s", resp.StatusCode, string(body))
	}

	var entry Entry
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return nil, fmt.Errorf("decode content entry: %w", err)
	}
	if entry.Slug == "" {
		entry.Slug = slug
	}
	return &entry, nil
}

// ErrEntryNotFound signals a missing content entry.
var ErrEntryNotFound = fmt.Errorf("content entry not found")
