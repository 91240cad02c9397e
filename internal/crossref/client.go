// Package crossref looks up DOIs for records that lack one, using the
// Crossref works API.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Crossref REST API base URL.
	BaseURL = "https://api.crossref.org"

	// RateLimit stays well inside Crossref's polite-pool guidance.
	RateLimit = 1.0

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is a rate-limited HTTP client for the Crossref API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new Crossref API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type worksResponse struct {
	Message struct {
		Items []struct {
			DOI   string   `json:"DOI"`
			Title []string `json:"title"`
		} `json:"items"`
	} `json:"message"`
}

// LookupDOI queries Crossref for the best bibliographic match on title
// and first-author surname and returns its DOI. The result is accepted
// only when the returned title matches the query title, so a near-miss
// from the search index never pollutes a record. Returns "" (no error)
// when nothing matches.
func (c *Client) LookupDOI(ctx context.Context, title, authorLast string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("query.bibliographic", title+" "+authorLast)
	q.Set("rows", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/works?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("querying crossref: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("crossref returned %s", resp.Status)
	}

	var works worksResponse
	if err := json.NewDecoder(resp.Body).Decode(&works); err != nil {
		return "", fmt.Errorf("decoding crossref response: %w", err)
	}

	if len(works.Message.Items) == 0 {
		return "", nil
	}
	item := works.Message.Items[0]
	if len(item.Title) == 0 || !titlesMatch(item.Title[0], title) {
		return "", nil
	}
	return item.DOI, nil
}

// titlesMatch compares titles case-insensitively, ignoring spacing and
// punctuation differences the search index introduces.
func titlesMatch(a, b string) bool {
	return normalizeTitle(a) == normalizeTitle(b)
}

func normalizeTitle(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
