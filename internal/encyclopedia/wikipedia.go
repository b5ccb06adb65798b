package encyclopedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://en.wikipedia.org"

	// defaultTimeout bounds the lookup; a timed-out lookup is treated as
	// a failed one by callers (fail-closed), never retried here.
	defaultTimeout = 5 * time.Second
)

// ErrEmptyTitle is returned when there is nothing to look up
var ErrEmptyTitle = errors.New("title cannot be empty")

// Config holds configuration for the Wikipedia client
type Config struct {
	// BaseURL overrides the Wikipedia endpoint, mainly for tests
	BaseURL string

	// HTTPClient overrides the default client with its request timeout
	HTTPClient *http.Client
}

// wikipediaClient implements Client against the Wikipedia REST summary endpoint
type wikipediaClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewWikipedia creates a Wikipedia-backed lookup client
func NewWikipedia(cfg *Config) *wikipediaClient {
	baseURL := defaultBaseURL
	httpClient := &http.Client{Timeout: defaultTimeout}

	if cfg != nil {
		if cfg.BaseURL != "" {
			baseURL = strings.TrimSuffix(cfg.BaseURL, "/")
		}
		if cfg.HTTPClient != nil {
			httpClient = cfg.HTTPClient
		}
	}

	return &wikipediaClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// summaryResponse is the slice of the summary payload we care about
type summaryResponse struct {
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// LookupTitle queries the page summary endpoint. A 200 is a hit, a 404 a
// clean miss; anything else is an error for the caller to treat as it
// sees fit.
func (c *wikipediaClient) LookupTitle(ctx context.Context, input *LookupTitleInput) (*LookupTitleOutput, error) {
	if input == nil || strings.TrimSpace(input.Title) == "" {
		return nil, ErrEmptyTitle
	}

	title := strings.TrimSpace(input.Title)
	endpoint := fmt.Sprintf("%s/api/rest_v1/page/summary/%s", c.baseURL, url.PathEscape(title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var summary summaryResponse
		if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
			return nil, fmt.Errorf("failed to decode lookup response: %w", err)
		}

		pageURL := summary.ContentURLs.Desktop.Page
		if pageURL == "" {
			pageURL = fmt.Sprintf("%s/wiki/%s", c.baseURL, url.PathEscape(title))
		}

		return &LookupTitleOutput{
			Found: true,
			URL:   pageURL,
		}, nil
	case http.StatusNotFound:
		return &LookupTitleOutput{Found: false}, nil
	default:
		return nil, fmt.Errorf("lookup returned status %d", resp.StatusCode)
	}
}
