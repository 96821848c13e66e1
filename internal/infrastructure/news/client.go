// Package news proxies the third-party headline API.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nyayasetu/portal-api/internal/core/domain"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20
)

// Config selects the upstream endpoint and query.
type Config struct {
	URL      string
	APIKey   string
	Country  string
	Category string
	Timeout  time.Duration
}

// Client implements ports.NewsService against a NewsAPI-compatible endpoint.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

// TopHeadlines returns the upstream JSON body untouched. Transport failures
// and non-JSON bodies wrap domain.ErrUpstreamUnavailable.
func (c *Client) TopHeadlines(ctx context.Context) (json.RawMessage, error) {
	u, err := url.Parse(c.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: bad url: %v", domain.ErrUpstreamUnavailable, err)
	}
	q := u.Query()
	if c.cfg.Country != "" {
		q.Set("country", c.cfg.Country)
	}
	if c.cfg.Category != "" {
		q.Set("category", c.cfg.Category)
	}
	q.Set("apiKey", c.cfg.APIKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrUpstreamUnavailable, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: upstream returned status %d with a non-JSON body", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}
	return json.RawMessage(body), nil
}

// redact strips the request URL, which carries the API key, from transport errors.
func redact(err error) error {
	if ue, ok := err.(*url.Error); ok {
		return fmt.Errorf("%s: %w", ue.Op, ue.Err)
	}
	return err
}
