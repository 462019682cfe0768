package languageapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"langcache/internal/config"
)

const maxResponseBytes = 64 << 20

// HTTPDoer describes the HTTP client used by HTTPClient.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPClient calls the language API over HTTP. Each call is a POST to
// <base>/<target>/<mode> with the query selectors in the URL and the body
// parameters form-encoded.
type HTTPClient struct {
	baseURL string
	token   string
	client  HTTPDoer
}

var _ Caller = (*HTTPClient)(nil)

// HTTPOption configures an HTTPClient.
type HTTPOption func(*HTTPClient)

// WithHTTPDoer overrides the default HTTP client.
func WithHTTPDoer(doer HTTPDoer) HTTPOption {
	return func(c *HTTPClient) {
		if doer != nil {
			c.client = doer
		}
	}
}

// NewHTTPClient creates an HTTP caller from API configuration.
func NewHTTPClient(cfg config.API, opts ...HTTPOption) (*HTTPClient, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("language api base url required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse language api url: %w", err)
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := &HTTPClient{
		baseURL: baseURL,
		token:   strings.TrimSpace(cfg.Token),
		client:  &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Call implements Caller.
func (c *HTTPClient) Call(ctx context.Context, target, mode string, query, body url.Values) (*Response, error) {
	endpoint, err := url.Parse(c.baseURL + "/" + url.PathEscape(target) + "/" + url.PathEscape(mode))
	if err != nil {
		return nil, fmt.Errorf("build language api url: %w", err)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(body.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build language api request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("language api %s: %w", query.Get("action"), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read language api response: %w", err)
	}

	decoded, decodeErr := decodeResponse(raw)
	if resp.StatusCode >= http.StatusMultipleChoices {
		// Error envelopes are passed through so the validator can report their
		// type and code; anything else is a transport failure.
		if decodeErr == nil && decoded.HasStatus() {
			return decoded, nil
		}
		return nil, fmt.Errorf("language api returned %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode language api response: %w", decodeErr)
	}
	return decoded, nil
}

// decodeResponse parses an envelope; a bare false body yields a nil response.
func decodeResponse(raw []byte) (*Response, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("false")) || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var resp Response
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
