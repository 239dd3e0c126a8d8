// Package scpjp provides the shared HTTP core for the SCP-JP backend API
// clients. Service bindings live in the memberman and linker subpackages;
// this package holds the request plumbing, the error type, and the common
// query-string helpers they share.
package scpjp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultTimeout bounds every request unless the caller injects a custom
// http.Client.
const defaultTimeout = 30 * time.Second

const defaultUserAgent = "scpjp-go"

// Client is the transport shared by the service bindings. Its configuration
// (base URL, API key, underlying http.Client) is read-only after construction,
// so a single instance may be used concurrently from any number of goroutines.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	apiKey     string
	userAgent  string
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client. Use this to inject a
// custom transport (caching, instrumentation) or an httptest server's client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a transport bound to baseURL, authenticating every
// request with the given API key as a bearer token. A trailing slash on
// baseURL is ignored.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q is missing a scheme or host", baseURL)
	}

	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    u,
		apiKey:     apiKey,
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the resolved base URL the client was constructed with.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// NewRequest builds an API request. path is appended to the base URL, must
// start with a slash, and is taken as already escaped so callers can embed
// path-escaped identifiers. If body is non-nil it is JSON-encoded.
func (c *Client) NewRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL.String() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, buf)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// Do sends the request and decodes a successful JSON response into v.
// Non-2xx responses are returned as *ErrorResponse; v may be nil when the
// caller does not need the body.
func (c *Client) Do(req *http.Request, v any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		// Drain so keep-alive connections can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if err := CheckResponse(resp); err != nil {
		return err
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

// Call is the one-shot helper the service bindings use: build the request,
// send it, decode into v.
func (c *Client) Call(ctx context.Context, method, path string, query url.Values, body, v any) error {
	req, err := c.NewRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	return c.Do(req, v)
}
