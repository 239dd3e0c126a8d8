// Package auditlog sends application audit events to the SCP-JP audit log
// collector. The collector authenticates callers by app name and key headers
// rather than a bearer token.
package auditlog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Entry is one audit event. Notes and IPAddress are optional.
type Entry struct {
	Action    string `json:"action"`
	Message   string `json:"message"`
	Notes     string `json:"notes"`
	IPAddress string `json:"ip_address"`
}

// Logger records audit entries. Client sends them to the collector; Nop
// discards them for environments without one.
type Logger interface {
	Log(ctx context.Context, e Entry) error
}

// Client posts audit entries to a collector endpoint.
type Client struct {
	endpoint   string
	appName    string
	apiKey     string
	httpClient *http.Client
}

var _ Logger = (*Client)(nil)

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates an audit log client. appName and apiKey identify the
// calling application to the collector.
func NewClient(endpoint, appName, apiKey string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		appName:    appName,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Log sends one entry to the collector. The collector acknowledges with
// 201 Created; any other status is an error carrying the response body.
func (c *Client) Log(ctx context.Context, e Entry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding audit entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("X-AppName", c.appName)
	req.Header.Set("X-AppKey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("audit log rejected with %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}

// Nop discards every entry. Use it where no collector is configured.
type Nop struct{}

var _ Logger = Nop{}

// Log implements Logger and always succeeds.
func (Nop) Log(context.Context, Entry) error { return nil }
