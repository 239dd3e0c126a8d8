package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gregjones/httpcache"
)

// config holds the CLI configuration loaded from environment variables.
// The library itself takes explicit constructor parameters; env vars are a
// CLI convenience only.
type config struct {
	MemberURL   string
	MemberKey   string
	LinkerURL   string
	LinkerKey   string
	AuditURL    string
	AuditName   string
	AuditKey    string
	HTTPTimeout time.Duration
}

// loadConfig reads configuration from environment variables. Service URLs
// and keys are validated lazily by the commands that need them, so e.g.
// linker commands work without member management credentials.
// SCPJP_HTTP_TIMEOUT defaults to 30s.
func loadConfig() (*config, error) {
	timeout := 30 * time.Second
	if v, ok := os.LookupEnv("SCPJP_HTTP_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SCPJP_HTTP_TIMEOUT has invalid duration %q: %w", v, err)
		}
		timeout = parsed
	}

	return &config{
		MemberURL:   os.Getenv("SCPJP_MEMBER_API_URL"),
		MemberKey:   os.Getenv("SCPJP_MEMBER_API_KEY"),
		LinkerURL:   os.Getenv("SCPJP_LINKER_API_URL"),
		LinkerKey:   os.Getenv("SCPJP_LINKER_API_KEY"),
		AuditURL:    os.Getenv("SCPJP_AUDIT_LOG_URL"),
		AuditName:   os.Getenv("SCPJP_AUDIT_LOG_APP"),
		AuditKey:    os.Getenv("SCPJP_AUDIT_LOG_KEY"),
		HTTPTimeout: timeout,
	}, nil
}

// newHTTPClient builds the transport stack shared by every command:
// an in-memory caching RoundTripper so repeated reads within one invocation
// hit conditional requests, under the configured timeout.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: httpcache.NewMemoryCacheTransport(),
		Timeout:   timeout,
	}
}
