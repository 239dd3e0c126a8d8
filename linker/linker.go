// Package linker provides the typed client for the SCP-JP account linking
// API, which maintains the mapping between Discord accounts and Wikidot
// accounts: the interactive linking flow, bulk lookups, listings, and
// unlink/relink management.
//
// Like the memberman client, each method is one request/response exchange
// with no client-side state, retries, or caching.
package linker

import (
	"github.com/scp-jp/scpjp-go"
)

// Client is an account linking API client bound to one base URL and API key.
type Client struct {
	api *scpjp.Client
}

// NewClient creates a client for the account linking API. The API key is
// sent as a bearer token with every request.
func NewClient(baseURL, apiKey string, opts ...scpjp.Option) (*Client, error) {
	api, err := scpjp.NewClient(baseURL, apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}
