// Package memberman provides the typed client for the SCP-JP member
// management API: sites, users, site memberships, application passwords, and
// site application (join request) review.
//
// Every method issues one HTTP request and decodes the JSON response into a
// typed result. The client holds no state beyond its configuration and is
// safe for concurrent use. Pagination and filter parameters are passed
// through to the service as-is; there is no retry, caching, or pagination
// orchestration here.
package memberman

import (
	"github.com/scp-jp/scpjp-go"
)

// Client is a member management API client bound to one base URL and API key.
type Client struct {
	api *scpjp.Client
}

// NewClient creates a client for the member management API. The API key is
// sent as a bearer token with every request.
func NewClient(baseURL, apiKey string, opts ...scpjp.Option) (*Client, error) {
	api, err := scpjp.NewClient(baseURL, apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}
