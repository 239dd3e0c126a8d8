package memberman

import (
	"context"
	"fmt"
	"net/http"

	"github.com/scp-jp/scpjp-go"
)

// ListApplicationPasswordsOptions filters and paginates
// ListApplicationPasswords.
type ListApplicationPasswordsOptions struct {
	SiteID    *int64  `url:"site_id,omitempty"`
	Password  *string `url:"password,omitempty"`
	IsEnabled *bool   `url:"is_enabled,omitempty"`

	scpjp.ListOptions
}

// CreateApplicationPassword registers a new join password for a site.
func (c *Client) CreateApplicationPassword(ctx context.Context, siteID int64, password string, enabled bool) (*ApplicationPassword, error) {
	body := struct {
		SiteID    int64  `json:"site_id"`
		Password  string `json:"password"`
		IsEnabled bool   `json:"is_enabled"`
	}{SiteID: siteID, Password: password, IsEnabled: enabled}

	pw := new(ApplicationPassword)
	if err := c.api.Call(ctx, http.MethodPost, "/v1/application/passwords/", nil, body, pw); err != nil {
		return nil, fmt.Errorf("creating application password for site %d: %w", siteID, err)
	}
	return pw, nil
}

// ListApplicationPasswords returns join passwords matching opt's filters.
// opt may be nil for the service defaults.
func (c *Client) ListApplicationPasswords(ctx context.Context, opt *ListApplicationPasswordsOptions) ([]ApplicationPassword, error) {
	if opt == nil {
		opt = &ListApplicationPasswordsOptions{}
	}
	opt.ListOptions = opt.ListOptions.WithDefaults()

	q, err := scpjp.Values(*opt)
	if err != nil {
		return nil, err
	}

	var pws []ApplicationPassword
	if err := c.api.Call(ctx, http.MethodGet, "/v1/application/passwords/", q, nil, &pws); err != nil {
		return nil, fmt.Errorf("listing application passwords: %w", err)
	}
	return pws, nil
}

// ToggleApplicationPassword flips a join password's enabled state.
func (c *Client) ToggleApplicationPassword(ctx context.Context, passwordID int64) (*ApplicationPassword, error) {
	pw := new(ApplicationPassword)
	path := fmt.Sprintf("/v1/application/passwords/%d/toggle", passwordID)
	if err := c.api.Call(ctx, http.MethodPatch, path, nil, nil, pw); err != nil {
		return nil, fmt.Errorf("toggling application password %d: %w", passwordID, err)
	}
	return pw, nil
}

// UpdateApplicationPassword replaces a join password's text. The service
// refuses to update a password that has already been handed to a user.
func (c *Client) UpdateApplicationPassword(ctx context.Context, passwordID int64, password string) (*ApplicationPassword, error) {
	body := struct {
		Password string `json:"password"`
	}{Password: password}

	pw := new(ApplicationPassword)
	path := fmt.Sprintf("/v1/application/passwords/%d", passwordID)
	if err := c.api.Call(ctx, http.MethodPatch, path, nil, body, pw); err != nil {
		return nil, fmt.Errorf("updating application password %d: %w", passwordID, err)
	}
	return pw, nil
}
