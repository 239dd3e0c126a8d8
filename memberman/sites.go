package memberman

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/scp-jp/scpjp-go"
)

// ListSites returns every site with its current member count.
func (c *Client) ListSites(ctx context.Context) ([]SiteWithMembersCount, error) {
	var sites []SiteWithMembersCount
	if err := c.api.Call(ctx, http.MethodGet, "/v1/sites/", nil, nil, &sites); err != nil {
		return nil, fmt.Errorf("listing sites: %w", err)
	}
	return sites, nil
}

// CreateSite registers a new site. The service rejects an already-used ID
// with a 400.
func (c *Client) CreateSite(ctx context.Context, siteID int64, name string) (*Site, error) {
	body := struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}{ID: siteID, Name: name}

	site := new(Site)
	if err := c.api.Call(ctx, http.MethodPost, "/v1/sites/", nil, body, site); err != nil {
		return nil, fmt.Errorf("creating site %d: %w", siteID, err)
	}
	return site, nil
}

// UpdateSite renames a site.
func (c *Client) UpdateSite(ctx context.Context, siteID int64, name string) (*Site, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: name}

	site := new(Site)
	path := fmt.Sprintf("/v1/sites/%d", siteID)
	if err := c.api.Call(ctx, http.MethodPatch, path, nil, body, site); err != nil {
		return nil, fmt.Errorf("updating site %d: %w", siteID, err)
	}
	return site, nil
}

// MembersStatsOptions narrows the date range of SiteMembersStats. Both
// fields use the service's YYYY-MM-DD date form and are optional.
type MembersStatsOptions struct {
	FromDate string `url:"from_date,omitempty"`
	ToDate   string `url:"to_date,omitempty"`
}

// SiteMembersStats returns the current member count of a site and its daily
// history, optionally bounded by opt's date range. opt may be nil.
func (c *Client) SiteMembersStats(ctx context.Context, siteID int64, opt *MembersStatsOptions) (*MembersStats, error) {
	var q url.Values
	if opt != nil {
		var err error
		if q, err = scpjp.Values(*opt); err != nil {
			return nil, err
		}
	}

	stats := new(MembersStats)
	path := fmt.Sprintf("/v1/sites/%d/members/stats", siteID)
	if err := c.api.Call(ctx, http.MethodGet, path, q, nil, stats); err != nil {
		return nil, fmt.Errorf("fetching members stats for site %d: %w", siteID, err)
	}
	return stats, nil
}

// UpdateSiteMemberPermission sets a member's site-local permission level.
func (c *Client) UpdateSiteMemberPermission(ctx context.Context, siteID, userID int64, level PermissionLevel) (*SiteMember, error) {
	body := struct {
		SitePermissionLevel PermissionLevel `json:"site_permission_level"`
	}{SitePermissionLevel: level}

	member := new(SiteMember)
	path := fmt.Sprintf("/v1/sites/%d/members/%d/permission", siteID, userID)
	if err := c.api.Call(ctx, http.MethodPatch, path, nil, body, member); err != nil {
		return nil, fmt.Errorf("updating permission of user %d on site %d: %w", userID, siteID, err)
	}
	return member, nil
}

// CheckSiteMemberPermission reports whether a site member holds at least the
// given permission level.
func (c *Client) CheckSiteMemberPermission(ctx context.Context, siteID, userID int64, level PermissionLevel) (bool, error) {
	q := url.Values{"permission_level": {strconv.Itoa(int(level))}}

	var result struct {
		HasPermission bool `json:"has_permission"`
	}
	path := fmt.Sprintf("/v1/sites/%d/members/%d/permission/check", siteID, userID)
	if err := c.api.Call(ctx, http.MethodGet, path, q, nil, &result); err != nil {
		return false, fmt.Errorf("checking permission of user %d on site %d: %w", userID, siteID, err)
	}
	return result.HasPermission, nil
}

// ChangeSiteMemberPrivilege performs a privilege action (e.g. promote,
// demote) on a site member and returns the service's result message.
func (c *Client) ChangeSiteMemberPrivilege(ctx context.Context, siteID, userID int64, action string) (map[string]string, error) {
	body := struct {
		Action string `json:"action"`
	}{Action: action}

	var result map[string]string
	path := fmt.Sprintf("/v1/sites/%d/members/%d/privilege", siteID, userID)
	if err := c.api.Call(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, fmt.Errorf("changing privilege of user %d on site %d: %w", userID, siteID, err)
	}
	return result, nil
}
