package memberman

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/scp-jp/scpjp-go"
)

// ListUsersOptions filters and paginates ListUsers. Nil pointer fields are
// omitted from the query string entirely.
type ListUsersOptions struct {
	ID               *int64            `url:"id,omitempty"`
	Name             *string           `url:"name,omitempty"`
	UnixName         *string           `url:"unix_name,omitempty"`
	PermissionLevels []PermissionLevel `url:"permission_levels,omitempty"`
	IsDeleted        *bool             `url:"is_deleted,omitempty"`
	SiteIDs          []int64           `url:"site_ids,omitempty"`

	scpjp.ListOptions
}

// CreateUser registers a new user. A zero PermissionLevel defaults to
// visitor. The service rejects an already-used ID with a 400.
func (c *Client) CreateUser(ctx context.Context, u UserCreate) (*User, error) {
	if u.PermissionLevel == 0 {
		u.PermissionLevel = PermissionLevelVisitor
	}

	user := new(User)
	if err := c.api.Call(ctx, http.MethodPost, "/v1/users/", nil, u, user); err != nil {
		return nil, fmt.Errorf("creating user %d: %w", u.ID, err)
	}
	return user, nil
}

// ListUsers returns users matching opt's filters, with their site
// memberships. opt may be nil for the service defaults (first page of 100,
// newest first).
func (c *Client) ListUsers(ctx context.Context, opt *ListUsersOptions) ([]UserWithSiteMemberships, error) {
	if opt == nil {
		opt = &ListUsersOptions{}
	}
	opt.ListOptions = opt.ListOptions.WithDefaults()

	q, err := scpjp.Values(*opt)
	if err != nil {
		return nil, err
	}

	var users []UserWithSiteMemberships
	if err := c.api.Call(ctx, http.MethodGet, "/v1/users/", q, nil, &users); err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// GetUser returns a single user with their site memberships.
func (c *Client) GetUser(ctx context.Context, userID int64) (*UserWithSiteMemberships, error) {
	user := new(UserWithSiteMemberships)
	path := fmt.Sprintf("/v1/users/%d", userID)
	if err := c.api.Call(ctx, http.MethodGet, path, nil, nil, user); err != nil {
		return nil, fmt.Errorf("fetching user %d: %w", userID, err)
	}
	return user, nil
}

// UpdateUser applies a partial update; only upd's non-nil fields are sent.
func (c *Client) UpdateUser(ctx context.Context, userID int64, upd UserUpdate) (*User, error) {
	user := new(User)
	path := fmt.Sprintf("/v1/users/%d", userID)
	if err := c.api.Call(ctx, http.MethodPatch, path, nil, upd, user); err != nil {
		return nil, fmt.Errorf("updating user %d: %w", userID, err)
	}
	return user, nil
}

// UpdateUserPermission sets a user's global permission level.
func (c *Client) UpdateUserPermission(ctx context.Context, userID int64, level PermissionLevel) (*User, error) {
	body := struct {
		PermissionLevel PermissionLevel `json:"permission_level"`
	}{PermissionLevel: level}

	user := new(User)
	path := fmt.Sprintf("/v1/users/%d/permission", userID)
	if err := c.api.Call(ctx, http.MethodPatch, path, nil, body, user); err != nil {
		return nil, fmt.Errorf("updating permission of user %d: %w", userID, err)
	}
	return user, nil
}

// CheckUserPermission reports whether a user holds at least the given global
// permission level.
func (c *Client) CheckUserPermission(ctx context.Context, userID int64, level PermissionLevel) (bool, error) {
	q := url.Values{"permission_level": {strconv.Itoa(int(level))}}

	var result struct {
		HasPermission bool `json:"has_permission"`
	}
	path := fmt.Sprintf("/v1/users/%d/permission/check", userID)
	if err := c.api.Call(ctx, http.MethodGet, path, q, nil, &result); err != nil {
		return false, fmt.Errorf("checking permission of user %d: %w", userID, err)
	}
	return result.HasPermission, nil
}
