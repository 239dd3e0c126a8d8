package memberman

import (
	"context"

	"github.com/scp-jp/scpjp-go/async"
)

// AsyncClient mirrors every public operation of Client with a variant that
// starts the call immediately and returns a task handle instead of blocking.
// The method names and argument lists match Client one for one; join a
// result with Task.Wait. The set of operations is fixed at compile time
// rather than discovered by reflection.
type AsyncClient struct {
	c *Client
}

// Async returns the non-blocking facade over this client.
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{c: c}
}

func (a *AsyncClient) ListSites(ctx context.Context) *async.Task[[]SiteWithMembersCount] {
	return async.Go(func() ([]SiteWithMembersCount, error) { return a.c.ListSites(ctx) })
}

func (a *AsyncClient) CreateSite(ctx context.Context, siteID int64, name string) *async.Task[*Site] {
	return async.Go(func() (*Site, error) { return a.c.CreateSite(ctx, siteID, name) })
}

func (a *AsyncClient) UpdateSite(ctx context.Context, siteID int64, name string) *async.Task[*Site] {
	return async.Go(func() (*Site, error) { return a.c.UpdateSite(ctx, siteID, name) })
}

func (a *AsyncClient) SiteMembersStats(ctx context.Context, siteID int64, opt *MembersStatsOptions) *async.Task[*MembersStats] {
	return async.Go(func() (*MembersStats, error) { return a.c.SiteMembersStats(ctx, siteID, opt) })
}

func (a *AsyncClient) UpdateSiteMemberPermission(ctx context.Context, siteID, userID int64, level PermissionLevel) *async.Task[*SiteMember] {
	return async.Go(func() (*SiteMember, error) { return a.c.UpdateSiteMemberPermission(ctx, siteID, userID, level) })
}

func (a *AsyncClient) CheckSiteMemberPermission(ctx context.Context, siteID, userID int64, level PermissionLevel) *async.Task[bool] {
	return async.Go(func() (bool, error) { return a.c.CheckSiteMemberPermission(ctx, siteID, userID, level) })
}

func (a *AsyncClient) ChangeSiteMemberPrivilege(ctx context.Context, siteID, userID int64, action string) *async.Task[map[string]string] {
	return async.Go(func() (map[string]string, error) { return a.c.ChangeSiteMemberPrivilege(ctx, siteID, userID, action) })
}

func (a *AsyncClient) CreateUser(ctx context.Context, u UserCreate) *async.Task[*User] {
	return async.Go(func() (*User, error) { return a.c.CreateUser(ctx, u) })
}

func (a *AsyncClient) ListUsers(ctx context.Context, opt *ListUsersOptions) *async.Task[[]UserWithSiteMemberships] {
	return async.Go(func() ([]UserWithSiteMemberships, error) { return a.c.ListUsers(ctx, opt) })
}

func (a *AsyncClient) GetUser(ctx context.Context, userID int64) *async.Task[*UserWithSiteMemberships] {
	return async.Go(func() (*UserWithSiteMemberships, error) { return a.c.GetUser(ctx, userID) })
}

func (a *AsyncClient) UpdateUser(ctx context.Context, userID int64, upd UserUpdate) *async.Task[*User] {
	return async.Go(func() (*User, error) { return a.c.UpdateUser(ctx, userID, upd) })
}

func (a *AsyncClient) UpdateUserPermission(ctx context.Context, userID int64, level PermissionLevel) *async.Task[*User] {
	return async.Go(func() (*User, error) { return a.c.UpdateUserPermission(ctx, userID, level) })
}

func (a *AsyncClient) CheckUserPermission(ctx context.Context, userID int64, level PermissionLevel) *async.Task[bool] {
	return async.Go(func() (bool, error) { return a.c.CheckUserPermission(ctx, userID, level) })
}

func (a *AsyncClient) CreateApplicationPassword(ctx context.Context, siteID int64, password string, enabled bool) *async.Task[*ApplicationPassword] {
	return async.Go(func() (*ApplicationPassword, error) {
		return a.c.CreateApplicationPassword(ctx, siteID, password, enabled)
	})
}

func (a *AsyncClient) ListApplicationPasswords(ctx context.Context, opt *ListApplicationPasswordsOptions) *async.Task[[]ApplicationPassword] {
	return async.Go(func() ([]ApplicationPassword, error) { return a.c.ListApplicationPasswords(ctx, opt) })
}

func (a *AsyncClient) ToggleApplicationPassword(ctx context.Context, passwordID int64) *async.Task[*ApplicationPassword] {
	return async.Go(func() (*ApplicationPassword, error) { return a.c.ToggleApplicationPassword(ctx, passwordID) })
}

func (a *AsyncClient) UpdateApplicationPassword(ctx context.Context, passwordID int64, password string) *async.Task[*ApplicationPassword] {
	return async.Go(func() (*ApplicationPassword, error) { return a.c.UpdateApplicationPassword(ctx, passwordID, password) })
}

func (a *AsyncClient) ListApplicationRequests(ctx context.Context, opt *ListApplicationRequestsOptions) *async.Task[[]SiteApplication] {
	return async.Go(func() ([]SiteApplication, error) { return a.c.ListApplicationRequests(ctx, opt) })
}

func (a *AsyncClient) DeclineReasonTypes(ctx context.Context) *async.Task[map[string]string] {
	return async.Go(func() (map[string]string, error) { return a.c.DeclineReasonTypes(ctx) })
}

func (a *AsyncClient) GetApplicationRequest(ctx context.Context, requestID int64) *async.Task[*SiteApplication] {
	return async.Go(func() (*SiteApplication, error) { return a.c.GetApplicationRequest(ctx, requestID) })
}

func (a *AsyncClient) ApproveApplicationRequest(ctx context.Context, requestID, reviewerID int64) *async.Task[map[string]string] {
	return async.Go(func() (map[string]string, error) { return a.c.ApproveApplicationRequest(ctx, requestID, reviewerID) })
}

func (a *AsyncClient) DeclineApplicationRequest(ctx context.Context, requestID, reviewerID int64, reasonType DeclineReasonType, reasonDetail string) *async.Task[map[string]string] {
	return async.Go(func() (map[string]string, error) {
		return a.c.DeclineApplicationRequest(ctx, requestID, reviewerID, reasonType, reasonDetail)
	})
}

func (a *AsyncClient) BatchStatuses(ctx context.Context) *async.Task[*BatchStatuses] {
	return async.Go(func() (*BatchStatuses, error) { return a.c.BatchStatuses(ctx) })
}

func (a *AsyncClient) ForceStartBatch(ctx context.Context, taskName string) *async.Task[*BatchForceStartResponse] {
	return async.Go(func() (*BatchForceStartResponse, error) { return a.c.ForceStartBatch(ctx, taskName) })
}
