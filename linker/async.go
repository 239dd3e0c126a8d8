package linker

import (
	"context"

	"github.com/scp-jp/scpjp-go/async"
)

// AsyncClient mirrors every public operation of Client with a variant that
// starts the call immediately and returns a task handle instead of blocking.
// Join a result with Task.Wait.
type AsyncClient struct {
	c *Client
}

// Async returns the non-blocking facade over this client.
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{c: c}
}

func (a *AsyncClient) FlowStart(ctx context.Context, discord DiscordAccount) *async.Task[*FlowStartResponse] {
	return async.Go(func() (*FlowStartResponse, error) { return a.c.FlowStart(ctx, discord) })
}

func (a *AsyncClient) FlowAuth(ctx context.Context, token string) *async.Task[map[string]any] {
	return async.Go(func() (map[string]any, error) { return a.c.FlowAuth(ctx, token) })
}

func (a *AsyncClient) FlowCallback(ctx context.Context, code, state string) *async.Task[map[string]any] {
	return async.Go(func() (map[string]any, error) { return a.c.FlowCallback(ctx, code, state) })
}

func (a *AsyncClient) FlowRecheck(ctx context.Context, discord DiscordAccount) *async.Task[*FlowRecheckResponse] {
	return async.Go(func() (*FlowRecheckResponse, error) { return a.c.FlowRecheck(ctx, discord) })
}

func (a *AsyncClient) AccountList(ctx context.Context, discordIDs []string) *async.Task[*AccountListResponse] {
	return async.Go(func() (*AccountListResponse, error) { return a.c.AccountList(ctx, discordIDs) })
}

func (a *AsyncClient) ListDiscordAccounts(ctx context.Context) *async.Task[*DiscordListResponse] {
	return async.Go(func() (*DiscordListResponse, error) { return a.c.ListDiscordAccounts(ctx) })
}

func (a *AsyncClient) ListWikidotAccounts(ctx context.Context) *async.Task[*WikidotListResponse] {
	return async.Go(func() (*WikidotListResponse, error) { return a.c.ListWikidotAccounts(ctx) })
}

func (a *AsyncClient) Unlink(ctx context.Context, discordID, wikidotID int64) *async.Task[map[string]any] {
	return async.Go(func() (map[string]any, error) { return a.c.Unlink(ctx, discordID, wikidotID) })
}

func (a *AsyncClient) Relink(ctx context.Context, discordID, wikidotID int64) *async.Task[map[string]any] {
	return async.Go(func() (map[string]any, error) { return a.c.Relink(ctx, discordID, wikidotID) })
}

func (a *AsyncClient) Healthcheck(ctx context.Context) *async.Task[map[string]any] {
	return async.Go(func() (map[string]any, error) { return a.c.Healthcheck(ctx) })
}
