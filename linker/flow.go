package linker

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// FlowStart begins the linking flow for a Discord user and returns the URL
// the user visits to authenticate with Wikidot.
func (c *Client) FlowStart(ctx context.Context, discord DiscordAccount) (*FlowStartResponse, error) {
	body := struct {
		Discord DiscordAccount `json:"discord"`
	}{Discord: discord}

	resp := new(FlowStartResponse)
	if err := c.api.Call(ctx, http.MethodPost, "/v1/start", nil, body, resp); err != nil {
		return nil, fmt.Errorf("starting link flow for discord user %s: %w", discord.ID, err)
	}
	return resp, nil
}

// FlowAuth resolves a flow token and returns the service's auth result.
func (c *Client) FlowAuth(ctx context.Context, token string) (map[string]any, error) {
	q := url.Values{"token": {token}}

	var result map[string]any
	if err := c.api.Call(ctx, http.MethodGet, "/v1/auth", q, nil, &result); err != nil {
		return nil, fmt.Errorf("authenticating link flow: %w", err)
	}
	return result, nil
}

// FlowCallback completes the IdP redirect leg of the linking flow.
func (c *Client) FlowCallback(ctx context.Context, code, state string) (map[string]any, error) {
	q := url.Values{"code": {code}, "state": {state}}

	var result map[string]any
	if err := c.api.Call(ctx, http.MethodGet, "/v1/callback", q, nil, &result); err != nil {
		return nil, fmt.Errorf("handling link flow callback: %w", err)
	}
	return result, nil
}

// FlowRecheck re-verifies an existing link and returns the refreshed
// Wikidot account state for the Discord user.
func (c *Client) FlowRecheck(ctx context.Context, discord DiscordAccount) (*FlowRecheckResponse, error) {
	body := struct {
		Discord DiscordAccount `json:"discord"`
	}{Discord: discord}

	resp := new(FlowRecheckResponse)
	if err := c.api.Call(ctx, http.MethodPost, "/v1/recheck", nil, body, resp); err != nil {
		return nil, fmt.Errorf("rechecking link for discord user %s: %w", discord.ID, err)
	}
	return resp, nil
}
