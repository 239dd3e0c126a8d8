package linker

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// AccountList performs a bulk lookup of the Wikidot accounts linked to each
// of the given Discord IDs.
func (c *Client) AccountList(ctx context.Context, discordIDs []string) (*AccountListResponse, error) {
	body := struct {
		DiscordIDs []string `json:"discord_ids"`
	}{DiscordIDs: discordIDs}

	resp := new(AccountListResponse)
	if err := c.api.Call(ctx, http.MethodPost, "/v1/list", nil, body, resp); err != nil {
		return nil, fmt.Errorf("listing accounts for %d discord ids: %w", len(discordIDs), err)
	}
	return resp, nil
}

// ListDiscordAccounts returns every Discord account with its linked Wikidot
// accounts, including unlinked history.
func (c *Client) ListDiscordAccounts(ctx context.Context) (*DiscordListResponse, error) {
	resp := new(DiscordListResponse)
	if err := c.api.Call(ctx, http.MethodGet, "/v1/list/discord", nil, nil, resp); err != nil {
		return nil, fmt.Errorf("listing discord accounts: %w", err)
	}
	return resp, nil
}

// ListWikidotAccounts returns every Wikidot account with its linked Discord
// accounts, including unlinked history.
func (c *Client) ListWikidotAccounts(ctx context.Context) (*WikidotListResponse, error) {
	resp := new(WikidotListResponse)
	if err := c.api.Call(ctx, http.MethodGet, "/v1/list/wikidot", nil, nil, resp); err != nil {
		return nil, fmt.Errorf("listing wikidot accounts: %w", err)
	}
	return resp, nil
}

// Unlink severs the link between a Discord account and a Wikidot account.
func (c *Client) Unlink(ctx context.Context, discordID, wikidotID int64) (map[string]any, error) {
	q := url.Values{
		"discord_id": {strconv.FormatInt(discordID, 10)},
		"wikidot_id": {strconv.FormatInt(wikidotID, 10)},
	}

	var result map[string]any
	if err := c.api.Call(ctx, http.MethodPatch, "/v1/unlink", q, nil, &result); err != nil {
		return nil, fmt.Errorf("unlinking discord %d from wikidot %d: %w", discordID, wikidotID, err)
	}
	return result, nil
}

// Relink restores a previously severed link between a Discord account and a
// Wikidot account.
func (c *Client) Relink(ctx context.Context, discordID, wikidotID int64) (map[string]any, error) {
	q := url.Values{
		"discord_id": {strconv.FormatInt(discordID, 10)},
		"wikidot_id": {strconv.FormatInt(wikidotID, 10)},
	}

	var result map[string]any
	if err := c.api.Call(ctx, http.MethodPatch, "/v1/relink", q, nil, &result); err != nil {
		return nil, fmt.Errorf("relinking discord %d to wikidot %d: %w", discordID, wikidotID, err)
	}
	return result, nil
}

// Healthcheck probes the service's health endpoint.
func (c *Client) Healthcheck(ctx context.Context) (map[string]any, error) {
	var result map[string]any
	if err := c.api.Call(ctx, http.MethodGet, "/system/healthcheck/", nil, nil, &result); err != nil {
		return nil, fmt.Errorf("linker healthcheck: %w", err)
	}
	return result, nil
}
