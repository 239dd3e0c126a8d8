package linker

import "time"

// DiscordAccount identifies a Discord user. ID is Discord's snowflake,
// which the service handles as a string.
type DiscordAccount struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// DiscordAccountDetail is a Discord account with its link audit timestamps,
// as returned by the management listings. UnlinkedAt is nil while the link
// is active.
type DiscordAccountDetail struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	Avatar     string     `json:"avatar"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	UnlinkedAt *time.Time `json:"unlinked_at"`
}

// WikidotAccount identifies a Wikidot user linked to a Discord account.
type WikidotAccount struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Unixname   string `json:"unixname"`
	IsJPMember bool   `json:"is_jp_member"`
}

// WikidotAccountDetail is a Wikidot account with its link audit timestamps.
type WikidotAccountDetail struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Unixname   string     `json:"unixname"`
	IsJPMember bool       `json:"is_jp_member"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	UnlinkedAt *time.Time `json:"unlinked_at"`
}

// FlowStartResponse carries the URL the user visits to begin linking.
type FlowStartResponse struct {
	URL string `json:"url"`
}

// FlowRecheckResponse is the refreshed link state of one Discord account.
type FlowRecheckResponse struct {
	Discord DiscordAccount   `json:"discord"`
	Wikidot []WikidotAccount `json:"wikidot"`
}

// DiscordAccounts groups a Discord account with its linked Wikidot accounts.
type DiscordAccounts struct {
	Discord DiscordAccount   `json:"discord"`
	Wikidot []WikidotAccount `json:"wikidot"`
}

// AccountListResponse is the bulk lookup result, keyed by Discord ID.
type AccountListResponse struct {
	Result map[string]DiscordAccounts `json:"result"`
}

// DiscordListItem is one entry of the Discord-side management listing.
type DiscordListItem struct {
	Discord DiscordAccount         `json:"discord"`
	Wikidot []WikidotAccountDetail `json:"wikidot"`
}

// DiscordListResponse lists every Discord account known to the service.
type DiscordListResponse struct {
	Result []DiscordListItem `json:"result"`
}

// WikidotListItem is one entry of the Wikidot-side management listing.
type WikidotListItem struct {
	Discord []DiscordAccountDetail `json:"discord"`
	Wikidot WikidotAccount         `json:"wikidot"`
}

// WikidotListResponse lists every Wikidot account known to the service.
type WikidotListResponse struct {
	Result []WikidotListItem `json:"result"`
}
