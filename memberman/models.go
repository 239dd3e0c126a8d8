package memberman

import "time"

// Site is a managed Wikidot site.
type Site struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteWithMembersCount is a site together with its current member count, as
// returned by the site listing endpoint.
type SiteWithMembersCount struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	MembersCount int       `json:"members_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DailyMemberCount is one day's member count in a site's statistics.
type DailyMemberCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// MembersStats is the member statistics of a single site.
type MembersStats struct {
	CurrentCount int                `json:"current_count"`
	DailyCounts  []DailyMemberCount `json:"daily_counts"`
}

// SiteMember is a user's membership record on a site.
//
// SitePermissionLevel is the site-local override and may be absent;
// EffectivePermissionLevel is what the service actually enforces.
type SiteMember struct {
	ID                       int64            `json:"id"`
	SiteID                   int64            `json:"site_id"`
	UserID                   int64            `json:"user_id"`
	IsResigned               bool             `json:"is_resigned"`
	SitePermissionLevel      *PermissionLevel `json:"site_permission_level"`
	EffectivePermissionLevel PermissionLevel  `json:"effective_permission_level"`
	JoinedAt                 time.Time        `json:"joined_at"`
	CreatedAt                time.Time        `json:"created_at"`
	UpdatedAt                time.Time        `json:"updated_at"`
}

// User is a Wikidot user known to the member management service.
type User struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	UnixName        string          `json:"unix_name"`
	AvatarURL       string          `json:"avatar_url"`
	IsDeleted       bool            `json:"is_deleted"`
	PermissionLevel PermissionLevel `json:"permission_level"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// UserWithSiteMemberships is a user together with their site membership
// records, as returned by the user read endpoints.
type UserWithSiteMemberships struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	UnixName        string          `json:"unix_name"`
	AvatarURL       string          `json:"avatar_url"`
	IsDeleted       bool            `json:"is_deleted"`
	PermissionLevel PermissionLevel `json:"permission_level"`
	SiteMemberships []SiteMember    `json:"site_memberships"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// UserCreate is the payload for CreateUser.
type UserCreate struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	UnixName        string          `json:"unix_name"`
	AvatarURL       string          `json:"avatar_url"`
	IsDeleted       bool            `json:"is_deleted"`
	PermissionLevel PermissionLevel `json:"permission_level"`
}

// UserUpdate is the partial-update payload for UpdateUser. Nil fields are
// omitted from the PATCH body and left unchanged by the service.
type UserUpdate struct {
	Name            *string          `json:"name,omitempty"`
	UnixName        *string          `json:"unix_name,omitempty"`
	AvatarURL       *string          `json:"avatar_url,omitempty"`
	IsDeleted       *bool            `json:"is_deleted,omitempty"`
	PermissionLevel *PermissionLevel `json:"permission_level,omitempty"`
}

// ApplicationPassword is a site's join password ("合言葉").
type ApplicationPassword struct {
	ID        int64     `json:"id"`
	SiteID    int64     `json:"site_id"`
	Password  string    `json:"password"`
	IsEnabled bool      `json:"is_enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteApplication is a site join request with its full review details.
type SiteApplication struct {
	ID                  int64              `json:"id"`
	Status              Status             `json:"status"`
	AcquiredAt          time.Time          `json:"acquired_at"`
	Text                string             `json:"text"`
	DeclineReasonType   *DeclineReasonType `json:"decline_reason_type"`
	DeclineReasonDetail string             `json:"decline_reason_detail"`
	ReviewedAt          *time.Time         `json:"reviewed_at"`
	ReviewedBy          *User              `json:"reviewed_by"`
	Site                Site               `json:"site"`
	User                User               `json:"user"`
	Password            *string            `json:"password"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// BatchStatus is the schedule state of one background batch task.
type BatchStatus struct {
	Name        string    `json:"name"`
	NextRunTime time.Time `json:"next_run_time"`
}

// BatchStatuses is the response of the batch status endpoint.
type BatchStatuses struct {
	Statuses []BatchStatus `json:"statuses"`
}

// BatchForceStartResponse is the acknowledgement of a forced batch start.
type BatchForceStartResponse struct {
	Status string `json:"status"`
}
