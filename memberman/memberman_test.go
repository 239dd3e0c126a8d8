package memberman_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scp-jp/scpjp-go"
	"github.com/scp-jp/scpjp-go/memberman"
)

// newTestClient creates a Client backed by the given httptest handler.
func newTestClient(t *testing.T, handler http.Handler) *memberman.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := memberman.NewClient(server.URL, "test-key", scpjp.WithHTTPClient(server.Client()))
	require.NoError(t, err)
	return client
}

func TestEnumValues(t *testing.T) {
	// Wire contract: the integer values must match the remote services.
	assert.EqualValues(t, 10, memberman.PermissionLevelVisitor)
	assert.EqualValues(t, 20, memberman.PermissionLevelContributor)
	assert.EqualValues(t, 30, memberman.PermissionLevelModerator)
	assert.EqualValues(t, 40, memberman.PermissionLevelAdmin)
	assert.EqualValues(t, 50, memberman.PermissionLevelSystemAdmin)

	assert.EqualValues(t, 0, memberman.StatusPending)
	assert.EqualValues(t, 1, memberman.StatusApproved)
	assert.EqualValues(t, 2, memberman.StatusDeclined)
	assert.EqualValues(t, 9, memberman.StatusCancelledOrMissing)

	assert.EqualValues(t, 1, memberman.DeclineReasonIncorrectPassword)
	assert.EqualValues(t, 2, memberman.DeclineReasonNotSpecifiedOrInappropriate)
	assert.EqualValues(t, 3, memberman.DeclineReasonRollPlaying)
	assert.EqualValues(t, 4, memberman.DeclineReasonIncorrectJapanese)
	assert.EqualValues(t, 5, memberman.DeclineReasonContainingSensitiveInformation)
	assert.EqualValues(t, 6, memberman.DeclineReasonForContact)
	assert.EqualValues(t, 9, memberman.DeclineReasonOther)
}

func TestListSites(t *testing.T) {
	var gotPath, gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 4450940, "name": "SCP-JP", "members_count": 6000,
			 "created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-06-01T00:00:00Z"}
		]`))
	}))

	sites, err := client.ListSites(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/v1/sites/", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	require.Len(t, sites, 1)
	assert.Equal(t, int64(4450940), sites[0].ID)
	assert.Equal(t, "SCP-JP", sites[0].Name)
	assert.Equal(t, 6000, sites[0].MembersCount)
}

func TestCreateSite(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1, "name": "sandbox",
			"created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-01-01T00:00:00Z"}`))
	}))

	site, err := client.CreateSite(context.Background(), 1, "sandbox")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, map[string]any{"id": float64(1), "name": "sandbox"}, gotBody)
	assert.Equal(t, "sandbox", site.Name)
}

func TestListUsers_QueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	name := "alice"
	deleted := false
	_, err := client.ListUsers(context.Background(), &memberman.ListUsersOptions{
		Name:             &name,
		IsDeleted:        &deleted,
		PermissionLevels: []memberman.PermissionLevel{memberman.PermissionLevelAdmin, memberman.PermissionLevelModerator},
		SiteIDs:          []int64{1, 2},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, gotQuery["name"])
	assert.Equal(t, []string{"false"}, gotQuery["is_deleted"])
	assert.Equal(t, []string{"40", "30"}, gotQuery["permission_levels"])
	assert.Equal(t, []string{"1", "2"}, gotQuery["site_ids"])
	// Pagination defaults applied.
	assert.Equal(t, []string{"100"}, gotQuery["per_page"])
	assert.Equal(t, []string{"1"}, gotQuery["page"])
	assert.Equal(t, []string{"created_at"}, gotQuery["order_by"])
	assert.Equal(t, []string{"desc"}, gotQuery["order"])
	// Unset filters stay out of the query string entirely.
	assert.NotContains(t, gotQuery, "unix_name")
	assert.NotContains(t, gotQuery, "id")
}

func TestListUsers_NilOptions(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.ListUsers(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"100"}, gotQuery["per_page"])
	assert.Equal(t, []string{"1"}, gotQuery["page"])
}

func TestGetUser(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 123, "name": "alice", "unix_name": "alice",
			"avatar_url": "https://example.com/a.png", "is_deleted": false,
			"permission_level": 20,
			"site_memberships": [
				{"id": 1, "site_id": 4450940, "user_id": 123, "is_resigned": false,
				 "site_permission_level": null, "effective_permission_level": 20,
				 "joined_at": "2023-05-01T00:00:00Z",
				 "created_at": "2023-05-01T00:00:00Z", "updated_at": "2023-05-01T00:00:00Z"}
			],
			"created_at": "2023-05-01T00:00:00Z", "updated_at": "2024-05-01T00:00:00Z"
		}`))
	}))

	user, err := client.GetUser(context.Background(), 123)

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, memberman.PermissionLevelContributor, user.PermissionLevel)
	require.Len(t, user.SiteMemberships, 1)
	assert.Nil(t, user.SiteMemberships[0].SitePermissionLevel)
	assert.Equal(t, memberman.PermissionLevelContributor, user.SiteMemberships[0].EffectivePermissionLevel)
}

func TestUpdateUser_PartialBody(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 123, "name": "renamed", "unix_name": "alice",
			"avatar_url": "https://example.com/a.png", "is_deleted": false, "permission_level": 20,
			"created_at": "2023-05-01T00:00:00Z", "updated_at": "2024-05-01T00:00:00Z"}`))
	}))

	name := "renamed"
	user, err := client.UpdateUser(context.Background(), 123, memberman.UserUpdate{Name: &name})

	require.NoError(t, err)
	// Only the set field travels in the PATCH body.
	assert.Equal(t, map[string]any{"name": "renamed"}, gotBody)
	assert.Equal(t, "renamed", user.Name)
}

func TestCreateUser_DefaultsPermissionLevel(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 5, "name": "bob", "unix_name": "bob",
			"avatar_url": "https://example.com/b.png", "is_deleted": false, "permission_level": 10,
			"created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-01-01T00:00:00Z"}`))
	}))

	_, err := client.CreateUser(context.Background(), memberman.UserCreate{
		ID: 5, Name: "bob", UnixName: "bob", AvatarURL: "https://example.com/b.png",
	})

	require.NoError(t, err)
	assert.Equal(t, float64(10), gotBody["permission_level"])
}

func TestCheckUserPermission(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/123/permission/check", r.URL.Path)
		assert.Equal(t, "40", r.URL.Query().Get("permission_level"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"has_permission": true}`))
	}))

	ok, err := client.CheckUserPermission(context.Background(), 123, memberman.PermissionLevelAdmin)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeclineApplicationRequest(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/application/requests/77/decline", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "declined"}`))
	}))

	result, err := client.DeclineApplicationRequest(context.Background(), 77, 123,
		memberman.DeclineReasonIncorrectPassword, "wrong password")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"reviewer_id":           float64(123),
		"decline_reason_type":   float64(1),
		"decline_reason_detail": "wrong password",
	}, gotBody)
	assert.Equal(t, "declined", result["message"])
}

func TestGetApplicationRequest_ReviewDetails(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 77, "status": 2, "acquired_at": "2024-03-01T12:00:00Z",
			"text": "please let me in",
			"decline_reason_type": 4, "decline_reason_detail": "needs work",
			"reviewed_at": "2024-03-02T12:00:00Z",
			"reviewed_by": {"id": 123, "name": "alice", "unix_name": "alice",
				"avatar_url": "https://example.com/a.png", "is_deleted": false, "permission_level": 40,
				"created_at": "2023-05-01T00:00:00Z", "updated_at": "2024-05-01T00:00:00Z"},
			"site": {"id": 1, "name": "SCP-JP",
				"created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-01-01T00:00:00Z"},
			"user": {"id": 5, "name": "bob", "unix_name": "bob",
				"avatar_url": "https://example.com/b.png", "is_deleted": false, "permission_level": 10,
				"created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-01-01T00:00:00Z"},
			"password": null,
			"created_at": "2024-03-01T12:00:00Z", "updated_at": "2024-03-02T12:00:00Z"
		}`))
	}))

	req, err := client.GetApplicationRequest(context.Background(), 77)

	require.NoError(t, err)
	assert.Equal(t, memberman.StatusDeclined, req.Status)
	require.NotNil(t, req.DeclineReasonType)
	assert.Equal(t, memberman.DeclineReasonIncorrectJapanese, *req.DeclineReasonType)
	require.NotNil(t, req.ReviewedAt)
	assert.Equal(t, time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC), *req.ReviewedAt)
	require.NotNil(t, req.ReviewedBy)
	assert.Equal(t, "alice", req.ReviewedBy.Name)
	assert.Nil(t, req.Password)
	assert.Equal(t, "SCP-JP", req.Site.Name)
	assert.Equal(t, "bob", req.User.Name)
}

func TestForceStartBatch_EscapesTaskName(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/system/batch/force_start/sync%20members", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "started"}`))
	}))

	resp, err := client.ForceStartBatch(context.Background(), "sync members")

	require.NoError(t, err)
	assert.Equal(t, "started", resp.Status)
}

func TestErrorResponsePropagates(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "site already exists"}`))
	}))

	_, err := client.CreateSite(context.Background(), 1, "dup")

	var errResp *scpjp.ErrorResponse
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, http.StatusBadRequest, errResp.Response.StatusCode)
	assert.Equal(t, "site already exists", errResp.Detail)
}
