package memberman_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scp-jp/scpjp-go"
	"github.com/scp-jp/scpjp-go/async"
	"github.com/scp-jp/scpjp-go/memberman"
)

func TestAsync_MatchesBlockingResult(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "SCP-JP", "members_count": 6000,
			 "created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-06-01T00:00:00Z"}
		]`))
	}))

	ctx := context.Background()

	direct, err := client.ListSites(ctx)
	require.NoError(t, err)

	viaTask, err := client.Async().ListSites(ctx).Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, direct, viaTask)
}

func TestAsync_ErrorUnchanged(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail": "nope"}`))
	}))

	ctx := context.Background()
	_, err := client.Async().GetUser(ctx, 1).Wait(ctx)

	var errResp *scpjp.ErrorResponse
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, http.StatusForbidden, errResp.Response.StatusCode)
}

func TestAsync_ConcurrentCalls(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"has_permission": true}`))
	}))

	ctx := context.Background()
	a := client.Async()

	tasks := make([]*async.Task[bool], 0, 8)
	for i := 0; i < 8; i++ {
		tasks = append(tasks, a.CheckUserPermission(ctx, int64(i), memberman.PermissionLevelModerator))
	}

	for _, task := range tasks {
		ok, err := task.Wait(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}
