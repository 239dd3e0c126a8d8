package auditlog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scp-jp/scpjp-go/auditlog"
)

func TestLog(t *testing.T) {
	var gotHeaders http.Header
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	client := auditlog.NewClient(server.URL, "linker-bot", "secret-key",
		auditlog.WithHTTPClient(server.Client()))

	err := client.Log(context.Background(), auditlog.Entry{
		Action:    "unlink",
		Message:   "unlinked discord 111 from wikidot 123",
		Notes:     "requested by moderator",
		IPAddress: "203.0.113.5",
	})

	require.NoError(t, err)
	assert.Equal(t, "linker-bot", gotHeaders.Get("X-AppName"))
	assert.Equal(t, "secret-key", gotHeaders.Get("X-AppKey"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, map[string]string{
		"action":     "unlink",
		"message":    "unlinked discord 111 from wikidot 123",
		"notes":      "requested by moderator",
		"ip_address": "203.0.113.5",
	}, gotBody)
}

func TestLog_NonCreatedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("accepted but wrong status"))
	}))
	t.Cleanup(server.Close)

	client := auditlog.NewClient(server.URL, "app", "key",
		auditlog.WithHTTPClient(server.Client()))

	err := client.Log(context.Background(), auditlog.Entry{Action: "noop", Message: "m"})

	// Only 201 counts as success.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "200")
	assert.Contains(t, err.Error(), "accepted but wrong status")
}

func TestNop(t *testing.T) {
	var logger auditlog.Logger = auditlog.Nop{}
	assert.NoError(t, logger.Log(context.Background(), auditlog.Entry{Action: "anything"}))
}
