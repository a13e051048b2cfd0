package provider

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skyblockcheck/checker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUUID = "069a79f444e94726a5befca90e38aaf5"

type hypixelStub struct {
	status int
	body   string
	header map[string]string
	// last request as seen by the server
	query  map[string][]string
	apiKey string
}

func (s *hypixelStub) start(t *testing.T, keyInQuery bool) *HypixelClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/skyblock/profiles", r.URL.Path)
		s.query = r.URL.Query()
		s.apiKey = r.Header.Get("API-Key")
		for k, v := range s.header {
			w.Header().Set(k, v)
		}
		w.WriteHeader(s.status)
		io.WriteString(w, s.body)
	}))
	t.Cleanup(srv.Close)
	return NewHypixelClient(srv.URL, keyInQuery, time.Second, testLogger())
}

func TestHypixelProfiles_Success(t *testing.T) {
	stub := &hypixelStub{status: http.StatusOK, body: `{"success":true,"profiles":[{"profile_id":"a","selected":true},{"profile_id":"b"}]}`}
	c := stub.start(t, false)

	env, err := c.Profiles(context.Background(), testUUID, "secret-key")
	require.NoError(t, err)
	require.Len(t, env.Profiles, 2)
	assert.Equal(t, "a", env.Profiles[0]["profile_id"])
	assert.Equal(t, true, env.Profiles[0]["selected"])
	assert.JSONEq(t, stub.body, string(env.Body))

	assert.Equal(t, "secret-key", stub.apiKey)
	assert.Equal(t, []string{testUUID}, stub.query["uuid"])
	assert.NotContains(t, stub.query, "key")
}

func TestHypixelProfiles_KeyInQuery(t *testing.T) {
	stub := &hypixelStub{status: http.StatusOK, body: `{"success":true,"profiles":[{}]}`}
	c := stub.start(t, true)

	_, err := c.Profiles(context.Background(), testUUID, "secret-key")
	require.NoError(t, err)
	assert.Equal(t, []string{"secret-key"}, stub.query["key"])
	assert.Equal(t, "secret-key", stub.apiKey)
}

func TestHypixelProfiles_CauseSurfacedVerbatim(t *testing.T) {
	stub := &hypixelStub{status: http.StatusOK, body: `{"success":false,"cause":"X"}`}
	c := stub.start(t, false)

	_, err := c.Profiles(context.Background(), testUUID, "k")
	require.Error(t, err)
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeService, appErr.Code)
	assert.Equal(t, "X", appErr.Message)
}

func TestHypixelProfiles_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode string
		wantMsg  string
	}{
		{"forbidden", http.StatusForbidden, `{"success":false,"cause":"Invalid API key"}`, domain.CodeAuth, "Invalid API key"},
		{"forbidden no body", http.StatusForbidden, ``, domain.CodeAuth, "invalid API key or access denied"},
		{"rate limited", http.StatusTooManyRequests, `{"success":false,"cause":"Key throttle"}`, domain.CodeRateLimited, "rate limited"},
		{"not found", http.StatusNotFound, ``, domain.CodeNotFound, "no SkyBlock profiles"},
		{"unprocessable", http.StatusUnprocessableEntity, ``, domain.CodeService, "invalid data provided to API"},
		{"bad request with cause", http.StatusBadRequest, `{"success":false,"cause":"Malformed UUID"}`, domain.CodeService, "Malformed UUID"},
		{"bad gateway", http.StatusBadGateway, `<html>`, domain.CodeService, "HTTP 502"},
		{"success false no cause", http.StatusOK, `{"success":false}`, domain.CodeService, "Unknown error"},
		{"empty profiles", http.StatusOK, `{"success":true,"profiles":[]}`, domain.CodeNotFound, "no SkyBlock profiles"},
		{"null profiles", http.StatusOK, `{"success":true,"profiles":null}`, domain.CodeNotFound, "no SkyBlock profiles"},
		{"absent profiles", http.StatusOK, `{"success":true}`, domain.CodeNotFound, "no SkyBlock profiles"},
		{"invalid json", http.StatusOK, `{"success":tru`, domain.CodeParse, "invalid JSON"},
		{"missing success", http.StatusOK, `{"profiles":[]}`, domain.CodeParse, "no success flag"},
		{"profiles not a list", http.StatusOK, `{"success":true,"profiles":{"a":1}}`, domain.CodeParse, "not a list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &hypixelStub{status: tt.status, body: tt.body}
			c := stub.start(t, false)

			_, err := c.Profiles(context.Background(), testUUID, "k")
			require.Error(t, err)
			appErr, ok := domain.AsAppError(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Contains(t, appErr.Message, tt.wantMsg)
		})
	}
}

func TestHypixelProfiles_RateLimitReset(t *testing.T) {
	stub := &hypixelStub{
		status: http.StatusTooManyRequests,
		header: map[string]string{"RateLimit-Reset": "42", "RateLimit-Remaining": "0"},
	}
	c := stub.start(t, false)

	_, err := c.Profiles(context.Background(), testUUID, "k")
	require.Error(t, err)
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 429, appErr.Status)
	assert.Contains(t, appErr.Message, "resets in 42s")
}

func TestRateLimitAttrs(t *testing.T) {
	h := http.Header{}
	h.Set("RateLimit-Limit", "300")
	h.Set("Retry-After", "5")
	h.Set("Content-Type", "application/json")

	attrs := rateLimitAttrs(h)
	assert.Len(t, attrs, 4)
	assert.NotContains(t, attrs, "Content-Type")
}
