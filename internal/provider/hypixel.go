package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/skyblockcheck/checker/internal/domain"
)

const (
	hypixelService      = "Hypixel API"
	hypixelProfilesPath = "/v2/skyblock/profiles"
	hypixelKeyHeader    = "API-Key"
)

// HypixelClient fetches SkyBlock profile listings.
type HypixelClient struct {
	baseURL string
	// keyInQuery also sends the key as ?key=, which older API versions read.
	keyInQuery bool
	logger     *slog.Logger
	client     *http.Client
}

// NewHypixelClient creates a client for the Hypixel public API.
func NewHypixelClient(baseURL string, keyInQuery bool, timeout time.Duration, logger *slog.Logger) *HypixelClient {
	return &HypixelClient{
		baseURL:    baseURL,
		keyInQuery: keyInQuery,
		logger:     logger,
		client:     &http.Client{Timeout: timeout},
	}
}

type hypixelEnvelope struct {
	Success  *bool           `json:"success"`
	Cause    string          `json:"cause"`
	Profiles json.RawMessage `json:"profiles"`
}

// Profiles returns the raw profile objects for the player with the given
// undashed UUID.
func (c *HypixelClient) Profiles(ctx context.Context, playerUUID, apiKey string) (*domain.ProfilesEnvelope, error) {
	q := url.Values{"uuid": {playerUUID}}
	if c.keyInQuery {
		q.Set("key", apiKey)
	}
	target := c.baseURL + hypixelProfilesPath + "?" + q.Encode()
	c.logger.Debug("fetching skyblock profiles", "uuid", playerUUID, "key_in_query", c.keyInQuery)

	resp, err := get(ctx, c.client, c.logger, hypixelService, target, http.Header{hypixelKeyHeader: {apiKey}})
	if err != nil {
		return nil, err
	}

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var env hypixelEnvelope
	if err := json.Unmarshal(resp.body, &env); err != nil {
		return nil, domain.ErrParse("invalid JSON response from "+hypixelService, err)
	}
	if env.Success == nil {
		return nil, domain.ErrParse(hypixelService+" response has no success flag", nil)
	}
	if !*env.Success {
		cause := env.Cause
		if cause == "" {
			cause = "Unknown error"
		}
		return nil, domain.ErrService(cause, resp.status)
	}

	if len(env.Profiles) == 0 || string(env.Profiles) == "null" {
		return nil, domain.ErrNotFound("no SkyBlock profiles found for this player", resp.status)
	}
	var profiles []domain.RawProfile
	if err := json.Unmarshal(env.Profiles, &profiles); err != nil {
		return nil, domain.ErrParse("profiles field is not a list of objects", err)
	}
	if len(profiles) == 0 {
		return nil, domain.ErrNotFound("no SkyBlock profiles found for this player", resp.status)
	}

	c.logger.Debug("retrieved skyblock profiles", "count", len(profiles))
	return &domain.ProfilesEnvelope{Profiles: profiles, Body: resp.body}, nil
}

func (c *HypixelClient) checkStatus(resp *response) error {
	if resp.status == http.StatusOK {
		return nil
	}
	c.logger.Debug("hypixel api error response", "status", resp.status, "body", snippet(resp.body))

	cause := upstreamCause(resp.body)
	switch resp.status {
	case http.StatusTooManyRequests:
		c.logger.Debug("rate limit headers", rateLimitAttrs(resp.header)...)
		msg := "rate limited, please wait a moment and try again"
		if reset := resp.header.Get("RateLimit-Reset"); reset != "" {
			msg += fmt.Sprintf(" (resets in %ss)", reset)
		}
		return domain.ErrRateLimited(msg)
	case http.StatusForbidden:
		if cause == "" {
			cause = "invalid API key or access denied"
		}
		return domain.ErrAuth(cause, resp.status)
	case http.StatusNotFound:
		return domain.ErrNotFound("player not found or has no SkyBlock profiles", resp.status)
	case http.StatusUnprocessableEntity:
		return domain.ErrService("invalid data provided to API", resp.status)
	}

	if cause == "" {
		cause = fmt.Sprintf("%s returned HTTP %d", hypixelService, resp.status)
	}
	return domain.ErrService(cause, resp.status)
}

// upstreamCause extracts the "cause" field of an error body, if any.
func upstreamCause(body []byte) string {
	var env hypixelEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Cause
}

func rateLimitAttrs(h http.Header) []any {
	var attrs []any
	for k, vs := range h {
		lk := strings.ToLower(k)
		if strings.Contains(lk, "ratelimit") || strings.Contains(lk, "retry") {
			attrs = append(attrs, k, strings.Join(vs, ","))
		}
	}
	return attrs
}
