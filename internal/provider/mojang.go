package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/skyblockcheck/checker/internal/domain"
)

const mojangService = "Mojang API"

// MojangClient resolves Minecraft usernames to UUIDs.
type MojangClient struct {
	baseURL string
	logger  *slog.Logger
	client  *http.Client
}

// NewMojangClient creates a client for the Mojang identity API.
func NewMojangClient(baseURL string, timeout time.Duration, logger *slog.Logger) *MojangClient {
	return &MojangClient{
		baseURL: baseURL,
		logger:  logger,
		client:  &http.Client{Timeout: timeout},
	}
}

type mojangProfile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ErrorMessage string `json:"errorMessage"`
}

// LookupUUID returns the undashed UUID for username.
func (c *MojangClient) LookupUUID(ctx context.Context, username string) (string, error) {
	target := fmt.Sprintf("%s/users/profiles/minecraft/%s", c.baseURL, url.PathEscape(username))
	c.logger.Debug("resolving username", "username", username, "url", target)

	resp, err := get(ctx, c.client, c.logger, mojangService, target, nil)
	if err != nil {
		return "", err
	}

	switch {
	case resp.status == http.StatusNoContent || resp.status == http.StatusNotFound:
		return "", domain.ErrNotFound(fmt.Sprintf("username '%s' not found", username), resp.status)
	case resp.status != http.StatusOK:
		c.logger.Debug("mojang api error response", "status", resp.status, "body", snippet(resp.body))
		return "", domain.ErrService(fmt.Sprintf("failed to resolve username (HTTP %d)", resp.status), resp.status)
	}

	var profile mojangProfile
	if err := json.Unmarshal(resp.body, &profile); err != nil {
		return "", domain.ErrParse("invalid JSON response from "+mojangService, err)
	}
	if profile.ID == "" {
		c.logger.Debug("mojang api response without id", "body", snippet(resp.body))
		return "", domain.ErrParse("invalid response from "+mojangService, nil)
	}

	id := domain.NormalizeUUID(profile.ID)
	if !domain.IsUUID(id) {
		return "", domain.ErrParse(fmt.Sprintf("%s returned malformed id %q", mojangService, profile.ID), nil)
	}

	c.logger.Debug("resolved username", "username", username, "name", profile.Name, "uuid", id)
	return id, nil
}
