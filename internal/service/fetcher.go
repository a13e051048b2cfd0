package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/skyblockcheck/checker/internal/domain"
)

// UUIDResolver maps a display name to an undashed UUID.
type UUIDResolver interface {
	LookupUUID(ctx context.Context, username string) (string, error)
}

// ProfileSource lists the raw SkyBlock profiles of a player.
type ProfileSource interface {
	Profiles(ctx context.Context, playerUUID, apiKey string) (*domain.ProfilesEnvelope, error)
}

// Fetcher resolves player identifiers and fetches their profile summaries.
// Each call is attempted exactly once. A Fetcher is not safe for concurrent use.
type Fetcher struct {
	resolver UUIDResolver
	profiles ProfileSource
	logger   *slog.Logger
	// resolved caches username (lowercased) -> UUID for the Fetcher's lifetime.
	resolved map[string]string
}

// NewFetcher creates a Fetcher with an empty username cache.
func NewFetcher(resolver UUIDResolver, profiles ProfileSource, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		resolver: resolver,
		profiles: profiles,
		logger:   logger,
		resolved: make(map[string]string),
	}
}

// Resolve returns the undashed lowercase UUID for identifier. UUID-shaped
// input is normalized locally; anything else is looked up once and cached.
func (f *Fetcher) Resolve(ctx context.Context, identifier string) (string, error) {
	id, err := domain.ParsePlayerIdentifier(identifier)
	if err != nil {
		return "", err
	}
	if id.IsUUID {
		return id.Undashed(), nil
	}

	key := strings.ToLower(id.Raw)
	if uuid, ok := f.resolved[key]; ok {
		f.logger.Debug("found cached uuid", "username", id.Raw, "uuid", uuid)
		return uuid, nil
	}

	uuid, err := f.resolver.LookupUUID(ctx, id.Raw)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", id.Raw, err)
	}
	f.resolved[key] = uuid
	return uuid, nil
}

// FetchProfiles retrieves every profile of playerUUID and marks the one
// upstream flagged as selected.
func (f *Fetcher) FetchProfiles(ctx context.Context, playerUUID, apiKey string) (*domain.ProfileSet, error) {
	env, err := f.profiles.Profiles(ctx, playerUUID, apiKey)
	if err != nil {
		return nil, fmt.Errorf("fetch profiles: %w", err)
	}

	set := &domain.ProfileSet{
		UUID:          playerUUID,
		Profiles:      make([]domain.ProfileSummary, 0, len(env.Profiles)),
		SelectedIndex: -1,
		Raw:           env.Body,
	}
	for i, raw := range env.Profiles {
		summary := ExtractSummary(raw, playerUUID)
		if set.SelectedIndex < 0 {
			if selected, _ := raw["selected"].(bool); selected {
				set.SelectedIndex = i
				set.SelectedID = summary.ProfileID
				summary.Selected = true
			}
		}
		f.logger.Debug("parsed profile", "index", i, "name", summary.Name, "profile_id", summary.ProfileID)
		set.Profiles = append(set.Profiles, summary)
	}
	return set, nil
}

// Lookup resolves identifier and fetches its profiles.
func (f *Fetcher) Lookup(ctx context.Context, identifier, apiKey string) (*domain.ProfileSet, error) {
	uuid, err := f.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return f.FetchProfiles(ctx, uuid, apiKey)
}
