package app

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/skyblockcheck/checker/internal/infra"
	"github.com/skyblockcheck/checker/internal/provider"
	"github.com/skyblockcheck/checker/internal/service"
)

// SessionDeps holds all dependencies needed by NewSession.
type SessionDeps struct {
	Config *infra.Config
	Logger *slog.Logger
	Stdin  io.Reader
	Stdout io.Writer
}

// NewSession assembles the API clients and the profile fetcher.
func NewSession(deps SessionDeps) *Session {
	cfg := deps.Config
	logger := deps.Logger

	// External providers
	mojang := provider.NewMojangClient(cfg.MojangBaseURL, cfg.HTTPTimeout, logger)
	hypixel := provider.NewHypixelClient(cfg.HypixelBaseURL, cfg.HypixelKeyInQuery, cfg.HTTPTimeout, logger)

	return &Session{
		apiKey:  cfg.HypixelAPIKey,
		fetcher: service.NewFetcher(mojang, hypixel, logger),
		logger:  logger,
		in:      bufio.NewReader(deps.Stdin),
		out:     deps.Stdout,
	}
}
