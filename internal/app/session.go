package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/skyblockcheck/checker/internal/domain"
	"github.com/skyblockcheck/checker/internal/infra"
	"github.com/skyblockcheck/checker/internal/render"
	"github.com/skyblockcheck/checker/internal/service"
)

// Session runs one interactive lookup against the terminal.
type Session struct {
	apiKey  string
	fetcher *service.Fetcher
	logger  *slog.Logger
	in      *bufio.Reader
	out     io.Writer
}

// Run prompts for whatever opts and the config leave unset, fetches the
// player's profiles and prints them.
func (s *Session) Run(ctx context.Context, opts Options) error {
	fmt.Fprintf(s.out, "%s\n\n", render.Banner)
	s.logger.Debug("debug mode enabled")

	apiKey := s.apiKey
	if apiKey == "" {
		key, err := s.prompt(ctx, "Enter your Hypixel API key:")
		if err != nil {
			return err
		}
		if key == "" {
			return domain.ErrInvalidInput("API key cannot be empty")
		}
		apiKey = key
	}
	s.logger.Debug("using api key", "key", infra.MaskKey(apiKey))

	input := opts.Identifier
	if input == "" {
		line, err := s.prompt(ctx, "\nEnter Minecraft username or UUID:")
		if err != nil {
			return err
		}
		input = line
	}
	id, err := domain.ParsePlayerIdentifier(input)
	if err != nil {
		return err
	}

	if id.IsUUID {
		fmt.Fprintf(s.out, "Using UUID: %s\n", id.Undashed())
	} else {
		fmt.Fprintf(s.out, "Resolving username '%s'...\n", id.Raw)
	}
	playerUUID, err := s.fetcher.Resolve(ctx, input)
	if err != nil {
		return err
	}
	if !id.IsUUID {
		fmt.Fprintf(s.out, "Username resolved to UUID: %s\n", playerUUID)
	}

	fmt.Fprintf(s.out, "Fetching SkyBlock profiles for UUID: %s\n", playerUUID)
	set, err := s.fetcher.FetchProfiles(ctx, playerUUID, apiKey)
	if err != nil {
		return err
	}

	if opts.RawJSON {
		if err := render.RawJSON(s.out, set.Raw); err != nil {
			return err
		}
	}

	switch opts.Format {
	case FormatYAML:
		err = render.YAML(s.out, set)
	default:
		err = render.Text(s.out, set)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\nDone!")
	return nil
}

// prompt prints question and reads one trimmed line. A cancelled ctx
// abandons the read.
func (s *Session) prompt(ctx context.Context, question string) (string, error) {
	fmt.Fprintf(s.out, "%s\n> ", question)

	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := s.in.ReadString('\n')
		ch <- result{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil && !errors.Is(r.err, io.EOF) {
			return "", fmt.Errorf("read input: %w", r.err)
		}
		return strings.TrimSpace(r.line), nil
	}
}
