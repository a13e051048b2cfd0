package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/skyblockcheck/checker/internal/app"
	"github.com/skyblockcheck/checker/internal/infra"
	"github.com/skyblockcheck/checker/internal/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := app.ParseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, render.ErrorMessage(err))
		return 1
	}

	// Load config
	cfg, err := infra.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	logger := infra.NewLogger(os.Stderr, cfg.LogFormat, opts.Debug || cfg.Debug)
	slog.SetDefault(logger)

	session := app.NewSession(app.SessionDeps{
		Config: cfg,
		Logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	})

	err = session.Run(ctx, opts)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stdout, "\n\nInterrupted by user")
		return 0
	default:
		logger.Debug("lookup failed", "error", err)
		fmt.Fprintln(os.Stdout, render.ErrorMessage(err))
		return 1
	}
}
