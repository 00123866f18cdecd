package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	githubadapter "github.com/ericfisherdev/reactrank/internal/adapter/driven/github"
	"github.com/ericfisherdev/reactrank/internal/adapter/driving/cli"
	"github.com/ericfisherdev/reactrank/internal/application"
	"github.com/ericfisherdev/reactrank/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load .env if present, then configuration (fail fast on a missing token).
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	slog.Info("config loaded",
		"repo", cfg.Repository.FullName(),
		"concurrency", cfg.Concurrency,
		"request_timeout", cfg.RequestTimeout,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Wire adapters and the ranking service.
	ghClient := githubadapter.NewClient(cfg.GitHubToken)
	reporter := cli.NewReporter(os.Stdout)
	rankSvc := application.NewRankService(ghClient, reporter, cfg.Concurrency, cfg.RequestTimeout)

	// 4. Rank and print. Nothing is printed if the run aborts.
	ranking, err := rankSvc.Rank(ctx, cfg.Repository)
	if err != nil {
		return fmt.Errorf("ranking %s: %w", cfg.Repository.FullName(), err)
	}

	reporter.PrintRanking(ranking)
	return nil
}
