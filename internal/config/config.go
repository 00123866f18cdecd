// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ericfisherdev/reactrank/internal/domain/model"
)

// The ranked repository is fixed; it is not configurable.
const (
	RepoOwner = "facebook"
	RepoName  = "react"
)

// ErrMissingToken is returned by Load when no GitHub token is set.
var ErrMissingToken = errors.New("missing GitHub token: set REACTRANK_GITHUB_TOKEN or GITHUB_TOKEN")

// Config holds the application configuration loaded from environment variables.
type Config struct {
	GitHubToken    string
	Repository     model.Repository
	Concurrency    int
	RequestTimeout time.Duration
	LogLevel       slog.Level
}

// Load reads configuration from environment variables and returns a validated Config.
// The token is required: REACTRANK_GITHUB_TOKEN, falling back to GITHUB_TOKEN.
// Optional variables with defaults: REACTRANK_CONCURRENCY (1),
// REACTRANK_REQUEST_TIMEOUT (0, no timeout), REACTRANK_LOG_LEVEL (warn).
func Load() (*Config, error) {
	token := os.Getenv("REACTRANK_GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	concurrency := 1
	if v, ok := os.LookupEnv("REACTRANK_CONCURRENCY"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("REACTRANK_CONCURRENCY has invalid value %q: %w", v, err)
		}
		if parsed < 1 {
			return nil, fmt.Errorf("REACTRANK_CONCURRENCY must be at least 1, got %d", parsed)
		}
		concurrency = parsed
	}

	var requestTimeout time.Duration
	if v, ok := os.LookupEnv("REACTRANK_REQUEST_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("REACTRANK_REQUEST_TIMEOUT has invalid duration %q: %w", v, err)
		}
		if parsed < 0 {
			return nil, fmt.Errorf("REACTRANK_REQUEST_TIMEOUT must not be negative, got %s", parsed)
		}
		requestTimeout = parsed
	}

	logLevel := slog.LevelWarn
	if v, ok := os.LookupEnv("REACTRANK_LOG_LEVEL"); ok && v != "" {
		if err := logLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return nil, fmt.Errorf("REACTRANK_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	return &Config{
		GitHubToken:    token,
		Repository:     model.Repository{Owner: RepoOwner, Name: RepoName},
		Concurrency:    concurrency,
		RequestTimeout: requestTimeout,
		LogLevel:       logLevel,
	}, nil
}
