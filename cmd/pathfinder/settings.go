package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jonathan/remote-pathfinder/internal/config"
	"github.com/jonathan/remote-pathfinder/internal/llm"
	"github.com/jonathan/remote-pathfinder/internal/matching"
)

// newLLMClient is swapped out in tests.
var newLLMClient = llm.NewClient

// loadSettings resolves configuration with precedence
// flags > config file > environment > defaults.
func loadSettings(flags config.Config, path string) (config.Config, error) {
	cfg := flags

	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildGenerator wires the model client into a generator. Without a
// credential no client is created and the generator reports a
// configuration error on use. The returned func closes the client.
func buildGenerator(ctx context.Context, cfg config.Config, logger *slog.Logger) (*matching.Generator, func(), error) {
	var client llm.Client
	if cfg.APIKey != "" {
		c, err := newLLMClient(ctx, cfg.LLMConfig(), cfg.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		client = c
	} else {
		logger.Warn(config.EnvAPIKey + " is not set; generation will fail until it is configured")
	}

	gen := matching.NewGenerator(matching.Config{
		APIKey: cfg.APIKey,
		Tier:   cfg.ModelTier(),
		Loose:  cfg.LooseValidation,
	}, client, matching.WithLogger(logger))

	closeFn := func() {
		if client != nil {
			_ = client.Close()
		}
	}
	return gen, closeFn, nil
}
