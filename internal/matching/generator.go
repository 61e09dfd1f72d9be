// Package matching turns a user profile into generated remote job matches.
package matching

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/jonathan/remote-pathfinder/internal/llm"
	"github.com/jonathan/remote-pathfinder/internal/prompts"
	"github.com/jonathan/remote-pathfinder/internal/types"
)

// Config is the process-wide configuration handed to the generator.
type Config struct {
	// APIKey is the model credential; empty means the generator is unconfigured.
	APIKey string
	// Tier selects the model from the client's configuration.
	Tier llm.ModelTier
	// Loose disables schema and value checks, keeping only the count check.
	Loose bool
}

// Generator produces job matches for a profile. It holds no per-request
// state and is safe for concurrent use when its client is.
type Generator struct {
	cfg    Config
	client llm.Client
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-call diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a generator. client may be nil when cfg has no
// credential; Generate then fails with a ConfigurationError.
func NewGenerator(cfg Config, client llm.Client, opts ...Option) *Generator {
	if cfg.Tier == "" {
		cfg.Tier = llm.TierStandard
	}
	g := &Generator{cfg: cfg, client: client, logger: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Configured reports whether a credential and client are available.
func (g *Generator) Configured() bool {
	return g.cfg.APIKey != "" && g.client != nil
}

// Model returns the name of the model used for generation, or "" if unconfigured.
func (g *Generator) Model() string {
	if g.client == nil {
		return ""
	}
	return g.client.GetModel(g.cfg.Tier)
}

// Generate asks the model for exactly types.MatchCount job matches.
// Every failure is terminal: there is no retry and no partial result.
func (g *Generator) Generate(ctx context.Context, profile types.UserProfile) ([]types.JobMatch, error) {
	if g.cfg.APIKey == "" {
		return nil, &ConfigurationError{Message: "GEMINI_API_KEY is not configured"}
	}
	if g.client == nil {
		return nil, &ConfigurationError{Message: "no model client configured"}
	}

	prompt := BuildPrompt(profile)

	start := time.Now()
	raw, err := g.client.GenerateJSON(ctx, prompt, g.cfg.Tier)
	if err != nil {
		return nil, &UpstreamInvocationError{Model: g.Model(), Cause: err}
	}
	g.logger.Debug("model responded",
		"model", g.Model(),
		"duration", time.Since(start),
		"bytes", len(raw))

	matches, err := DecodeMatches(llm.CleanJSONBlock(raw), !g.cfg.Loose)
	if err != nil {
		g.logger.Warn("rejected model output", "model", g.Model(), "error", err)
		return nil, err
	}
	return matches, nil
}

// BuildPrompt embeds the profile fields verbatim into the role-suggestion prompt.
func BuildPrompt(profile types.UserProfile) string {
	template := prompts.MustGet(prompts.PathfinderFile, prompts.SuggestRemoteRoles)
	return prompts.Format(template, map[string]string{
		"CurrentRole": profile.CurrentRole,
		"Skills":      profile.Skills,
		"Interests":   profile.Interests,
		"IncomeGoal":  profile.IncomeGoal,
		"Count":       strconv.Itoa(types.MatchCount),
	})
}
