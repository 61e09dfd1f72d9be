package main

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/jonathan/remote-pathfinder/internal/config"
	"github.com/jonathan/remote-pathfinder/internal/llm"
)

// fakeClient answers every prompt with response, or fails with err.
type fakeClient struct {
	model    string
	response string
	err      error
}

func (c *fakeClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return c.GenerateJSON(ctx, prompt, tier)
}

func (c *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return c.response, c.err
}

func (c *fakeClient) GetModel(_ llm.ModelTier) string { return c.model }

func (c *fakeClient) Close() error { return nil }

// fakeFactory records the configs passed to newLLMClient.
type fakeFactory struct {
	mu       sync.Mutex
	response string
	failFor  map[string]error
	keys     []string
	models   []string
}

func (f *fakeFactory) newClient(_ context.Context, cfg *llm.Config, apiKey string) (llm.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	model := cfg.GetModel(llm.TierLite)
	f.keys = append(f.keys, apiKey)
	f.models = append(f.models, model)
	return &fakeClient{model: cfg.GetModel(llm.TierStandard), response: f.response, err: f.failFor[model]}, nil
}

// useFakeClients routes client construction through f for the test.
func useFakeClients(t *testing.T, f *fakeFactory) {
	t.Helper()
	orig := newLLMClient
	newLLMClient = f.newClient
	t.Cleanup(func() { newLLMClient = orig })
}

// clearEnv blanks every variable FromEnv reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvAPIKey, config.EnvProvider, config.EnvModel, config.EnvTier, config.EnvPort,
		config.EnvLooseValidation, config.EnvAllowOrigin, config.EnvShutdownTimeout,
	} {
		t.Setenv(key, "")
	}
}

const retailMatches = `[
{"title":"Customer Success Manager","match":88,"reasoning":"Your retail leadership translates directly to keeping clients happy.","salary":"$45k - $60k USD"},
{"title":"Operations Coordinator","match":82,"reasoning":"Excel and organization are the backbone of remote operations work.","salary":"$42k - $58k USD"},
{"title":"Technical Support Specialist","match":75,"reasoning":"You enjoy puzzles and helping people, which is the whole job.","salary":"$40k - $55k USD"}
]`

func fenced(s string) string {
	return "```json\n" + strings.TrimSpace(s) + "\n```"
}
