package llm

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// probePrompt is the trivial prompt used to check that a model answers.
const probePrompt = `Say "test"`

// CandidateModels lists the Gemini model names worth probing with a new key.
var CandidateModels = []string{
	"gemini-2.5-flash",
	"gemini-2.5-pro",
	"gemini-2.5-flash-lite",
	"gemini-2.0-flash",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-1.5-flash-latest",
	"gemini-1.5-pro-latest",
	"gemini-pro",
}

// ClientFactory builds a Client whose TierLite model is the given model name.
type ClientFactory func(ctx context.Context, model string) (Client, error)

// ProbeResult records whether a single model answered the probe prompt.
type ProbeResult struct {
	Model   string        `json:"model"`
	OK      bool          `json:"ok"`
	Error   string        `json:"error,omitempty"`
	Latency time.Duration `json:"latency"`
}

// ProbeModels sends the probe prompt to every model, at most concurrency at a
// time, and returns one result per model in input order. A failing model is
// reported in its result and never aborts the other probes.
func ProbeModels(ctx context.Context, newClient ClientFactory, models []string, concurrency int) []ProbeResult {
	results := make([]ProbeResult, len(models))

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, model := range models {
		g.Go(func() error {
			results[i] = probeOne(gctx, newClient, model)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func probeOne(ctx context.Context, newClient ClientFactory, model string) ProbeResult {
	result := ProbeResult{Model: model}
	start := time.Now()

	client, err := newClient(ctx, model)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer func() { _ = client.Close() }()

	if _, err := client.GenerateContent(ctx, probePrompt, TierLite); err != nil {
		result.Error = err.Error()
	} else {
		result.OK = true
	}
	result.Latency = time.Since(start)
	return result
}

// WorkingModels filters results down to the models that answered.
func WorkingModels(results []ProbeResult) []string {
	var ok []string
	for _, r := range results {
		if r.OK {
			ok = append(ok, r.Model)
		}
	}
	return ok
}
