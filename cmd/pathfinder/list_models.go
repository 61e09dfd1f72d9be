package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/remote-pathfinder/internal/config"
	"github.com/jonathan/remote-pathfinder/internal/llm"
	"github.com/jonathan/remote-pathfinder/internal/observability"
	"github.com/spf13/cobra"
)

type listModelsOptions struct {
	APIKey      string
	Concurrency int
	JSON        bool
	Models      []string
	Settings    string
}

var listOpts listModelsOptions

var listModelsCmd = &cobra.Command{
	Use:   "list-models [model...]",
	Short: "Check which Gemini models answer with the configured key",
	Long:  "Send a trivial prompt to each candidate model (or the models given as arguments) and report which ones respond.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		listOpts.Models = args
		listOpts.Settings = configPath
		return runListModels(ctx, cmd.OutOrStdout(), listOpts)
	},
}

func init() {
	listModelsCmd.Flags().StringVar(&listOpts.APIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	listModelsCmd.Flags().IntVar(&listOpts.Concurrency, "concurrency", 4, "Maximum concurrent probes")
	listModelsCmd.Flags().BoolVar(&listOpts.JSON, "json", false, "Print results as JSON")
	rootCmd.AddCommand(listModelsCmd)
}

func runListModels(ctx context.Context, out io.Writer, opts listModelsOptions) error {
	cfg, err := loadSettings(config.Config{APIKey: opts.APIKey}, opts.Settings)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set %s environment variable or use --api-key flag)", config.EnvAPIKey)
	}

	models := opts.Models
	if len(models) == 0 {
		models = llm.CandidateModels
	}

	base := cfg.LLMConfig()
	factory := func(ctx context.Context, model string) (llm.Client, error) {
		return newLLMClient(ctx, base.WithModel(llm.TierLite, model), cfg.APIKey)
	}

	results := llm.ProbeModels(ctx, factory, models, opts.Concurrency)

	if opts.JSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	observability.NewPrinter(out).PrintProbeResults(results)
	return nil
}
