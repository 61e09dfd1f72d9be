package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/remote-pathfinder/internal/config"
	"github.com/jonathan/remote-pathfinder/internal/matching"
	"github.com/jonathan/remote-pathfinder/internal/observability"
	"github.com/jonathan/remote-pathfinder/internal/types"
	"github.com/spf13/cobra"
)

// generateOptions holds the flags of the generate command.
type generateOptions struct {
	Profile  types.UserProfile
	APIKey   string
	Model    string
	Loose    bool
	JSON     bool
	Settings string
}

var genOpts generateOptions

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Suggest three remote roles for a profile",
	Long:  "Send a career profile to the model once and print the three suggested remote roles, as a summary or as JSON.",
	Example: `  pathfinder generate --role "Retail Store Manager" \
    --skills "Communication, Excel, Organization" \
    --interests "Helping people, solving logic puzzles" \
    --income 50000`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		genOpts.Settings = configPath
		return runGenerate(ctx, cmd.OutOrStdout(), genOpts)
	},
}

func init() {
	generateCmd.Flags().StringVar(&genOpts.Profile.CurrentRole, "role", "", "Current role (required)")
	generateCmd.Flags().StringVar(&genOpts.Profile.Skills, "skills", "", "Skills, free text (required)")
	generateCmd.Flags().StringVar(&genOpts.Profile.Interests, "interests", "", "Interests, free text (required)")
	generateCmd.Flags().StringVar(&genOpts.Profile.IncomeGoal, "income", "", "Income goal in USD/year (required)")
	generateCmd.Flags().StringVar(&genOpts.APIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVar(&genOpts.Model, "model", "", "Model name (overrides GEMINI_MODEL env var)")
	generateCmd.Flags().BoolVar(&genOpts.Loose, "loose", false, "Only check the number of matches in model output")
	generateCmd.Flags().BoolVar(&genOpts.JSON, "json", false, "Print the response as JSON")

	for _, name := range []string{"role", "skills", "interests", "income"} {
		_ = generateCmd.MarkFlagRequired(name)
	}
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(ctx context.Context, out io.Writer, opts generateOptions) error {
	if err := opts.Profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	cfg, err := loadSettings(config.Config{
		APIKey:          opts.APIKey,
		Model:           opts.Model,
		LooseValidation: opts.Loose,
		Verbose:         verbose,
	}, opts.Settings)
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg.Verbose)
	gen, closeClient, err := buildGenerator(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeClient()

	jobs, err := gen.Generate(ctx, opts.Profile)
	if err != nil {
		return fmt.Errorf("%s error: %w", matching.Kind(err), err)
	}

	if opts.JSON {
		data, err := json.MarshalIndent(types.GenerateResponse{Jobs: jobs}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	printer := observability.NewPrinter(out)
	printer.PrintProfile(opts.Profile)
	printer.PrintJobMatches(jobs)
	return nil
}
