package main

import (
	"context"
	"os"

	"github.com/jonathan/remote-pathfinder/internal/config"
	"github.com/jonathan/remote-pathfinder/internal/llm"
	"github.com/jonathan/remote-pathfinder/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort        int
	serveAllowOrigin string
	serveLoose       bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP server exposing POST /api/generate, GET /api/model and GET /health.

The server starts even without GEMINI_API_KEY; generate requests then fail
with a 500 until the key is configured.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080 or $PORT)")
	serveCmd.Flags().StringVar(&serveAllowOrigin, "allow-origin", "", "CORS allowed origin (default * or $CORS_ALLOW_ORIGIN)")
	serveCmd.Flags().BoolVar(&serveLoose, "loose", false, "Only check the number of matches in model output")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(config.Config{
		Port:            servePort,
		AllowOrigin:     serveAllowOrigin,
		LooseValidation: serveLoose,
		Verbose:         verbose,
	}, configPath)
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg.Verbose)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	gen, closeClient, err := buildGenerator(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeClient()

	provider, _ := llm.ParseProvider(cfg.Provider)
	srv := server.New(server.Config{
		Port:            cfg.Port,
		Provider:        string(provider),
		AllowOrigin:     cfg.AllowOrigin,
		ShutdownTimeout: cfg.ShutdownDuration(),
		Logger:          logger,
	}, gen)

	return srv.Start()
}
