package main

import (
	"fmt"
	"os"

	"github.com/jonathan/talent-matcher/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort      int
	serveTaxonomy  string
	serveTimeframe int
	serveVerbose   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for ranking, job recommendations, skill-gap analysis, and career counseling.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveTaxonomy, "taxonomy", "", "Path to a taxonomy JSON file (defaults to the built-in taxonomy)")
	serveCmd.Flags().IntVar(&serveTimeframe, "timeframe-months", 0, "Default learning path horizon in months")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Get database URL from environment
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Gemini is optional; without a key all inference is rule-based.
	apiKey := os.Getenv("GEMINI_API_KEY")

	cfg := server.Config{
		Port:            servePort,
		DatabaseURL:     databaseURL,
		APIKey:          apiKey,
		TaxonomyPath:    serveTaxonomy,
		TimeframeMonths: serveTimeframe,
		Verbose:         serveVerbose,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
