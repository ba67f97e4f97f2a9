package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/talent-matcher/internal/db"
	"github.com/jonathan/talent-matcher/internal/fetch"
	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/spf13/cobra"
)

var fetchJobCmd = &cobra.Command{
	Use:   "fetch-job",
	Short: "Fetch and parse a job posting URL",
	Long: `Downloads a job posting, extracts the main text, and infers a structured
job profile (title, required skills, seniority, experience requirement).

With DATABASE_URL set, fetched postings are cached and reused until they
expire. With a Gemini API key the profile is extracted by the model; without
one it falls back to rule-based inference.`,
	RunE: runFetchJobCmd,
}

var (
	fetchURL     string
	fetchAPIKey  string
	fetchNoCache bool
	fetchBrowser bool
	fetchVerbose bool
)

func init() {
	fetchJobCmd.Flags().StringVarP(&fetchURL, "url", "u", "", "Job posting URL (required)")
	fetchJobCmd.Flags().StringVar(&fetchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	fetchJobCmd.Flags().BoolVar(&fetchNoCache, "no-cache", false, "Skip the posting cache and force a fresh fetch")
	fetchJobCmd.Flags().BoolVar(&fetchBrowser, "browser", false, "Always render the page with the headless browser")
	fetchJobCmd.Flags().BoolVarP(&fetchVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = fetchJobCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(fetchJobCmd)
}

func runFetchJobCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Cache postings when a database is configured
	var database *db.DB
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		var err error
		database, err = db.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	apiKey := fetchAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var client llm.Client
	if apiKey != "" {
		var err error
		client, err = llm.NewClient(ctx, nil, apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close() //nolint:errcheck
	}

	fetcherConfig := fetch.DefaultCachedFetcherConfig()
	fetcherConfig.SkipCache = fetchNoCache

	tax := taxonomy.Default()
	fetcher := fetch.NewPostingFetcher(fetch.NewCachedFetcher(database, fetcherConfig), client, tax, fetch.PostingOptions{
		ForceBrowser: fetchBrowser,
		Verbose:      fetchVerbose,
	})

	job, err := fetcher.FetchJob(ctx, fetchURL)
	if err != nil {
		return fmt.Errorf("failed to fetch job posting: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintJobProfile(job)
	return json.NewEncoder(os.Stdout).Encode(job)
}
