package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/talent-matcher/internal/config"
	"github.com/jonathan/talent-matcher/internal/fetch"
	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/matching"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates against a job posting",
	Long: `Scores a set of candidates against one job and prints them best first.

The job comes from a local text file (--job) or a posting URL (--job-url).
Candidates come from a JSON file holding an array of candidate profiles.
Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runRankCmd,
}

var (
	rankConfigPath string
	rankJob        string
	rankJobURL     string
	rankCandidates string
	rankTaxonomy   string
	rankTopN       int
	rankWorkers    int
	rankMaxVocab   int
	rankUseBrowser bool
	rankAPIKey     string
	rankVerbose    bool
)

func init() {
	rankCmd.Flags().StringVar(&rankConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	rankCmd.Flags().StringVar(&rankJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	rankCmd.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Path to JSON file with an array of candidate profiles (required)")
	rankCmd.Flags().StringVar(&rankTaxonomy, "taxonomy", "", "Path to a taxonomy JSON file (defaults to the built-in taxonomy)")
	rankCmd.Flags().IntVar(&rankTopN, "top", 0, "Only print the top N candidates (0 prints all)")
	rankCmd.Flags().IntVar(&rankWorkers, "workers", 0, "Concurrent scoring workers (0 uses one per CPU)")
	rankCmd.Flags().IntVar(&rankMaxVocab, "max-vocab", 0, "TF-IDF vocabulary cap (0 uses the default)")
	rankCmd.Flags().BoolVar(&rankUseBrowser, "use-browser", false, "Always render fetched postings with the headless browser")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	rankCmd.Flags().StringVar(&rankAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(rankCmd)
}

func runRankCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadRankConfig(cmd)
	if err != nil {
		return err
	}

	tax := taxonomy.Default()
	if cfg.Taxonomy != "" {
		tax, err = taxonomy.Load(cfg.Taxonomy)
		if err != nil {
			return fmt.Errorf("failed to load taxonomy: %w", err)
		}
	}

	job, err := resolveJob(ctx, cfg, tax)
	if err != nil {
		return err
	}

	candidates, err := loadCandidates(rankCandidates)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintJobProfile(job)
	}

	ranker := matching.NewRankerWithOptions(tax, matching.Options{
		Workers:       cfg.Workers,
		MaxVocabulary: cfg.MaxVocab,
	})
	results, err := ranker.Rank(ctx, *job, candidates)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	if cfg.TopN > 0 && len(results) > cfg.TopN {
		results = results[:cfg.TopN]
	}

	printer.PrintMatchResults(results)
	return json.NewEncoder(os.Stdout).Encode(results)
}

// loadRankConfig merges the optional config file with CLI flags, flags
// winning.
func loadRankConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if rankConfigPath != "" {
		loaded, err := config.LoadConfig(rankConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("job") {
		cfg.Job = rankJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = rankJobURL
	}
	if cmd.Flags().Changed("taxonomy") {
		cfg.Taxonomy = rankTaxonomy
	}
	if cmd.Flags().Changed("top") {
		cfg.TopN = rankTopN
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = rankWorkers
	}
	if cmd.Flags().Changed("max-vocab") {
		cfg.MaxVocab = rankMaxVocab
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = rankUseBrowser
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = rankAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rankVerbose
	}

	if cfg.Job == "" && cfg.JobURL == "" {
		return cfg, fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return cfg, fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}
	if rankCandidates == "" {
		return cfg, fmt.Errorf("--candidates is required")
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	return cfg, nil
}

// resolveJob builds the job profile from a local file or by fetching the
// posting URL.
func resolveJob(ctx context.Context, cfg config.Config, tax *taxonomy.Taxonomy) (*types.JobProfile, error) {
	if cfg.Job != "" {
		text, err := os.ReadFile(cfg.Job)
		if err != nil {
			return nil, fmt.Errorf("failed to read job file: %w", err)
		}
		return &types.JobProfile{Description: string(text)}, nil
	}

	var client llm.Client
	if cfg.APIKey != "" {
		var err error
		client, err = llm.NewClient(ctx, nil, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close() //nolint:errcheck
	}

	// No database on the CLI path; every fetch goes to the network.
	fetcher := fetch.NewPostingFetcher(fetch.NewCachedFetcher(nil, nil), client, tax, fetch.PostingOptions{
		ForceBrowser: cfg.UseBrowser,
		Verbose:      cfg.Verbose,
	})
	job, err := fetcher.FetchJob(ctx, cfg.JobURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return job, nil
}

// loadCandidates reads a JSON array of candidate profiles.
func loadCandidates(path string) ([]types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file: %w", err)
	}

	var candidates []types.CandidateProfile
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidates JSON: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("candidates file contains no candidates")
	}
	return candidates, nil
}
