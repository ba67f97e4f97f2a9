package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/talent-matcher/internal/matching"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the best-matching jobs for a candidate",
	Long: `Scores one candidate against a set of jobs and prints the best matches
first.

The candidate comes from a resume text file (--resume); jobs come from a
JSON file holding an array of job profiles (--jobs).`,
	RunE: runRecommendCmd,
}

var (
	recommendResume   string
	recommendName     string
	recommendYears    int
	recommendJobs     string
	recommendTopN     int
	recommendTaxonomy string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendResume, "resume", "r", "", "Path to resume text file (required)")
	recommendCmd.Flags().StringVarP(&recommendName, "name", "n", "", "Candidate name")
	recommendCmd.Flags().IntVar(&recommendYears, "years", 0, "Years of professional experience")
	recommendCmd.Flags().StringVar(&recommendJobs, "jobs", "", "Path to JSON file with an array of job profiles (required)")
	recommendCmd.Flags().IntVar(&recommendTopN, "top", 0, "Only print the top N jobs (0 prints all)")
	recommendCmd.Flags().StringVar(&recommendTaxonomy, "taxonomy", "", "Path to a taxonomy JSON file (defaults to the built-in taxonomy)")
	_ = recommendCmd.MarkFlagRequired("resume")
	_ = recommendCmd.MarkFlagRequired("jobs")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommendCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	text, err := os.ReadFile(recommendResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	jobs, err := loadJobs(recommendJobs)
	if err != nil {
		return err
	}

	tax := taxonomy.Default()
	if recommendTaxonomy != "" {
		tax, err = taxonomy.Load(recommendTaxonomy)
		if err != nil {
			return fmt.Errorf("failed to load taxonomy: %w", err)
		}
	}

	candidate := types.CandidateProfile{
		Name:       recommendName,
		ResumeText: string(text),
	}
	if cmd.Flags().Changed("years") {
		years := recommendYears
		candidate.ExperienceYears = &years
	}

	ranker := matching.NewRanker(tax)
	matches, err := ranker.RecommendJobs(ctx, candidate, jobs, recommendTopN)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintJobMatches(matches)
	return json.NewEncoder(os.Stdout).Encode(matches)
}

// loadJobs reads a JSON array of job profiles.
func loadJobs(path string) ([]types.JobProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file: %w", err)
	}

	var jobs []types.JobProfile
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse jobs JSON: %w", err)
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("jobs file contains no jobs")
	}
	return jobs, nil
}
