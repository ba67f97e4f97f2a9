package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/talent-matcher/internal/counseling"
	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
	"github.com/spf13/cobra"
)

var careerCmd = &cobra.Command{
	Use:   "career",
	Short: "Generate a full career recommendation from a resume",
	Long: `Assesses a candidate's current domain and level from their resume,
recommends the next career step, and prints the supporting skill-gap analysis
and market insight. With a Gemini API key the report includes a short
AI-written guidance paragraph.`,
	RunE: runCareerCmd,
}

var (
	careerResume   string
	careerName     string
	careerYears    int
	careerAPIKey   string
	careerTaxonomy string
)

func init() {
	careerCmd.Flags().StringVarP(&careerResume, "resume", "r", "", "Path to resume text file (required)")
	careerCmd.Flags().StringVarP(&careerName, "name", "n", "", "Candidate name")
	careerCmd.Flags().IntVar(&careerYears, "years", 0, "Years of professional experience")
	careerCmd.Flags().StringVar(&careerAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	careerCmd.Flags().StringVar(&careerTaxonomy, "taxonomy", "", "Path to a taxonomy JSON file (defaults to the built-in taxonomy)")
	_ = careerCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(careerCmd)
}

func runCareerCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	text, err := os.ReadFile(careerResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	tax := taxonomy.Default()
	if careerTaxonomy != "" {
		tax, err = taxonomy.Load(careerTaxonomy)
		if err != nil {
			return fmt.Errorf("failed to load taxonomy: %w", err)
		}
	}

	apiKey := careerAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var advisor counseling.Advisor
	if apiKey != "" {
		client, err := llm.NewClient(ctx, nil, apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close() //nolint:errcheck
		advisor = counseling.NewLLMAdvisor(client)
	}

	candidate := types.CandidateProfile{
		Name:       careerName,
		ResumeText: string(text),
	}
	if cmd.Flags().Changed("years") {
		years := careerYears
		candidate.ExperienceYears = &years
	}

	counselor := counseling.NewCounselor(tax, advisor)
	recommendation := counselor.Recommend(ctx, candidate)

	observability.NewPrinter(os.Stdout).PrintCareerRecommendation(recommendation)
	return json.NewEncoder(os.Stdout).Encode(recommendation)
}
