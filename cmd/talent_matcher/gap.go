package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/talent-matcher/internal/counseling"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
	"github.com/spf13/cobra"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Analyze skill gaps toward a target domain and level",
	Long: `Compares a candidate's current skills against the reference requirements
of a target career domain and seniority level, and prints the gaps together
with a phased learning path.

Skills come from --skills (comma-separated) or are extracted from a resume
text file (--resume).`,
	RunE: runGapCmd,
}

var (
	gapSkills    string
	gapResume    string
	gapDomain    string
	gapLevel     string
	gapTimeframe int
	gapTaxonomy  string
)

func init() {
	gapCmd.Flags().StringVar(&gapSkills, "skills", "", "Comma-separated skill list (mutually exclusive with --resume)")
	gapCmd.Flags().StringVarP(&gapResume, "resume", "r", "", "Path to resume text file (mutually exclusive with --skills)")
	gapCmd.Flags().StringVarP(&gapDomain, "domain", "d", "", "Target career domain (defaults to software_development)")
	gapCmd.Flags().StringVarP(&gapLevel, "level", "l", "", "Target seniority level (defaults to mid_level)")
	gapCmd.Flags().IntVar(&gapTimeframe, "timeframe-months", 0, "Learning path horizon in months")
	gapCmd.Flags().StringVar(&gapTaxonomy, "taxonomy", "", "Path to a taxonomy JSON file (defaults to the built-in taxonomy)")
	rootCmd.AddCommand(gapCmd)
}

func runGapCmd(_ *cobra.Command, _ []string) error {
	if gapSkills == "" && gapResume == "" {
		return fmt.Errorf("either --skills or --resume must be provided")
	}
	if gapSkills != "" && gapResume != "" {
		return fmt.Errorf("--skills and --resume are mutually exclusive; provide only one")
	}

	tax := taxonomy.Default()
	if gapTaxonomy != "" {
		loaded, err := taxonomy.Load(gapTaxonomy)
		if err != nil {
			return fmt.Errorf("failed to load taxonomy: %w", err)
		}
		tax = loaded
	}

	var skills types.SkillSet
	if gapSkills != "" {
		skills = tax.ExtractFromList(strings.Split(gapSkills, ","))
	} else {
		text, err := os.ReadFile(gapResume)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		skills = tax.ExtractSkills(string(text))
	}

	counselor := counseling.NewCounselor(tax, nil)
	report := counselor.AnalyzeGap(skills, gapDomain, types.SeniorityLevel(gapLevel))
	if gapTimeframe > 0 {
		report.LearningPath = counselor.GenerateLearningPath(report, gapTimeframe)
	}

	observability.NewPrinter(os.Stdout).PrintGapReport(report)
	return json.NewEncoder(os.Stdout).Encode(report)
}
