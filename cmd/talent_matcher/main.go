// Package main provides the entry point for the talent matcher CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_matcher",
	Short: "Candidate-job matching and skill gap analysis",
	Long:  "Talent Matcher ranks candidates against job postings using text similarity, category-aware skill matching, and experience and education heuristics, and generates skill-gap reports with phased learning paths.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
