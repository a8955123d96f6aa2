// Package main provides the entry point for the job_matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_matcher",
	Short: "Resume/JD skill matching and scoring engine",
	Long:  "job_matcher extracts normalized skill sets from resumes and job descriptions, retrieves nearest-neighbor matches over skill embeddings, and computes interpretable match scores with skill-gap reports.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
