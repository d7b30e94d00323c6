// Package main is the cv-screener command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "screener",
	Short:        "Screen candidate CVs against a job description",
	Long:         "screener runs CVs through a matching pipeline combining vocabulary-based skill extraction with a model assessment, producing a match score, a score breakdown and a hiring recommendation per candidate.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
