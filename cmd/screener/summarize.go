package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a job description",
	Long:  "Summarize asks the model for a structured summary of a job description: a short prose summary plus key requirements and responsibilities.",
	RunE:  runSummarize,
}

var summarizeJobFile string

func init() {
	summarizeCmd.Flags().StringVar(&summarizeJobFile, "job", "", "path to the job description text file (required)")
	_ = summarizeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	jd, err := os.ReadFile(summarizeJobFile)
	if err != nil {
		return fmt.Errorf("reading job description file: %w", err)
	}

	summary, err := a.analyzer.SummarizeJob(cmd.Context(), string(jd))
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
