package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one CV against a job description",
	Long:  "Analyze reads a CV and a job description from text files and prints the resulting analysis as JSON to stdout.",
	RunE:  runAnalyze,
}

var (
	analyzeCVFile  string
	analyzeJobFile string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCVFile, "cv", "", "path to the CV text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", "path to the job description text file (required)")
	_ = analyzeCmd.MarkFlagRequired("cv")
	_ = analyzeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	cv, err := os.ReadFile(analyzeCVFile)
	if err != nil {
		return fmt.Errorf("reading cv file: %w", err)
	}
	jd, err := os.ReadFile(analyzeJobFile)
	if err != nil {
		return fmt.Errorf("reading job description file: %w", err)
	}

	analysis, err := a.analyzer.AnalyzeCV(cmd.Context(), string(cv), string(jd))
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding analysis: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
