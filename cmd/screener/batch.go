package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hireloop/cv-screener/internal/domain"
	"github.com/hireloop/cv-screener/internal/usecase"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze a directory of CVs against a job description",
	Long:  "Batch reads every .txt file in a directory as one candidate CV (the file name minus extension is the candidate ID), analyzes them all against the job description, and prints the results as JSON to stdout.",
	RunE:  runBatch,
}

var (
	batchDir       string
	batchJobFile   string
	batchShortlist bool
)

func init() {
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "directory of candidate CV .txt files (required)")
	batchCmd.Flags().StringVar(&batchJobFile, "job", "", "path to the job description text file (required)")
	batchCmd.Flags().BoolVar(&batchShortlist, "shortlist", false, "print only candidates at or above the shortlist threshold, best first")
	_ = batchCmd.MarkFlagRequired("dir")
	_ = batchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	jd, err := os.ReadFile(batchJobFile)
	if err != nil {
		return fmt.Errorf("reading job description file: %w", err)
	}

	items, err := loadBatchItems(batchDir)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no .txt files found in %s", batchDir)
	}

	results, err := a.analyzer.AnalyzeBatch(cmd.Context(), items, string(jd))
	if err != nil {
		return err
	}

	if batchShortlist {
		results = usecase.Shortlist(results, a.cfg.ShortlistThreshold)
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// loadBatchItems reads every .txt file directly under dir, one candidate per
// file, ordered by candidate ID for a stable run.
func loadBatchItems(dir string) ([]domain.BatchItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading cv directory: %w", err)
	}

	var items []domain.BatchItem
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading cv file %s: %w", e.Name(), err)
		}
		items = append(items, domain.BatchItem{
			CandidateID: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			CVText:      string(data),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CandidateID < items[j].CandidateID })
	return items, nil
}
