package usecase

import (
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hireloop/cv-screener/internal/adapter/observability"
	"github.com/hireloop/cv-screener/internal/domain"
)

// AnalyzeBatch fans a collection of CVs out across the pipeline against one
// job description and returns exactly one result per input, index-aligned
// and paired to its candidate identifier.
//
// Items are processed in chunks of the configured size: all CVs in a chunk
// run concurrently and are awaited together before the next chunk starts,
// bounding how many model requests are in flight at once. An item exhausting
// its retries gets the fallback Analysis with Degraded set; an item with
// empty CV text gets Err set. Neither affects its siblings.
func (a *Analyzer) AnalyzeBatch(ctx domain.Context, items []domain.BatchItem, jobDescription string) ([]domain.ItemResult, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("%w: job description is empty", domain.ErrInvalidInput)
	}

	runID := ulid.Make().String()
	chunkSize := a.cfg.BatchChunkSize
	if chunkSize < 1 {
		chunkSize = 1
	}
	logger := slog.Default().With(slog.String("batch_run_id", runID))
	logger.Info("starting batch analysis",
		slog.Int("items", len(items)),
		slog.Int("chunk_size", chunkSize))

	ctx, span := a.tracer.Start(ctx, "screening.batch")
	defer span.End()

	start := time.Now()
	results := make([]domain.ItemResult, len(items))
	for chunkStart := 0; chunkStart < len(items); chunkStart += chunkSize {
		chunkEnd := chunkStart + chunkSize
		if chunkEnd > len(items) {
			chunkEnd = len(items)
		}
		g, gctx := errgroup.WithContext(ctx)
		for i := chunkStart; i < chunkEnd; i++ {
			i := i
			item := items[i]
			g.Go(func() error {
				analysis, degraded, err := a.analyze(gctx, item.CVText, jobDescription)
				results[i] = domain.ItemResult{
					CandidateID: item.CandidateID,
					Analysis:    analysis,
					Degraded:    degraded,
					Err:         err,
				}
				switch {
				case err != nil:
					observability.BatchItemsTotal.WithLabelValues("invalid").Inc()
					logger.Warn("batch item rejected",
						slog.String("candidate_id", item.CandidateID),
						slog.Any("error", err))
				case degraded:
					observability.BatchItemsTotal.WithLabelValues("degraded").Inc()
					logger.Warn("batch item degraded to fallback",
						slog.String("candidate_id", item.CandidateID))
				default:
					observability.BatchItemsTotal.WithLabelValues("ok").Inc()
				}
				// Item outcomes never abort the batch.
				return nil
			})
		}
		_ = g.Wait()
	}

	logger.Info("batch analysis complete",
		slog.Int("items", len(items)),
		slog.Duration("elapsed", time.Since(start)))
	return results, nil
}
