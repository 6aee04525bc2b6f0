package matching

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Sachin-ora/Interlink/internal/metrics"
)

// Aggregator queries every configured source in a fixed order and
// concatenates the normalized candidates into one pool. Source order matters:
// it decides precedence during deduplication.
type Aggregator struct {
	sources []Source
	logger  *zap.Logger
}

func NewAggregator(sources []Source, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		sources: sources,
		logger:  logger,
	}
}

// Collect fetches candidates from all sources. A failing or disabled source
// contributes an empty sequence; failures are logged and counted but never
// propagated, so the pipeline degrades instead of aborting.
func (a *Aggregator) Collect(ctx context.Context, query string) []Candidate {
	var pool []Candidate

	for _, source := range a.sources {
		result := a.fetch(ctx, source, query)

		switch {
		case errors.Is(result.Err, ErrSourceDisabled):
			a.logger.Debug("source disabled, skipping",
				zap.String("source", source.Name()),
			)
		case result.Err != nil:
			metrics.SourceFailure(string(result.Source))
			a.logger.Warn("source fetch failed, continuing without it",
				zap.String("source", source.Name()),
				zap.Error(result.Err),
			)
		default:
			metrics.SourceCandidates(string(result.Source), len(result.Candidates))
			a.logger.Info("source contributed candidates",
				zap.String("source", source.Name()),
				zap.Int("count", len(result.Candidates)),
			)
		}

		pool = append(pool, result.Candidates...)
	}

	return pool
}

func (a *Aggregator) fetch(ctx context.Context, source Source, query string) FetchResult {
	candidates, err := source.Fetch(ctx, query)
	if err != nil {
		return FetchResult{Source: source.Tag(), Err: err}
	}

	return FetchResult{Source: source.Tag(), Candidates: candidates}
}
