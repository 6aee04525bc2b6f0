package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Sachin-ora/Interlink/internal/metrics"
)

// ProfileStore resolves student profiles by identifier.
type ProfileStore interface {
	GetProfile(ctx context.Context, id string) (*Profile, error)
}

// Service orchestrates the whole pipeline for one profile: lookup, source
// aggregation, deduplication, scoring and truncation. It holds no state
// between requests.
type Service struct {
	profiles   ProfileStore
	aggregator *Aggregator
	limit      int
	logger     *zap.Logger
}

func NewService(profiles ProfileStore, sources []Source, logger *zap.Logger) *Service {
	return &Service{
		profiles:   profiles,
		aggregator: NewAggregator(sources, logger),
		limit:      TopK,
		logger:     logger,
	}
}

// Match returns up to TopK listings ranked by lexical similarity to the
// profile. Only ErrProfileNotFound, ErrNoCandidates and profile datastore
// failures cross this boundary; per-source fetch failures are absorbed by
// the aggregator.
func (s *Service) Match(ctx context.Context, profileID string) (*Result, error) {
	profile, err := s.profiles.GetProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			metrics.MatchRequest("profile_not_found")
			return nil, fmt.Errorf("profile %q: %w", profileID, ErrProfileNotFound)
		}
		metrics.MatchRequest("datastore_error")
		return nil, fmt.Errorf("fetching profile %q: %w", profileID, err)
	}

	query := profile.SearchQuery()
	s.logger.Info("starting the search",
		zap.String("profile_id", profile.ID),
		zap.String("query", query),
	)

	pool := s.aggregator.Collect(ctx, query)

	aggregated := len(pool)
	pool = Dedupe(pool)
	s.logger.Debug("deduplication finished",
		zap.Int("initial", aggregated),
		zap.Int("dropped", aggregated-len(pool)),
		zap.Int("left", len(pool)),
	)

	if len(pool) == 0 {
		metrics.MatchRequest("no_candidates")
		return nil, ErrNoCandidates
	}

	start := time.Now()
	matches := Rank(profile, pool, s.limit)
	metrics.ObserveRankingDuration(time.Since(start))

	metrics.MatchRequest("ok")
	s.logger.Info("matching finished",
		zap.String("profile_id", profile.ID),
		zap.Int("candidates", len(pool)),
		zap.Int("matches", len(matches)),
	)

	return &Result{
		ProfileID:    profileID,
		MatchesFound: len(matches),
		Matches:      matches,
	}, nil
}
