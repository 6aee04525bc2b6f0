// Package metrics exposes Prometheus collectors for the matching pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "interlink"
	subsystem = "matcher"
)

var (
	matchRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "match_requests_total",
		Help:      "Match requests by outcome.",
	}, []string{"outcome"})

	sourceCandidates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "source_candidates_total",
		Help:      "Candidates contributed by each source before deduplication.",
	}, []string{"source"})

	sourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "source_failures_total",
		Help:      "Source fetches that degraded to an empty result.",
	}, []string{"source"})

	rankingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "ranking_duration_seconds",
		Help:      "Time spent vectorizing and scoring one candidate pool.",
		Buckets:   prometheus.DefBuckets,
	})
)

// MatchRequest counts one finished match request with the given outcome.
func MatchRequest(outcome string) {
	matchRequests.WithLabelValues(outcome).Inc()
}

// SourceCandidates records how many candidates a source contributed.
func SourceCandidates(source string, count int) {
	sourceCandidates.WithLabelValues(source).Add(float64(count))
}

// SourceFailure counts one absorbed source failure.
func SourceFailure(source string) {
	sourceFailures.WithLabelValues(source).Inc()
}

// ObserveRankingDuration records the duration of one scoring pass.
func ObserveRankingDuration(d time.Duration) {
	rankingDuration.Observe(d.Seconds())
}
