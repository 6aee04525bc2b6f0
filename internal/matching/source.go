package matching

import "context"

// Source fetches raw listings from one origin and maps them into the common
// Candidate shape. Implementations own their transport, field mapping and
// result caps; they return an error instead of a partial result.
type Source interface {
	Name() string
	Tag() SourceTag
	Fetch(ctx context.Context, query string) ([]Candidate, error)
}

// FetchResult is the outcome of querying a single source: either a candidate
// sequence or a tagged failure, never both.
type FetchResult struct {
	Source     SourceTag
	Candidates []Candidate
	Err        error
}
