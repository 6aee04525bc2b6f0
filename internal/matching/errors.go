package matching

import "errors"

var (
	// ErrProfileNotFound is returned when no profile matches the requested id.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrNoCandidates is returned when every source yielded nothing after
	// deduplication. It is distinct from an empty ranked list so callers can
	// tell "nothing to score" apart from a successful match.
	ErrNoCandidates = errors.New("no candidates found")

	// ErrSourceDisabled marks a source skipped because its credentials or
	// endpoint are not configured. It never crosses the service boundary.
	ErrSourceDisabled = errors.New("source disabled")
)
