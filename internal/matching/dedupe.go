package matching

// dedupeKey is the raw (title, description) pair. Equality is exact and
// case-sensitive; listings differing only in casing stay distinct.
type dedupeKey struct {
	title       string
	description string
}

// Dedupe collapses candidates sharing the same (title, description) pair.
// The first occurrence wins, so catalog listings take precedence over
// external copies of the same opportunity. Pool order is preserved.
func Dedupe(pool []Candidate) []Candidate {
	seen := make(map[dedupeKey]struct{}, len(pool))
	deduped := make([]Candidate, 0, len(pool))

	for _, candidate := range pool {
		key := dedupeKey{title: candidate.Title, description: candidate.Description}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, candidate)
	}

	return deduped
}
