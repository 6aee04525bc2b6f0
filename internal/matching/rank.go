package matching

import (
	"sort"

	"github.com/Sachin-ora/Interlink/internal/ranking"
)

// TopK is the fixed cap on the number of ranked matches returned.
const TopK = 10

// Rank scores every candidate in the pool against the profile in a shared
// TF-IDF space, sorts by similarity and truncates to limit. The sort is
// stable: equal scores keep the pool's insertion order, so source precedence
// survives ranking.
func Rank(profile *Profile, pool []Candidate, limit int) []RankedMatch {
	if len(pool) == 0 {
		return nil
	}

	// The profile must stay document 0 so scores line up with candidates.
	corpus := make([]string, 0, len(pool)+1)
	corpus = append(corpus, profile.Text())
	for i := range pool {
		corpus = append(corpus, pool[i].Text())
	}

	scores := ranking.Similarities(corpus)

	ranked := make([]RankedMatch, 0, len(pool))
	for i, candidate := range pool {
		ranked = append(ranked, RankedMatch{
			ID:          candidate.ID,
			Title:       candidate.Title,
			Description: candidate.Description,
			Similarity:  scores[i],
			Source:      candidate.Source,
			URL:         candidate.URL,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Similarity > ranked[j].Similarity
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
