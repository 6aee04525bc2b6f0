package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankScoresMatchingCandidate(t *testing.T) {
	profile := &Profile{
		ID:     "s1",
		Skills: []string{"python", "react"},
		Bio:    "frontend developer",
	}
	pool := []Candidate{
		{
			ID:             "c1",
			Title:          "Python Intern",
			Description:    "Work on python tooling",
			RequiredSkills: []string{"python", "react"},
			Source:         SourceCatalog,
		},
	}

	matches := Rank(profile, pool, TopK)

	require.Len(t, matches, 1)
	assert.Equal(t, SourceCatalog, matches[0].Source)
	assert.Greater(t, matches[0].Similarity, 0.0)
}

func TestRankSortsDescending(t *testing.T) {
	profile := &Profile{ID: "s1", Skills: []string{"golang", "kubernetes"}}
	pool := []Candidate{
		{ID: "weak", Title: "Accountant", Description: "bookkeeping audit"},
		{ID: "strong", Title: "Golang Intern", Description: "golang kubernetes platform"},
	}

	matches := Rank(profile, pool, TopK)

	require.Len(t, matches, 2)
	assert.Equal(t, "strong", matches[0].ID)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Similarity, matches[i].Similarity)
	}
}

func TestRankTiesKeepPoolOrder(t *testing.T) {
	profile := &Profile{ID: "s1", Skills: []string{"design"}}

	// Identical texts guarantee identical scores.
	pool := make([]Candidate, 5)
	for i := range pool {
		pool[i] = Candidate{
			ID:          fmt.Sprintf("c%d", i),
			Title:       "Design Intern",
			Description: "design portfolio",
		}
	}
	// Dedupe would collapse these; Rank itself must not reorder them.
	matches := Rank(profile, pool, TopK)

	require.Len(t, matches, 5)
	for i, m := range matches {
		assert.Equal(t, fmt.Sprintf("c%d", i), m.ID)
	}
}

func TestRankTruncatesToLimit(t *testing.T) {
	profile := &Profile{ID: "s1", Skills: []string{"sales"}}

	pool := make([]Candidate, 25)
	for i := range pool {
		pool[i] = Candidate{
			ID:    fmt.Sprintf("c%d", i),
			Title: fmt.Sprintf("Sales Intern %d", i),
		}
	}

	matches := Rank(profile, pool, TopK)
	assert.Len(t, matches, TopK)
}

func TestRankEmptyTextCandidateScoresZero(t *testing.T) {
	profile := &Profile{ID: "s1", Skills: []string{"python"}}
	pool := []Candidate{
		{ID: "empty"},
		{ID: "real", Title: "Python Intern"},
	}

	matches := Rank(profile, pool, TopK)

	require.Len(t, matches, 2)
	assert.Equal(t, "real", matches[0].ID)
	assert.Equal(t, 0.0, matches[1].Similarity)
}

func TestRankEmptyPool(t *testing.T) {
	assert.Nil(t, Rank(&Profile{ID: "s1"}, nil, TopK))
}

func TestProfileText(t *testing.T) {
	profile := &Profile{Skills: []string{"Python", "React"}, Bio: "Frontend Dev"}
	assert.Equal(t, "python react frontend dev", profile.Text())

	empty := &Profile{}
	assert.Equal(t, "", empty.Text())
}

func TestProfileSearchQuery(t *testing.T) {
	assert.Equal(t, "python react", (&Profile{Skills: []string{"python", "react"}}).SearchQuery())
	assert.Equal(t, "internship", (&Profile{}).SearchQuery())
	assert.Equal(t, "internship", (&Profile{Skills: []string{""}}).SearchQuery())
}

func TestCandidateText(t *testing.T) {
	c := &Candidate{
		Title:          "Python Intern",
		Description:    "Build APIs",
		RequiredSkills: []string{"Python", "SQL"},
	}
	assert.Equal(t, "python intern build apis python sql", c.Text())

	empty := &Candidate{}
	assert.Equal(t, "", empty.Text())
}
