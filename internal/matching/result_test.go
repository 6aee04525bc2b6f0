package matching

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportBySource(t *testing.T) {
	result := &Result{
		ProfileID: "s1",
		Matches: []RankedMatch{
			{ID: "c1", Source: SourceCatalog},
			{ID: "j1", Source: SourceProviderA},
			{ID: "j2", Source: SourceProviderA},
		},
	}

	report := result.ReportBySource()

	assert.Len(t, report[SourceCatalog], 1)
	assert.Len(t, report[SourceProviderA], 2)
	assert.Empty(t, report[SourceProviderB])
}

func TestDumpToTmpFile(t *testing.T) {
	result := &Result{
		ProfileID:    "s1",
		MatchesFound: 1,
		Matches: []RankedMatch{
			{ID: "c1", Title: "Python Intern", Similarity: 0.42, Source: SourceCatalog},
		},
	}

	filename, err := result.DumpToTmpFile()
	require.NoError(t, err)
	defer os.Remove(filename)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)

	var decoded Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "s1", decoded.ProfileID)
	require.Len(t, decoded.Matches, 1)
	assert.Equal(t, SourceCatalog, decoded.Matches[0].Source)
}
