package matching

import (
	"encoding/json"
	"os"
)

// Result is the successful outcome of one match request.
type Result struct {
	ProfileID    string        `json:"student_id"`
	MatchesFound int           `json:"matches_found"`
	Matches      []RankedMatch `json:"matches"`
}

// ReportBySource groups the ranked matches by their origin.
func (r *Result) ReportBySource() map[SourceTag][]RankedMatch {
	report := make(map[SourceTag][]RankedMatch)
	for _, match := range r.Matches {
		report[match.Source] = append(report[match.Source], match)
	}
	return report
}

// DumpToTmpFile writes the result as indented JSON to a temporary file and
// returns its name.
func (r *Result) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
