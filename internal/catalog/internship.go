package catalog

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Sachin-ora/Interlink/internal/matching"
)

type internshipRow struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
}

// Fetch reads the full internship table and normalizes every row into a
// Candidate. The catalog carries no result cap and ignores the search query.
func (c *Client) Fetch(ctx context.Context, _ string) ([]matching.Candidate, error) {
	if !c.Enabled() {
		return nil, matching.ErrSourceDisabled
	}

	q := url.Values{}
	q.Set("select", "id,title,description,required_skills")

	var rows []map[string]any
	if err := c.getJSON(ctx, internshipsTable, q, &rows); err != nil {
		return nil, fmt.Errorf("listing internships: %w", err)
	}

	candidates := make([]matching.Candidate, 0, len(rows))
	for _, raw := range rows {
		var row internshipRow
		if err := decodeRow(raw, &row); err != nil {
			return nil, fmt.Errorf("decoding internship row: %w", err)
		}

		candidates = append(candidates, matching.Candidate{
			ID:             row.ID,
			Title:          row.Title,
			Description:    row.Description,
			RequiredSkills: row.RequiredSkills,
			Source:         matching.SourceCatalog,
			// Catalog listings have no external apply link.
			URL: "",
		})
	}

	return candidates, nil
}
