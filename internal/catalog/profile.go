package catalog

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mitchellh/mapstructure"

	"github.com/Sachin-ora/Interlink/internal/matching"
)

type profileRow struct {
	ID     string   `json:"id"`
	Skills []string `json:"skills"`
	Bio    string   `json:"bio"`
}

// GetProfile resolves a student profile by identifier. It returns
// matching.ErrProfileNotFound when no row matches.
func (c *Client) GetProfile(ctx context.Context, id string) (*matching.Profile, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("catalog is not configured")
	}

	q := url.Values{}
	q.Set("id", "eq."+id)
	q.Set("select", "*")
	q.Set("limit", "1")

	var rows []map[string]any
	if err := c.getJSON(ctx, studentsTable, q, &rows); err != nil {
		return nil, fmt.Errorf("fetching student: %w", err)
	}

	if len(rows) == 0 {
		return nil, matching.ErrProfileNotFound
	}

	var row profileRow
	if err := decodeRow(rows[0], &row); err != nil {
		return nil, fmt.Errorf("decoding student row: %w", err)
	}

	return &matching.Profile{
		ID:     row.ID,
		Skills: row.Skills,
		Bio:    row.Bio,
	}, nil
}

// decodeRow maps a loosely typed PostgREST row onto a typed struct. Numeric
// ids are converted to strings instead of failing.
func decodeRow(row map[string]any, target interface{}) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(row)
}
