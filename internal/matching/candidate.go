package matching

import "strings"

// SourceTag marks the origin of a candidate listing.
type SourceTag string

const (
	SourceCatalog   SourceTag = "catalog"
	SourceProviderA SourceTag = "provider_a"
	SourceProviderB SourceTag = "provider_b"
)

// defaultQuery is used for external searches when a profile has no skills.
const defaultQuery = "internship"

// Profile is a student profile as stored in the catalog. It is fetched once
// per request and never mutated.
type Profile struct {
	ID     string
	Skills []string
	Bio    string
}

// Text returns the lower-cased concatenation of the profile skills and bio,
// the document every candidate is scored against.
func (p *Profile) Text() string {
	return strings.ToLower(strings.TrimSpace(strings.Join(p.Skills, " ") + " " + p.Bio))
}

// SearchQuery builds the search term sent to external providers.
func (p *Profile) SearchQuery() string {
	query := strings.TrimSpace(strings.Join(p.Skills, " "))
	if query == "" {
		return defaultQuery
	}
	return query
}

// Candidate is one listing normalized into the common shape. IDs are unique
// only within their source.
type Candidate struct {
	ID             string
	Title          string
	Description    string
	RequiredSkills []string
	Source         SourceTag
	URL            string
}

// Text returns the lower-cased concatenation of title, description and
// required skills used for vectorization.
func (c *Candidate) Text() string {
	parts := []string{c.Title, c.Description, strings.Join(c.RequiredSkills, " ")}
	return strings.ToLower(strings.TrimSpace(strings.Join(parts, " ")))
}

// RankedMatch is a scored candidate as returned to the caller.
type RankedMatch struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Similarity  float64   `json:"similarity"`
	Source      SourceTag `json:"source"`
	URL         string    `json:"url"`
}
