// Package catalog is a client for the private internship catalog, a
// Supabase-backed PostgREST datastore holding student profiles and
// internship listings.
package catalog

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Sachin-ora/Interlink/internal/matching"
)

const (
	restPath         = "/rest/v1"
	studentsTable    = "students"
	internshipsTable = "internships"
	requestTimeout   = 10 * time.Second
)

type Client struct {
	endpoint   string
	key        string
	logger     *zap.Logger
	HTTPClient *http.Client
}

func New(endpoint, key string, logger *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		key:      key,
		logger:   logger,
		HTTPClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Enabled reports whether the catalog is configured. Without an endpoint and
// key the listing source degrades to empty and profile lookups fail fast.
func (c *Client) Enabled() bool {
	return c.endpoint != "" && c.key != ""
}

func (c *Client) Name() string { return "catalog" }

func (c *Client) Tag() matching.SourceTag { return matching.SourceCatalog }
