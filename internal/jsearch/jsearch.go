// Package jsearch is a client for the JSearch job-search API on RapidAPI,
// the first external listing provider.
package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/Sachin-ora/Interlink/internal/matching"
)

const (
	apiURL         = "https://jsearch.p.rapidapi.com/search"
	apiHost        = "jsearch.p.rapidapi.com"
	maxResults     = 10
	requestTimeout = 10 * time.Second

	// defaultTitle substitutes a missing job title, matching what the
	// provider's own UI shows for untitled postings.
	defaultTitle = "Untitled"
)

type Client struct {
	key        string
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
}

func New(key string, logger *zap.Logger) *Client {
	return &Client{
		key:    key,
		logger: logger,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *Client) Name() string { return "jsearch" }

func (c *Client) Tag() matching.SourceTag { return matching.SourceProviderA }

type searchResponse struct {
	Data []map[string]any `json:"data"`
}

type jobRow struct {
	JobID          string `json:"job_id"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	JobApplyLink   string `json:"job_apply_link"`
}

// Fetch searches JSearch for internships matching the query and normalizes
// up to maxResults listings. A missing API key disables the source.
func (c *Client) Fetch(ctx context.Context, query string) ([]matching.Candidate, error) {
	if c.key == "" {
		return nil, matching.ErrSourceDisabled
	}

	q := url.Values{}
	q.Set("query", query+" internship")
	q.Set("page", "1")
	q.Set("num_pages", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", c.key)
	req.Header.Set("x-rapidapi-host", apiHost)
	req.URL.RawQuery = q.Encode()

	c.logger.Debug("make request", zap.String("url", req.URL.String()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var response searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	jobs := response.Data
	if len(jobs) > maxResults {
		jobs = jobs[:maxResults]
	}

	candidates := make([]matching.Candidate, 0, len(jobs))
	for i, raw := range jobs {
		var job jobRow
		if err := decodeJob(raw, &job); err != nil {
			return nil, fmt.Errorf("decoding job: %w", err)
		}

		if job.JobID == "" {
			job.JobID = fmt.Sprintf("j_%d", i)
		}
		if job.JobTitle == "" {
			job.JobTitle = defaultTitle
		}

		candidates = append(candidates, matching.Candidate{
			ID:          job.JobID,
			Title:       job.JobTitle,
			Description: job.JobDescription,
			Source:      matching.SourceProviderA,
			URL:         job.JobApplyLink,
		})
	}

	return candidates, nil
}

func decodeJob(raw map[string]any, target *jobRow) error {
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

	return decoder.Decode(raw)
}
