// Package adzuna is a client for the Adzuna job-search API, the second
// external listing provider.
package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/Sachin-ora/Interlink/internal/matching"
)

const (
	apiURLFormat   = "https://api.adzuna.com/v1/api/jobs/%s/search/1"
	defaultCountry = "in"
	maxResults     = 10
	requestTimeout = 10 * time.Second
	idPrefix       = "adz_"
	defaultTitle   = "Untitled"
)

type Client struct {
	appID      string
	appKey     string
	country    string
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
}

func New(appID, appKey, country string, logger *zap.Logger) *Client {
	if country == "" {
		country = defaultCountry
	}

	return &Client{
		appID:   appID,
		appKey:  appKey,
		country: country,
		logger:  logger,
		APIURL:  fmt.Sprintf(apiURLFormat, country),
		HTTPClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *Client) Name() string { return "adzuna" }

func (c *Client) Tag() matching.SourceTag { return matching.SourceProviderB }

type searchResponse struct {
	Results []map[string]any `json:"results"`
}

type jobRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	RedirectURL string `json:"redirect_url"`
}

// Fetch searches Adzuna and normalizes up to maxResults listings. IDs get
// the adz_ prefix so they cannot collide with other sources in logs or
// reports. Missing credentials disable the source.
func (c *Client) Fetch(ctx context.Context, query string) ([]matching.Candidate, error) {
	if c.appID == "" || c.appKey == "" {
		return nil, matching.ErrSourceDisabled
	}

	q := url.Values{}
	q.Set("app_id", c.appID)
	q.Set("app_key", c.appKey)
	q.Set("results_per_page", strconv.Itoa(maxResults))
	q.Set("what", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIURL, nil)
	if err != nil {
		return nil, err
	}
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

	jobs := response.Results
	if len(jobs) > maxResults {
		jobs = jobs[:maxResults]
	}

	candidates := make([]matching.Candidate, 0, len(jobs))
	for i, raw := range jobs {
		var job jobRow
		if err := decodeJob(raw, &job); err != nil {
			return nil, fmt.Errorf("decoding job: %w", err)
		}

		if job.ID == "" {
			job.ID = strconv.Itoa(i)
		}
		if job.Title == "" {
			job.Title = defaultTitle
		}

		candidates = append(candidates, matching.Candidate{
			ID:          idPrefix + job.ID,
			Title:       job.Title,
			Description: job.Description,
			Source:      matching.SourceProviderB,
			URL:         job.RedirectURL,
		})
	}

	return candidates, nil
}

func decodeJob(raw map[string]any, target *jobRow) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   target,
		TagName:  "json",
		// Adzuna returns numeric job ids.
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(raw)
}
