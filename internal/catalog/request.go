package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

const contentType = "application/json"

// getJSON makes a GET request to a PostgREST table and decodes the response
// body into target.
func (c *Client) getJSON(ctx context.Context, table string, q url.Values, target interface{}) error {
	endpoint := fmt.Sprintf("%s%s/%s", c.endpoint, restPath, table)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.key))
	req.Header.Set("Accept", contentType)
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	c.logger.Debug("make request", zap.String("url", req.URL.String()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return err
	}

	return nil
}
