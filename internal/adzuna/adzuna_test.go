package adzuna

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sachin-ora/Interlink/internal/matching"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New("app-id", "app-key", "in", zap.NewNop())
	client.APIURL = server.URL

	return client
}

func TestFetchMapsProviderFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "app-id", r.URL.Query().Get("app_id"))
		assert.Equal(t, "app-key", r.URL.Query().Get("app_key"))
		assert.Equal(t, "10", r.URL.Query().Get("results_per_page"))
		assert.Equal(t, "python", r.URL.Query().Get("what"))

		w.Write([]byte(`{"results": [
			{"id": 12345, "title": "Python Intern", "description": "Bangalore", "redirect_url": "https://adzuna.example/12345"},
			{"description": "no id or title"}
		]}`))
	})

	candidates, err := client.Fetch(context.Background(), "python")

	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, matching.Candidate{
		ID:          "adz_12345",
		Title:       "Python Intern",
		Description: "Bangalore",
		Source:      matching.SourceProviderB,
		URL:         "https://adzuna.example/12345",
	}, candidates[0])

	assert.Equal(t, "adz_1", candidates[1].ID)
	assert.Equal(t, "Untitled", candidates[1].Title)
}

func TestFetchDisabledWithoutCredentials(t *testing.T) {
	for _, client := range []*Client{
		New("", "app-key", "", zap.NewNop()),
		New("app-id", "", "", zap.NewNop()),
	} {
		_, err := client.Fetch(context.Background(), "python")
		require.ErrorIs(t, err, matching.ErrSourceDisabled)
	}
}

func TestFetchBadStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.Fetch(context.Background(), "python")
	require.Error(t, err)
}

func TestDefaultCountryInURL(t *testing.T) {
	client := New("id", "key", "", zap.NewNop())
	assert.Equal(t, "https://api.adzuna.com/v1/api/jobs/in/search/1", client.APIURL)

	client = New("id", "key", "gb", zap.NewNop())
	assert.Equal(t, "https://api.adzuna.com/v1/api/jobs/gb/search/1", client.APIURL)
}
