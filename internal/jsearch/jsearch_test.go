package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
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

	client := New("rapid-key", zap.NewNop())
	client.APIURL = server.URL

	return client
}

func TestFetchMapsProviderFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "rapid-key", r.Header.Get("x-rapidapi-key"))
		assert.Equal(t, "jsearch.p.rapidapi.com", r.Header.Get("x-rapidapi-host"))
		assert.Equal(t, "python react internship", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))

		w.Write([]byte(`{"data": [
			{"job_id": "abc", "job_title": "Python Intern", "job_description": "Remote", "job_apply_link": "https://jobs.example/abc"},
			{"job_description": "No title or id"}
		]}`))
	})

	candidates, err := client.Fetch(context.Background(), "python react")

	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, matching.Candidate{
		ID:          "abc",
		Title:       "Python Intern",
		Description: "Remote",
		Source:      matching.SourceProviderA,
		URL:         "https://jobs.example/abc",
	}, candidates[0])

	// Missing id and title fall back to defaults.
	assert.Equal(t, "j_1", candidates[1].ID)
	assert.Equal(t, "Untitled", candidates[1].Title)
}

func TestFetchCapsResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		jobs := make([]map[string]any, 15)
		for i := range jobs {
			jobs[i] = map[string]any{
				"job_id":    fmt.Sprintf("job-%d", i),
				"job_title": "Intern",
			}
		}
		json.NewEncoder(w).Encode(map[string]any{"data": jobs})
	})

	candidates, err := client.Fetch(context.Background(), "python")

	require.NoError(t, err)
	assert.Len(t, candidates, 10)
	assert.Equal(t, "job-0", candidates[0].ID)
}

func TestFetchDisabledWithoutKey(t *testing.T) {
	client := New("", zap.NewNop())

	_, err := client.Fetch(context.Background(), "python")
	require.ErrorIs(t, err, matching.ErrSourceDisabled)
}

func TestFetchBadStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Fetch(context.Background(), "python")

	require.Error(t, err)
	assert.NotErrorIs(t, err, matching.ErrSourceDisabled)
}

func TestFetchEmptyData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	})

	candidates, err := client.Fetch(context.Background(), "python")

	require.NoError(t, err)
	assert.Empty(t, candidates)
}
