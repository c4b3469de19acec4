package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates a client pointed at a test server
func newTestClient(serverURL string) *FootballClient {
	return NewFootballClient(FootballClientConfig{
		BaseURL: serverURL,
		Token:   "test-token",
		Timeout: 2 * time.Second,
	}, zerolog.Nop())
}

// TestFetchMatches_Success tests fetching and decoding a match snapshot
func TestFetchMatches_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("X-Auth-Token"))
		assert.Equal(t, "LIVE,IN_PLAY,PAUSED,FINISHED", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"matches": [
				{
					"id": 419432,
					"status": "IN_PLAY",
					"homeTeam": {"name": "Alpha FC"},
					"awayTeam": {"name": "Beta United"},
					"score": {
						"fullTime": {"home": 1, "away": 0},
						"halfTime": {"home": 1, "away": 0}
					}
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	matches, err := client.FetchMatches(context.Background())

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "419432", matches[0].Key())
	assert.Equal(t, "IN_PLAY", matches[0].Status)
	assert.Equal(t, "Alpha FC", matches[0].HomeName())
	assert.Equal(t, 1, matches[0].HomeScore())
	assert.Equal(t, 0, matches[0].AwayScore())
}

// TestFetchMatches_AbsentScoresDefaultToZero tests decoding a pre-kickoff
// match where the score blocks are null
func TestFetchMatches_AbsentScoresDefaultToZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"matches": [
				{
					"id": 1,
					"status": "LIVE",
					"homeTeam": {},
					"awayTeam": {},
					"score": {"fullTime": {"home": null, "away": null}, "halfTime": {"home": null, "away": null}}
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	matches, err := client.FetchMatches(context.Background())

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].HomeScore())
	assert.Equal(t, 0, matches[0].AwayScore())
	assert.Equal(t, "Local", matches[0].HomeName())
	assert.Equal(t, "Visitante", matches[0].AwayName())
}

// TestFetchMatches_FallbackToDateRange tests the date-range fallback when
// the status query is rejected
func TestFetchMatches_FallbackToDateRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("status") != "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		assert.NotEmpty(t, r.URL.Query().Get("dateFrom"))
		assert.Equal(t, r.URL.Query().Get("dateFrom"), r.URL.Query().Get("dateTo"))
		w.Write([]byte(`{"matches": [{"id": 2, "status": "FINISHED"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	matches, err := client.FetchMatches(context.Background())

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "2", matches[0].Key())
}

// TestFetchMatches_BothQueriesFail tests that an error is returned when
// the fallback also fails
func TestFetchMatches_BothQueriesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	matches, err := client.FetchMatches(context.Background())

	assert.Error(t, err)
	assert.Nil(t, matches)
}

// TestFetchMatches_MalformedBody tests that invalid JSON surfaces as an error
func TestFetchMatches_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchMatches(context.Background())

	assert.Error(t, err)
}

// TestFetchMatches_ContextCanceled tests that a canceled context aborts the fetch
func TestFetchMatches_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"matches": []}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(server.URL)
	_, err := client.FetchMatches(ctx)

	assert.Error(t, err)
}
