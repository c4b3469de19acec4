package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/skanadev/match-notifier-service/internal/models"
)

// liveStatuses is the status filter for the primary matches query
const liveStatuses = "LIVE,IN_PLAY,PAUSED,FINISHED"

// FootballClient fetches match snapshots from the football-data.org v4 API
type FootballClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// FootballClientConfig holds football API client configuration
type FootballClientConfig struct {
	BaseURL string        // e.g., "https://api.football-data.org/v4"
	Token   string        // X-Auth-Token header value
	Timeout time.Duration // per-request timeout
}

// matchesResponse is the wire shape of the /matches endpoint
type matchesResponse struct {
	Matches []models.Match `json:"matches"`
}

// NewFootballClient creates a new football-data API client
func NewFootballClient(config FootballClientConfig, logger zerolog.Logger) *FootballClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &FootballClient{
		baseURL:    config.BaseURL,
		token:      config.Token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With().Str("component", "football_client").Logger(),
	}
}

// FetchMatches returns the current snapshot of live and finished matches.
// The primary query filters by status; on a non-200 response it falls back
// to today's date range, mirroring the provider's quirks around the status
// filter on free-tier tokens.
func (c *FootballClient) FetchMatches(ctx context.Context) ([]models.Match, error) {
	matches, err := c.fetch(ctx, fmt.Sprintf("%s/matches?status=%s", c.baseURL, liveStatuses))
	if err == nil {
		return matches, nil
	}

	c.logger.Warn().Err(err).Msg("status query failed, falling back to date range")

	today := time.Now().Format("2006-01-02")
	matches, fallbackErr := c.fetch(ctx, fmt.Sprintf("%s/matches?dateFrom=%s&dateTo=%s", c.baseURL, today, today))
	if fallbackErr != nil {
		return nil, fmt.Errorf("fetch matches: %w", fallbackErr)
	}

	return matches, nil
}

// fetch performs one GET against a matches URL and decodes the response
func (c *FootballClient) fetch(ctx context.Context, url string) ([]models.Match, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Auth-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload matchesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug().
		Int("count", len(payload.Matches)).
		Msg("fetched match snapshot")

	return payload.Matches, nil
}
