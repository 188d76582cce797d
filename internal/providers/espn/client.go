package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/preston-bernstein/sports-snapshots/internal/domain/standings"
	"github.com/preston-bernstein/sports-snapshots/internal/providers"
)

// Config controls how the client reaches the sports-data API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches team profiles and schedules and maps them to standings models.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a sports-data client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchTeam retrieves a team profile; sport is the sport/league path (e.g. "hockey/nhl").
func (c *Client) FetchTeam(ctx context.Context, sport, teamID string) (standings.TeamProfile, error) {
	var payload teamEnvelope
	if err := c.get(ctx, fmt.Sprintf("%s/%s/teams/%s", c.baseURL, sport, teamID), &payload); err != nil {
		return standings.TeamProfile{}, err
	}
	profile := mapProfile(payload.Team)
	if profile.ID == "" {
		profile.ID = teamID
	}
	return profile, nil
}

// FetchSchedule retrieves a team's schedule in upstream order.
func (c *Client) FetchSchedule(ctx context.Context, sport, teamID string) ([]standings.ScheduledGame, error) {
	var payload scheduleResponse
	if err := c.get(ctx, fmt.Sprintf("%s/%s/teams/%s/schedule", c.baseURL, sport, teamID), &payload); err != nil {
		return nil, err
	}
	return mapSchedule(payload), nil
}

func (c *Client) get(ctx context.Context, endpoint string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode %s: %w", providerName, req.URL.Path, err)
	}
	return nil
}
