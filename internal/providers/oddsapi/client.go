package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/preston-bernstein/sports-snapshots/internal/domain/odds"
	"github.com/preston-bernstein/sports-snapshots/internal/logging"
	"github.com/preston-bernstein/sports-snapshots/internal/providers"
)

// Config controls how the odds client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	Regions    string
	Markets    string
	OddsFormat string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches current odds per sport key. Games are returned as raw JSON.
type Client struct {
	baseURL    string
	apiKey     string
	regions    string
	markets    string
	oddsFormat string
	httpClient httpDoer
	logger     *slog.Logger

	mu    sync.Mutex
	quota Quota
}

// NewClient constructs an odds client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		regions:    orDefault(cfg.Regions, defaultRegions),
		markets:    orDefault(cfg.Markets, defaultMarkets),
		oddsFormat: orDefault(cfg.OddsFormat, defaultOddsFormat),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

// FetchOdds retrieves the upcoming and live games with odds for one sport key.
func (c *Client) FetchOdds(ctx context.Context, sport string) ([]odds.Game, error) {
	req, err := c.buildRequest(ctx, sport)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", providerName, err)
	}
	defer resp.Body.Close()

	c.trackQuota(resp.Header)

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Remaining:  resp.Header.Get(headerRemaining),
			Message:    "odds api quota exhausted",
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var games []odds.Game
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("%s: decode %s odds: %w", providerName, sport, err)
	}
	if games == nil {
		games = []odds.Game{}
	}
	return games, nil
}

// Quota returns the request budget reported by the most recent response.
func (c *Client) Quota() Quota {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quota
}

func (c *Client) buildRequest(ctx context.Context, sport string) (*http.Request, error) {
	endpoint := fmt.Sprintf("%s/sports/%s/odds/", c.baseURL, url.PathEscape(sport))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("apiKey", c.apiKey)
	q.Set("regions", c.regions)
	q.Set("markets", c.markets)
	q.Set("oddsFormat", c.oddsFormat)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (c *Client) trackQuota(h http.Header) {
	remaining, used := h.Get(headerRemaining), h.Get(headerUsed)
	if remaining == "" && used == "" {
		return
	}
	c.mu.Lock()
	c.quota = Quota{Remaining: remaining, Used: used}
	c.mu.Unlock()
	logging.Info(c.logger, "odds api quota",
		slog.String(logging.FieldProvider, providerName),
		slog.String("remaining", remaining),
		slog.String("used", used),
	)
}
