package runner

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/sports-snapshots/internal/config"
	"github.com/preston-bernstein/sports-snapshots/internal/logging"
	"github.com/preston-bernstein/sports-snapshots/internal/metrics"
	"github.com/preston-bernstein/sports-snapshots/internal/providers"
	"github.com/preston-bernstein/sports-snapshots/internal/providers/espn"
	"github.com/preston-bernstein/sports-snapshots/internal/providers/fixture"
	"github.com/preston-bernstein/sports-snapshots/internal/providers/oddsapi"
)

const (
	oddsProviderName      = "oddsapi"
	standingsProviderName = "espn"
)

// providerSet is the instrumented upstream access for one run.
type providerSet struct {
	odds      providers.OddsProvider
	standings providers.StandingsProvider
	quota     func() oddsapi.Quota
	names     []string
}

// providerFactory assembles upstream clients with shared instrumentation.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

func (f providerFactory) build(cfg config.Config) providerSet {
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderFixture:
		fx := fixture.New()
		return providerSet{
			odds:      providers.NewInstrumented(config.ProviderFixture, fx, nil, f.metrics, f.logger),
			standings: providers.NewInstrumented(config.ProviderFixture, nil, fx, f.metrics, f.logger),
			names:     []string{config.ProviderFixture},
		}
	case config.ProviderLive, "":
		return f.live(cfg)
	default:
		logging.Warn(f.logger, "unknown provider, falling back to live", slog.String(logging.FieldProvider, cfg.Provider))
		return f.live(cfg)
	}
}

func (f providerFactory) live(cfg config.Config) providerSet {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	if cfg.OddsAPI.APIKey == "" {
		logging.Warn(f.logger, "odds api key not set; requests will be rejected upstream",
			slog.String(logging.FieldProvider, oddsProviderName),
		)
	}

	oddsClient := oddsapi.NewClient(oddsapi.Config{
		BaseURL:    cfg.OddsAPI.BaseURL,
		APIKey:     cfg.OddsAPI.APIKey,
		Regions:    cfg.OddsAPI.Regions,
		Markets:    cfg.OddsAPI.Markets,
		OddsFormat: cfg.OddsAPI.OddsFormat,
		HTTPClient: httpClient,
		Logger:     f.logger,
	})
	espnClient := espn.NewClient(espn.Config{
		BaseURL:    cfg.ESPN.BaseURL,
		HTTPClient: httpClient,
	})

	return providerSet{
		odds:      providers.NewInstrumented(oddsProviderName, oddsClient, nil, f.metrics, f.logger),
		standings: providers.NewInstrumented(standingsProviderName, nil, espnClient, f.metrics, f.logger),
		quota:     oddsClient.Quota,
		names:     []string{oddsProviderName, standingsProviderName},
	}
}
