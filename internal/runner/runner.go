package runner

import (
	"context"
	"log/slog"
	"time"

	appodds "github.com/preston-bernstein/sports-snapshots/internal/app/odds"
	appstandings "github.com/preston-bernstein/sports-snapshots/internal/app/standings"
	"github.com/preston-bernstein/sports-snapshots/internal/config"
	"github.com/preston-bernstein/sports-snapshots/internal/logging"
	"github.com/preston-bernstein/sports-snapshots/internal/metrics"
	"github.com/preston-bernstein/sports-snapshots/internal/snapshots"
	"github.com/preston-bernstein/sports-snapshots/internal/timeutil"
)

// flushTimeout remains a var for tests to override.
var flushTimeout = 10 * time.Second

// Workflow is one fetch-and-write pass.
type Workflow interface {
	Run(ctx context.Context) error
}

// Runner wires providers, services and the snapshot writer for a single invocation.
type Runner struct {
	logger      *slog.Logger
	metrics     *metrics.Recorder
	odds        Workflow
	standings   Workflow
	quota       func() string
	providers   []string
	metricsStop func(context.Context) error
}

// New builds a Runner from configuration, including telemetry and upstream clients.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) *Runner {
	recorder, stop := buildMetrics(ctx, cfg, logger)
	set := newProviderFactory(logger, recorder).build(cfg)

	loc := timeutil.LoadLocation(cfg.Timezone)
	if loc == nil {
		logging.Warn(logger, "invalid timezone, using UTC", "timezone", cfg.Timezone)
	}

	writer := snapshots.NewWriter(cfg.DataDir, recorder)
	oddsSvc := appodds.NewService(set.odds, writer, appodds.Config{
		Sports:   cfg.OddsAPI.Sports,
		Location: loc,
		Logger:   logger,
		Metrics:  recorder,
	})
	standingsSvc := appstandings.NewService(set.standings, writer, appstandings.Config{
		UpcomingGames: cfg.ESPN.UpcomingGames,
		Location:      loc,
		Logger:        logger,
		Metrics:       recorder,
	})

	r := newRunnerWithDeps(logger, recorder, oddsSvc, standingsSvc)
	r.metricsStop = stop
	r.providers = set.names
	if set.quota != nil {
		r.quota = func() string {
			q := set.quota()
			return q.Remaining
		}
	}
	return r
}

// newRunnerWithDeps is used for testing to inject custom workflows.
func newRunnerWithDeps(logger *slog.Logger, recorder *metrics.Recorder, odds, standings Workflow) *Runner {
	return &Runner{
		logger:    logger,
		metrics:   recorder,
		odds:      odds,
		standings: standings,
	}
}

// Run executes the workflows selected by mode, odds before standings. The first
// workflow error stops the run.
func (r *Runner) Run(ctx context.Context, mode Mode) error {
	start := time.Now()
	logging.Info(r.logger, "run starting", logging.FieldMode, string(mode))

	if mode.includesOdds() && r.odds != nil {
		if err := r.odds.Run(ctx); err != nil {
			logging.Error(r.logger, "odds workflow failed", err)
			return err
		}
	}
	if mode.includesStandings() && r.standings != nil {
		if err := r.standings.Run(ctx); err != nil {
			logging.Error(r.logger, "standings workflow failed", err)
			return err
		}
	}

	args := []any{
		logging.FieldMode, string(mode),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	}
	if r.quota != nil {
		if remaining := r.quota(); remaining != "" {
			args = append(args, "requests_remaining", remaining)
		}
	}
	logging.Info(r.logger, "run complete", args...)
	r.logProviderSummary()
	return nil
}

func (r *Runner) logProviderSummary() {
	for _, name := range r.providers {
		calls := r.metrics.ProviderCalls(name)
		if calls == 0 {
			continue
		}
		logging.Info(r.logger, "provider summary",
			logging.FieldProvider, name,
			"calls", calls,
			"errors", r.metrics.ProviderErrors(name),
			"rate_limit_hits", r.metrics.RateLimitHits(name),
		)
	}
}

// Close flushes telemetry. Safe to call when metrics are disabled.
func (r *Runner) Close() {
	if r == nil || r.metricsStop == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := r.metricsStop(ctx); err != nil {
		logging.Warn(r.logger, "metrics flush failed", "error", err)
	}
}
