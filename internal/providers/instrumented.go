package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/sports-snapshots/internal/domain/odds"
	"github.com/preston-bernstein/sports-snapshots/internal/domain/standings"
	"github.com/preston-bernstein/sports-snapshots/internal/logging"
	"github.com/preston-bernstein/sports-snapshots/internal/metrics"
)

// Instrumented wraps upstream providers and records every call: attempts, latency,
// errors and rate limit hits. It never retries.
type Instrumented struct {
	name      string
	odds      OddsProvider
	standings StandingsProvider
	metrics   *metrics.Recorder
	logger    *slog.Logger
	now       func() time.Time
}

// NewInstrumented wraps either or both providers. name labels metrics and debug logs.
func NewInstrumented(name string, oddsProvider OddsProvider, standingsProvider StandingsProvider, recorder *metrics.Recorder, logger *slog.Logger) *Instrumented {
	if name == "" {
		name = "provider"
	}
	return &Instrumented{
		name:      name,
		odds:      oddsProvider,
		standings: standingsProvider,
		metrics:   recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// FetchOdds delegates to the wrapped odds provider.
func (p *Instrumented) FetchOdds(ctx context.Context, sport string) ([]odds.Game, error) {
	if p == nil || p.odds == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	games, err := p.odds.FetchOdds(ctx, sport)
	p.record(ctx, start, err, "odds", slog.String(logging.FieldSport, sport))
	return games, err
}

// FetchTeam delegates to the wrapped standings provider.
func (p *Instrumented) FetchTeam(ctx context.Context, sport, teamID string) (standings.TeamProfile, error) {
	if p == nil || p.standings == nil {
		return standings.TeamProfile{}, ErrProviderUnavailable
	}
	start := p.now()
	profile, err := p.standings.FetchTeam(ctx, sport, teamID)
	p.record(ctx, start, err, "team", slog.String(logging.FieldSport, sport), slog.String(logging.FieldTeam, teamID))
	return profile, err
}

// FetchSchedule delegates to the wrapped standings provider.
func (p *Instrumented) FetchSchedule(ctx context.Context, sport, teamID string) ([]standings.ScheduledGame, error) {
	if p == nil || p.standings == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	games, err := p.standings.FetchSchedule(ctx, sport, teamID)
	p.record(ctx, start, err, "schedule", slog.String(logging.FieldSport, sport), slog.String(logging.FieldTeam, teamID))
	return games, err
}

func (p *Instrumented) record(ctx context.Context, start time.Time, err error, call string, args ...any) {
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.name, elapsed, err)
	if _, ok := AsRateLimitError(err); ok {
		p.metrics.RecordRateLimit(p.name)
	}
	logCall(ctx, p.logger, p.name, call, elapsed, err, args...)
}
