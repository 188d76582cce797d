package providers

import (
	"context"

	"github.com/preston-bernstein/sports-snapshots/internal/domain/odds"
	"github.com/preston-bernstein/sports-snapshots/internal/domain/standings"
)

// OddsProvider fetches the current games with odds for one sport key.
type OddsProvider interface {
	FetchOdds(ctx context.Context, sport string) ([]odds.Game, error)
}

// TeamProvider fetches a team profile. sport is the sport/league path segment (e.g. "basketball/nba").
type TeamProvider interface {
	FetchTeam(ctx context.Context, sport, teamID string) (standings.TeamProfile, error)
}

// ScheduleProvider fetches a team's schedule in upstream order.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, sport, teamID string) ([]standings.ScheduledGame, error)
}

// StandingsProvider combines the team and schedule lookups used by the standings workflow.
type StandingsProvider interface {
	TeamProvider
	ScheduleProvider
}
