package standings

import (
	"context"
	"sort"
	"time"

	domainstandings "github.com/preston-bernstein/sports-snapshots/internal/domain/standings"
	"github.com/preston-bernstein/sports-snapshots/internal/logging"
)

// ESPN event dates usually omit seconds.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// FetchOpponents walks each tracked team's schedule in order and collects the opponents
// of its next upcoming games. Each (sport, opponent) pair is looked up at most once per call.
func (s *Service) FetchOpponents(ctx context.Context) []domainstandings.OpponentStanding {
	seen := make(map[string]struct{})
	out := make([]domainstandings.OpponentStanding, 0)

	for _, team := range s.teams {
		games, err := s.provider.FetchSchedule(ctx, team.Sport, team.IDString())
		if err != nil {
			s.logTeamError("schedule fetch failed", team, err)
			continue
		}

		for _, game := range nextGames(games, s.upcoming) {
			opponent, ok := game.Opponent(team.IDString())
			if !ok {
				continue
			}
			key := domainstandings.OpponentKey(team.Sport, opponent.ID)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			profile, err := s.provider.FetchTeam(ctx, team.Sport, opponent.ID)
			if err != nil {
				logging.Debug(s.logger, "opponent lookup failed",
					logging.FieldSport, team.Sport,
					logging.FieldOpponent, opponent.ID,
					"error", err,
				)
				continue
			}
			out = append(out, domainstandings.NewOpponentStanding(team.Sport, opponent, profile))
		}
	}
	return out
}

// nextGames returns up to limit games that have not started, earliest first.
func nextGames(games []domainstandings.ScheduledGame, limit int) []domainstandings.ScheduledGame {
	upcoming := make([]domainstandings.ScheduledGame, 0, len(games))
	for _, g := range games {
		if g.IsUpcoming() {
			upcoming = append(upcoming, g)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return eventBefore(upcoming[i].Date, upcoming[j].Date)
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

func eventBefore(a, b string) bool {
	ta, okA := parseEventDate(a)
	tb, okB := parseEventDate(b)
	if okA && okB {
		return ta.Before(tb)
	}
	return a < b
}

func parseEventDate(value string) (time.Time, bool) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
