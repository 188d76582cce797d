package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/preston-bernstein/sports-snapshots/internal/domain/odds"
	"github.com/preston-bernstein/sports-snapshots/internal/domain/standings"
)

// Provider returns static odds, profiles and schedules useful for offline runs and tests.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchOdds returns two deterministic head-to-head games for the sport.
func (p *Provider) FetchOdds(ctx context.Context, sport string) ([]odds.Game, error) {
	_ = ctx

	start := p.now().UTC().Truncate(time.Hour)
	games := make([]odds.Game, 0, 2)
	for i := 1; i <= 2; i++ {
		raw, err := json.Marshal(map[string]any{
			"id":            fmt.Sprintf("fixture-%s-%d", sport, i),
			"sport_key":     sport,
			"commence_time": start.Add(time.Duration(i*2) * time.Hour).Format(time.RFC3339),
			"home_team":     fmt.Sprintf("Home %d", i),
			"away_team":     fmt.Sprintf("Away %d", i),
			"bookmakers": []map[string]any{{
				"key":   "fixturebook",
				"title": "Fixture Book",
				"markets": []map[string]any{{
					"key": "h2h",
					"outcomes": []map[string]any{
						{"name": fmt.Sprintf("Home %d", i), "price": -110 - 10*i},
						{"name": fmt.Sprintf("Away %d", i), "price": 100 + 10*i},
					},
				}},
			}},
		})
		if err != nil {
			return nil, err
		}
		games = append(games, raw)
	}
	return games, nil
}

// FetchTeam returns a profile whose record is derived from the team id.
func (p *Provider) FetchTeam(ctx context.Context, sport, teamID string) (standings.TeamProfile, error) {
	_ = ctx

	n, _ := strconv.Atoi(teamID)
	wins, losses := 10+n%7, 5+n%3
	stats := standings.RecordStats{
		Wins:       wins,
		Losses:     losses,
		WinPercent: float64(wins) / float64(wins+losses),
	}
	record, err := json.Marshal(map[string]any{
		"description": "Overall Record",
		"type":        "total",
		"summary":     fmt.Sprintf("%d-%d", wins, losses),
		"stats": []map[string]any{
			{"name": "wins", "value": stats.Wins},
			{"name": "losses", "value": stats.Losses},
			{"name": "ties", "value": 0},
			{"name": "winPercent", "value": stats.WinPercent},
		},
	})
	if err != nil {
		return standings.TeamProfile{}, err
	}
	summary := fmt.Sprintf("%d in Fixture Division", 1+n%5)

	return standings.TeamProfile{
		ID:              teamID,
		Name:            "Fixture Team " + teamID,
		Abbreviation:    "F" + teamID,
		Record:          record,
		StandingSummary: &summary,
		Stats:           stats,
	}, nil
}

// FetchSchedule returns one finished game followed by three upcoming ones.
func (p *Provider) FetchSchedule(ctx context.Context, sport, teamID string) ([]standings.ScheduledGame, error) {
	_ = ctx
	_ = sport

	start := p.now().UTC().Truncate(24 * time.Hour)
	n, _ := strconv.Atoi(teamID)
	games := make([]standings.ScheduledGame, 0, 4)
	for i := 0; i < 4; i++ {
		state := standings.StatePre
		if i == 0 {
			state = "post"
		}
		opponent := strconv.Itoa(100 + (n+i)%3)
		games = append(games, standings.ScheduledGame{
			ID:    fmt.Sprintf("fixture-%s-%d", teamID, i),
			Date:  start.AddDate(0, 0, i-1).Format(time.RFC3339),
			State: state,
			Competitors: []standings.Competitor{
				{ID: teamID, Name: "Fixture Team " + teamID, HomeAway: "home"},
				{ID: opponent, Name: "Fixture Team " + opponent, HomeAway: "away"},
			},
		})
	}
	return games, nil
}
