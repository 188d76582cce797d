package espn

import (
	"encoding/json"
	"math"

	"github.com/preston-bernstein/sports-snapshots/internal/domain/standings"
)

func mapProfile(t teamResponse) standings.TeamProfile {
	profile := standings.TeamProfile{
		ID:              t.ID,
		Name:            t.DisplayName,
		Abbreviation:    t.Abbreviation,
		StandingSummary: t.StandingSummary,
	}
	if len(t.Record.Items) == 0 {
		return profile
	}
	first := t.Record.Items[0]
	if len(first) == 0 || string(first) == "null" {
		return profile
	}
	profile.Record = first
	profile.Stats = parseStats(first)
	return profile
}

// parseStats reads wins/losses/ties/winPercent from a record item. Unknown shapes yield zero stats.
func parseStats(raw json.RawMessage) standings.RecordStats {
	var item recordItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return standings.RecordStats{}
	}
	var stats standings.RecordStats
	for _, s := range item.Stats {
		switch s.Name {
		case "wins":
			stats.Wins = int(math.Round(s.Value))
		case "losses":
			stats.Losses = int(math.Round(s.Value))
		case "ties":
			stats.Ties = int(math.Round(s.Value))
		case "winPercent":
			stats.WinPercent = s.Value
		}
	}
	return stats
}

func mapSchedule(resp scheduleResponse) []standings.ScheduledGame {
	games := make([]standings.ScheduledGame, 0, len(resp.Events))
	for _, e := range resp.Events {
		games = append(games, mapEvent(e))
	}
	return games
}

func mapEvent(e eventResponse) standings.ScheduledGame {
	game := standings.ScheduledGame{ID: e.ID, Date: e.Date}
	if len(e.Competitions) == 0 {
		return game
	}
	comp := e.Competitions[0]
	game.State = comp.Status.Type.State
	for _, c := range comp.Competitors {
		id := c.ID
		if id == "" {
			id = c.Team.ID
		}
		game.Competitors = append(game.Competitors, standings.Competitor{
			ID:           id,
			Name:         c.Team.DisplayName,
			Abbreviation: c.Team.Abbreviation,
			HomeAway:     c.HomeAway,
		})
	}
	return game
}
