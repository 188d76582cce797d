package standings

import (
	"fmt"
	"strings"
)

// FormatRecord renders a record in the shape used for the given sport path:
// football (W-L-T), basketball (W-L, pct), everything else (W-L).
func FormatRecord(sport string, stats RecordStats) string {
	switch {
	case strings.Contains(sport, "football"):
		return fmt.Sprintf("(%d-%d-%d)", stats.Wins, stats.Losses, stats.Ties)
	case strings.Contains(sport, "basketball"):
		return fmt.Sprintf("(%d-%d, %.3f)", stats.Wins, stats.Losses, stats.WinPercent)
	default:
		return fmt.Sprintf("(%d-%d)", stats.Wins, stats.Losses)
	}
}

// NewOpponentStanding formats an opponent's profile into its stored entry.
// A non-empty standing summary is appended to the record as a ranking suffix.
func NewOpponentStanding(sport string, opponent Competitor, profile TeamProfile) OpponentStanding {
	out := OpponentStanding{
		Sport:        sport,
		ID:           opponent.ID,
		Name:         firstNonEmpty(profile.Name, opponent.Name),
		Abbreviation: firstNonEmpty(profile.Abbreviation, opponent.Abbreviation),
		Record:       FormatRecord(sport, profile.Stats),
	}
	if profile.StandingSummary != nil && *profile.StandingSummary != "" {
		out.Standing = *profile.StandingSummary
		out.Record += " " + out.Standing
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
