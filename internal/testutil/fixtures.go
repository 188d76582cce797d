package testutil

import "fmt"

// OddsGameJSON returns a minimal odds-provider game object for the sport.
func OddsGameJSON(id, sport string) string {
	return fmt.Sprintf(`{"id":%q,"sport_key":%q,"commence_time":"2024-01-02T01:00:00Z","home_team":"Home","away_team":"Away","bookmakers":[{"key":"draftkings","markets":[{"key":"h2h","outcomes":[{"name":"Home","price":-120},{"name":"Away","price":100}]}]}]}`, id, sport)
}

// TeamProfileJSON returns a sports-data team payload with an overall record and optional summary.
func TeamProfileJSON(id, name, abbrev string, wins, losses, ties int, winPercent float64, summary string) string {
	summaryField := ""
	if summary != "" {
		summaryField = fmt.Sprintf(`,"standingSummary":%q`, summary)
	}
	return fmt.Sprintf(`{"team":{"id":%q,"displayName":%q,"abbreviation":%q,"record":{"items":[{"description":"Overall Record","type":"total","summary":"%d-%d","stats":[{"name":"wins","value":%d},{"name":"losses","value":%d},{"name":"ties","value":%d},{"name":"winPercent","value":%g}]}]}%s}}`,
		id, name, abbrev, wins, losses, wins, losses, ties, winPercent, summaryField)
}

// ScheduleEventJSON returns one schedule event between two competitor ids.
func ScheduleEventJSON(eventID, date, state, homeID, awayID string) string {
	return fmt.Sprintf(`{"id":%q,"date":%q,"competitions":[{"status":{"type":{"state":%q}},"competitors":[{"id":%q,"homeAway":"home","team":{"id":%q,"displayName":"Team %s","abbreviation":"T%s"}},{"id":%q,"homeAway":"away","team":{"id":%q,"displayName":"Team %s","abbreviation":"T%s"}}]}]}`,
		eventID, date, state, homeID, homeID, homeID, homeID, awayID, awayID, awayID, awayID)
}
