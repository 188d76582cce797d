package standings

import "encoding/json"

// RecordStats are the numeric parts of a team's overall record.
type RecordStats struct {
	Wins       int
	Losses     int
	Ties       int
	WinPercent float64
}

// TeamProfile is the provider-normalized result of a team lookup.
// Record and StandingSummary are optional upstream fields and stay nil when absent.
type TeamProfile struct {
	ID              string
	Name            string
	Abbreviation    string
	Record          json.RawMessage
	StandingSummary *string
	Stats           RecordStats
}

// Competitor is one side of a scheduled game.
type Competitor struct {
	ID           string
	Name         string
	Abbreviation string
	HomeAway     string
}

// ScheduledGame is one event from a team schedule.
type ScheduledGame struct {
	ID          string
	Date        string
	State       string
	Competitors []Competitor
}

// StatePre marks a game that has not started yet.
const StatePre = "pre"

// IsUpcoming reports whether the game has not started yet.
func (g ScheduledGame) IsUpcoming() bool {
	return g.State == StatePre
}

// Opponent returns the competitor that is not teamID.
func (g ScheduledGame) Opponent(teamID string) (Competitor, bool) {
	for _, c := range g.Competitors {
		if c.ID != "" && c.ID != teamID {
			return c, true
		}
	}
	return Competitor{}, false
}

// TeamStanding is one tracked team's entry in standings.json.
type TeamStanding struct {
	TeamDescriptor
	Record          json.RawMessage `json:"record"`
	StandingSummary *string         `json:"standingSummary"`
}

// NewTeamStanding combines a descriptor with its fetched profile.
func NewTeamStanding(team TeamDescriptor, profile TeamProfile) TeamStanding {
	return TeamStanding{
		TeamDescriptor:  team,
		Record:          profile.Record,
		StandingSummary: profile.StandingSummary,
	}
}

// OpponentStanding is a deduplicated upcoming opponent with its formatted record.
type OpponentStanding struct {
	Sport        string `json:"sport"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Record       string `json:"record"`
	Standing     string `json:"standing,omitempty"`
}

// OpponentKey is the dedup key for an opponent within one run.
func OpponentKey(sport, id string) string {
	return sport + ":" + id
}

// Key returns the dedup key of the opponent.
func (o OpponentStanding) Key() string {
	return OpponentKey(o.Sport, o.ID)
}

// Snapshot is the payload written to standings.json.
type Snapshot struct {
	LastUpdated   string             `json:"lastUpdated"`
	LastUpdatedMT string             `json:"lastUpdatedMT"`
	Teams         []TeamStanding     `json:"teams"`
	Opponents     []OpponentStanding `json:"opponents"`
}

// NewSnapshot builds a standings snapshot; teams and opponents are never null.
func NewSnapshot(lastUpdated, lastUpdatedLocal string, teams []TeamStanding, opponents []OpponentStanding) Snapshot {
	if teams == nil {
		teams = []TeamStanding{}
	}
	if opponents == nil {
		opponents = []OpponentStanding{}
	}
	return Snapshot{
		LastUpdated:   lastUpdated,
		LastUpdatedMT: lastUpdatedLocal,
		Teams:         teams,
		Opponents:     opponents,
	}
}
