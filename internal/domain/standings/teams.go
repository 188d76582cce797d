package standings

import "strconv"

// TeamDescriptor identifies a tracked team on the sports-data API.
type TeamDescriptor struct {
	Name         string `json:"name"`
	Sport        string `json:"sport"`
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
}

// IDString returns the descriptor id as used in upstream paths and competitor ids.
func (t TeamDescriptor) IDString() string {
	return strconv.Itoa(t.ID)
}

var trackedTeams = [...]TeamDescriptor{
	{Name: "Colorado Avalanche", Sport: "hockey/nhl", ID: 17, Abbreviation: "COL"},
	{Name: "Denver Nuggets", Sport: "basketball/nba", ID: 7, Abbreviation: "DEN"},
	{Name: "Denver Broncos", Sport: "football/nfl", ID: 7, Abbreviation: "DEN"},
	{Name: "Colorado Buffaloes", Sport: "football/college-football", ID: 38, Abbreviation: "COLO"},
}

// Teams returns the tracked teams in their configured order. Callers get a copy.
func Teams() []TeamDescriptor {
	out := make([]TeamDescriptor, len(trackedTeams))
	copy(out, trackedTeams[:])
	return out
}
