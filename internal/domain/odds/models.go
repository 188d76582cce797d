package odds

import "encoding/json"

// Game is one upstream game entry passed through unchanged (teams, bookmakers, markets, prices).
type Game = json.RawMessage

// SportOdds groups the games returned for one sport key.
type SportOdds struct {
	Sport string `json:"sport"`
	Games []Game `json:"games"`
}

// NewSportOdds builds a SportOdds whose games marshal as an empty list rather than null.
func NewSportOdds(sport string, games []Game) SportOdds {
	if games == nil {
		games = []Game{}
	}
	return SportOdds{Sport: sport, Games: games}
}

// Snapshot is the payload written to odds.json.
type Snapshot struct {
	LastUpdated   string      `json:"lastUpdated"`
	LastUpdatedMT string      `json:"lastUpdatedMT"`
	Sports        []SportOdds `json:"sports"`
}

// NewSnapshot builds an odds snapshot; sports is never null.
func NewSnapshot(lastUpdated, lastUpdatedLocal string, sports []SportOdds) Snapshot {
	if sports == nil {
		sports = []SportOdds{}
	}
	return Snapshot{
		LastUpdated:   lastUpdated,
		LastUpdatedMT: lastUpdatedLocal,
		Sports:        sports,
	}
}
