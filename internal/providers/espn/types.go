package espn

import "encoding/json"

type teamEnvelope struct {
	Team teamResponse `json:"team"`
}

type teamResponse struct {
	ID              string         `json:"id"`
	DisplayName     string         `json:"displayName"`
	Abbreviation    string         `json:"abbreviation"`
	StandingSummary *string        `json:"standingSummary"`
	Record          recordResponse `json:"record"`
}

type recordResponse struct {
	Items []json.RawMessage `json:"items"`
}

type recordItem struct {
	Summary string     `json:"summary"`
	Stats   []statItem `json:"stats"`
}

type statItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type scheduleResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	Status      statusResponse       `json:"status"`
	Competitors []competitorResponse `json:"competitors"`
}

type statusResponse struct {
	Type struct {
		State string `json:"state"`
	} `json:"type"`
}

type competitorResponse struct {
	ID       string `json:"id"`
	HomeAway string `json:"homeAway"`
	Team     struct {
		ID           string `json:"id"`
		DisplayName  string `json:"displayName"`
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
}
