package runner

import "strings"

// Mode selects which workflows a run executes.
type Mode string

const (
	ModeOdds      Mode = "odds"
	ModeStandings Mode = "standings"
	ModeAll       Mode = "all"
)

// ParseMode maps the CLI argument to a Mode. Anything other than odds or standings runs both.
func ParseMode(arg string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(arg))) {
	case ModeOdds:
		return ModeOdds
	case ModeStandings:
		return ModeStandings
	default:
		return ModeAll
	}
}

func (m Mode) includesOdds() bool {
	return m == ModeOdds || m == ModeAll
}

func (m Mode) includesStandings() bool {
	return m == ModeStandings || m == ModeAll
}
