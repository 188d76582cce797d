package oddsapi

// Quota is the request budget reported by the odds API on every response.
type Quota struct {
	Remaining string
	Used      string
}
