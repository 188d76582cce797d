package oddsapi

import "time"

const (
	providerName = "oddsapi"

	defaultBaseURL     = "https://api.the-odds-api.com/v4"
	defaultRegions     = "us"
	defaultMarkets     = "h2h"
	defaultOddsFormat  = "american"
	defaultHTTPTimeout = 30 * time.Second

	headerRemaining = "x-requests-remaining"
	headerUsed      = "x-requests-used"

	maxErrorBody = 512
)
