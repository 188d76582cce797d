package espn

import "time"

const (
	providerName = "espn"

	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultHTTPTimeout = 30 * time.Second

	maxErrorBody = 512
)
