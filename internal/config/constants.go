package config

import "time"

const (
	envConfigFile   = "CONFIG_FILE"
	envProvider     = "PROVIDER"
	envDataDir      = "DATA_DIR"
	envTimezone     = "SNAPSHOT_TIMEZONE"
	envHTTPTimeout  = "HTTP_TIMEOUT"
	envOddsBaseURL  = "ODDS_API_BASE_URL"
	envOddsAPIKey   = "ODDS_API_KEY"
	envOddsRegions  = "ODDS_REGIONS"
	envOddsMarkets  = "ODDS_MARKETS"
	envOddsFormat   = "ODDS_FORMAT"
	envESPNBaseURL  = "ESPN_BASE_URL"
	envUpcoming     = "UPCOMING_GAMES"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsFile  = "METRICS_TEXTFILE"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// ProviderLive talks to the real upstream APIs.
	ProviderLive = "live"
	// ProviderFixture serves deterministic offline data.
	ProviderFixture = "fixture"

	defaultProvider    = ProviderLive
	defaultDataDir     = "data"
	defaultTimezone    = "America/Denver"
	defaultHTTPTimeout = 30 * Duration(time.Second)

	defaultOddsBaseURL = "https://api.the-odds-api.com/v4"
	defaultOddsRegions = "us"
	defaultOddsMarkets = "h2h"
	defaultOddsFormat  = "american"

	defaultESPNBaseURL   = "https://site.api.espn.com/apis/site/v2/sports"
	defaultUpcomingGames = 3

	defaultServiceName = "sports-snapshots"
)

// defaultSports is the ordered list of odds sport keys fetched each run.
var defaultSports = []string{
	"icehockey_nhl",
	"basketball_nba",
	"americanfootball_nfl",
	"americanfootball_ncaaf",
}
