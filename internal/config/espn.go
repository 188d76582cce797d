package config

// ESPNConfig controls the sports-data API used for standings and schedules.
type ESPNConfig struct {
	BaseURL string
	// UpcomingGames is how many not-yet-started games per team are scanned for opponents.
	UpcomingGames int
}

func loadESPN(fc fileConfig) ESPNConfig {
	upcoming := defaultUpcomingGames
	if fc.ESPN.UpcomingGames > 0 {
		upcoming = fc.ESPN.UpcomingGames
	}
	return ESPNConfig{
		BaseURL:       envOrDefault(envESPNBaseURL, firstNonEmpty(fc.ESPN.BaseURL, defaultESPNBaseURL)),
		UpcomingGames: intEnvOrDefault(envUpcoming, upcoming),
	}
}
