package config

// OddsAPIConfig controls how we talk to the odds-comparison API.
type OddsAPIConfig struct {
	BaseURL    string
	APIKey     string
	Regions    string
	Markets    string
	OddsFormat string
	Sports     []string
}

func loadOddsAPI(fc fileConfig) OddsAPIConfig {
	sports := fc.OddsAPI.Sports
	if len(sports) == 0 {
		sports = defaultSports
	}
	return OddsAPIConfig{
		BaseURL:    envOrDefault(envOddsBaseURL, firstNonEmpty(fc.OddsAPI.BaseURL, defaultOddsBaseURL)),
		APIKey:     envOrDefault(envOddsAPIKey, fc.OddsAPI.APIKey),
		Regions:    envOrDefault(envOddsRegions, firstNonEmpty(fc.OddsAPI.Regions, defaultOddsRegions)),
		Markets:    envOrDefault(envOddsMarkets, firstNonEmpty(fc.OddsAPI.Markets, defaultOddsMarkets)),
		OddsFormat: envOrDefault(envOddsFormat, firstNonEmpty(fc.OddsAPI.OddsFormat, defaultOddsFormat)),
		Sports:     append([]string(nil), sports...),
	}
}
