package config

import "os"

// Config holds runtime configuration for a fetch run.
type Config struct {
	Provider    string
	DataDir     string
	Timezone    string
	HTTPTimeout Duration
	OddsAPI     OddsAPIConfig
	ESPN        ESPNConfig
	Metrics     MetricsConfig
}

// Load reads configuration from defaults, an optional YAML file named by CONFIG_FILE,
// and environment variables, in increasing order of precedence.
func Load() (Config, error) {
	fc, err := loadFile(os.Getenv(envConfigFile))
	if err != nil {
		return Config{}, err
	}

	timeout := defaultHTTPTimeout
	if fc.HTTPTimeout != nil && *fc.HTTPTimeout >= 0 {
		timeout = *fc.HTTPTimeout
	}

	return Config{
		Provider:    envOrDefault(envProvider, firstNonEmpty(fc.Provider, defaultProvider)),
		DataDir:     envOrDefault(envDataDir, firstNonEmpty(fc.DataDir, defaultDataDir)),
		Timezone:    envOrDefault(envTimezone, firstNonEmpty(fc.Timezone, defaultTimezone)),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, timeout),
		OddsAPI:     loadOddsAPI(fc),
		ESPN:        loadESPN(fc),
		Metrics:     loadMetrics(),
	}, nil
}
