package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML overlay read from CONFIG_FILE.
// Environment variables still win over anything set here.
type fileConfig struct {
	Provider    string         `yaml:"provider"`
	DataDir     string         `yaml:"data_dir"`
	Timezone    string         `yaml:"timezone"`
	HTTPTimeout *time.Duration `yaml:"http_timeout"`
	OddsAPI     struct {
		BaseURL    string   `yaml:"base_url"`
		APIKey     string   `yaml:"api_key"`
		Regions    string   `yaml:"regions"`
		Markets    string   `yaml:"markets"`
		OddsFormat string   `yaml:"odds_format"`
		Sports     []string `yaml:"sports"`
	} `yaml:"odds_api"`
	ESPN struct {
		BaseURL       string `yaml:"base_url"`
		UpcomingGames int    `yaml:"upcoming_games"`
	} `yaml:"espn"`
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}
