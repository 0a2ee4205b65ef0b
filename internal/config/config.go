package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config controls where a digest run reads from and writes to, and how many
// entries each section keeps. All paths are relative to the data root.
type Config struct {
	Snapshot    string `yaml:"snapshot"`
	Players     string `yaml:"players"`
	Out         string `yaml:"out"`
	MatchupCap  int    `yaml:"matchup_cap"`
	TrendingCap int    `yaml:"trending_cap"`
}

func Default() Config {
	return Config{
		Snapshot:    "latest.json",
		Players:     "players.json",
		Out:         "sms.txt",
		MatchupCap:  3,
		TrendingCap: 6,
	}
}

// Load parses a YAML config file, filling any unset field from the defaults.
func Load(fileName string) (Config, error) {
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", fileName, err)
	}
	def := Default()
	if cfg.Snapshot == "" {
		cfg.Snapshot = def.Snapshot
	}
	if cfg.Players == "" {
		cfg.Players = def.Players
	}
	if cfg.Out == "" {
		cfg.Out = def.Out
	}
	if cfg.MatchupCap <= 0 {
		cfg.MatchupCap = def.MatchupCap
	}
	if cfg.TrendingCap <= 0 {
		cfg.TrendingCap = def.TrendingCap
	}
	return cfg, nil
}
