package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Packs struct {
		Default string `yaml:"default"`
		TTL     string `yaml:"ttl"`
	} `yaml:"packs"`
	Game GameConfig `yaml:"game"`
}

// GameConfig mirrors the tunables of the scoring formula and the round
// lifecycle. Zero values mean "use the classic defaults".
type GameConfig struct {
	BasePoints     int     `yaml:"base_points"`
	TimeMultiplier float64 `yaml:"time_multiplier"`
	StreakBonus    int     `yaml:"streak_bonus"`
	QuestionTime   int     `yaml:"question_time"`
	QuestionLimit  int     `yaml:"question_limit"`
	// TimeFactor adds seconds of answer time per difficulty tier.
	TimeFactor int `yaml:"difficulty_time_factor"`
	// StartDelay is the pacing pause before the first question.
	StartDelay string `yaml:"start_delay"`
	// CloseUnanswered breaks the streak of players who let a question
	// pass without answering.
	CloseUnanswered bool `yaml:"close_unanswered"`
	// AdminMarkers are name substrings that grant moderator rights.
	AdminMarkers []string `yaml:"admin_markers"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty
// or malformed.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
