package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Redis    RedisConfig    `yaml:"redis"`
	Cache    CacheConfig    `yaml:"cache"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type HTTPConfig struct {
	Address        string   `yaml:"address"`
	DocsDir        string   `yaml:"docs_dir"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type UpstreamConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CacheConfig struct {
	VenuesTTLSeconds int `yaml:"venues_ttl_seconds"`
	SessionTTLHours  int `yaml:"session_ttl_hours"`
}

type WorkerConfig struct {
	WarmIntervalMinutes int `yaml:"warm_interval_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = "https://v2.api.noroff.dev"
	}
	if cfg.Upstream.TimeoutSeconds == 0 {
		cfg.Upstream.TimeoutSeconds = 15
	}
	if cfg.Cache.VenuesTTLSeconds == 0 {
		cfg.Cache.VenuesTTLSeconds = 60
	}
	if cfg.Cache.SessionTTLHours == 0 {
		cfg.Cache.SessionTTLHours = 24
	}
	if cfg.Worker.WarmIntervalMinutes == 0 {
		cfg.Worker.WarmIntervalMinutes = 5
	}

	return &cfg, nil
}
