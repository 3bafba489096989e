package config

import "time"

type RoutingConfig struct {
	Provider   string            `yaml:"provider"`
	OpenRoute  *OpenRouteConfig  `yaml:"openroute"`
	GoogleMaps *GoogleMapsConfig `yaml:"google_maps"`
	Timeout    time.Duration     `yaml:"timeout"`
}

type OpenRouteConfig struct {
	APIKey string `yaml:"api_key"`
}

type GoogleMapsConfig struct {
	APIKey string `yaml:"api_key"`
}

func loadRoutingConfig() *RoutingConfig {
	return &RoutingConfig{
		Provider: getEnv("ROUTING_PROVIDER", "openroute"),
		OpenRoute: &OpenRouteConfig{
			APIKey: getEnv("OPENROUTE_API_KEY", ""),
		},
		GoogleMaps: &GoogleMapsConfig{
			APIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		},
		Timeout: getEnvAsDuration("ROUTING_TIMEOUT", 10*time.Second),
	}
}
