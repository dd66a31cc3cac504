package bootstrap

import (
	"log/slog"

	"github.com/osse101/Cultivation_Go/internal/config"
	"github.com/osse101/Cultivation_Go/internal/temporal"
	"github.com/osse101/Cultivation_Go/internal/weather"
)

// InitializeTemporalEngine builds the engine and, when an API key is configured, its live weather client.
func InitializeTemporalEngine(cfg *config.Config) *temporal.Engine {
	// Leave the provider as a nil interface when unconfigured so the engine reports it as such
	var provider temporal.WeatherProvider
	if cfg.WeatherAPIKey != "" {
		provider = weather.NewClient(weather.Config{
			APIKey:    cfg.WeatherAPIKey,
			BaseURL:   cfg.WeatherBaseURL,
			Lang:      cfg.WeatherLang,
			Timeout:   cfg.WeatherTimeout,
			CacheTTL:  cfg.WeatherCacheTTL,
			CacheSize: cfg.WeatherCacheSize,
		}, nil)
		slog.Info(LogMsgWeatherConfigured, "base_url", cfg.WeatherBaseURL, "cache_ttl", cfg.WeatherCacheTTL)
	} else {
		slog.Warn(LogMsgWeatherUnconfigured)
	}

	return temporal.NewEngine(provider, temporal.Config{
		Location:       cfg.Location(),
		WeatherTimeout: cfg.WeatherTimeout,
		DefaultCity:    cfg.DefaultCity,
	})
}
