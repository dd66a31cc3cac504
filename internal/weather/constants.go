package weather

import "time"

const (
	DefaultBaseURL     = "https://api.openweathermap.org/data/2.5"
	CurrentWeatherPath = "/weather"
	DefaultLang        = "en"
	DefaultTimeout     = 5 * time.Second
	DefaultCacheTTL    = 10 * time.Minute
	DefaultCacheSize   = 256

	maxResponseBytes = 1 << 20
)
