package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port         int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	Environment  string `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev staging production"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=json text"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"cultivation"`
	Version      string `env:"VERSION" envDefault:"dev"`
	StoreBackend string `env:"STORE_BACKEND" envDefault:"postgres" validate:"oneof=postgres memory"`

	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	DBUser            string        `env:"DB_USER" envDefault:"postgres" validate:"required_if=StoreBackend postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost" validate:"required_if=StoreBackend postgres"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432" validate:"required_if=StoreBackend postgres"`
	DBName            string        `env:"DB_NAME" envDefault:"cultivation" validate:"required_if=StoreBackend postgres"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"20" validate:"min=1"`
	DBMaxConnIdle     time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	JWTSecret string `env:"JWT_SECRET" validate:"required"`
	JWTIssuer string `env:"JWT_ISSUER" envDefault:"cultivation"`

	WeatherAPIKey    string        `env:"WEATHER_API_KEY"`
	WeatherBaseURL   string        `env:"WEATHER_BASE_URL" envDefault:"https://api.openweathermap.org/data/2.5" validate:"url"`
	WeatherLang      string        `env:"WEATHER_LANG" envDefault:"en"`
	WeatherTimeout   time.Duration `env:"WEATHER_TIMEOUT" envDefault:"3s" validate:"gt=0"`
	WeatherCacheTTL  time.Duration `env:"WEATHER_CACHE_TTL" envDefault:"10m"`
	WeatherCacheSize int           `env:"WEATHER_CACHE_SIZE" envDefault:"256" validate:"min=1"`
	DefaultCity      string        `env:"CULTIVATION_DEFAULT_CITY" envDefault:"Beijing"`

	Timezone          string `env:"CULTIVATION_TIMEZONE" envDefault:"Asia/Shanghai" validate:"timezone"`
	DailyResetEnabled bool   `env:"DAILY_RESET_ENABLED" envDefault:"true"`
}

// Load reads the optional .env file, parses the environment and validates the result
func Load() (*Config, error) {
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DefaultEnvFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// Location resolves the configured calendar time zone
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsDev reports whether the service runs in the dev environment
func (c *Config) IsDev() bool {
	return c.Environment == EnvironmentDev
}

// UsesPostgres reports whether the Postgres store backend is selected
func (c *Config) UsesPostgres() bool {
	return c.StoreBackend == StoreBackendPostgres
}
