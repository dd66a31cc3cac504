package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"PORT", "ENVIRONMENT", "LOG_LEVEL", "LOG_FORMAT", "SERVICE_NAME", "VERSION", "STORE_BACKEND",
	"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
	"DB_MAX_CONNS", "DB_MAX_CONN_IDLE", "DB_MAX_CONN_LIFETIME",
	"JWT_SECRET", "JWT_ISSUER",
	"WEATHER_API_KEY", "WEATHER_BASE_URL", "WEATHER_LANG", "WEATHER_TIMEOUT",
	"WEATHER_CACHE_TTL", "WEATHER_CACHE_SIZE", "CULTIVATION_DEFAULT_CITY",
	"CULTIVATION_TIMEZONE", "DAILY_RESET_ENABLED",
}

// clearEnvVars unsets every config key for the duration of the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("JWT_SECRET", "dev-secret")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, EnvironmentDev, cfg.Environment)
		assert.Equal(t, StoreBackendPostgres, cfg.StoreBackend)
		assert.Equal(t, "postgres", cfg.DBUser)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdle)
		assert.Equal(t, 3*time.Second, cfg.WeatherTimeout)
		assert.Equal(t, 10*time.Minute, cfg.WeatherCacheTTL)
		assert.Equal(t, "Beijing", cfg.DefaultCity)
		assert.Equal(t, "Asia/Shanghai", cfg.Timezone)
		assert.True(t, cfg.DailyResetEnabled)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("STORE_BACKEND", "memory")
		t.Setenv("DB_USER", "customuser")
		t.Setenv("DB_PASSWORD", "custompass")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_NAME", "customdb")
		t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
		t.Setenv("WEATHER_API_KEY", "owm-key")
		t.Setenv("WEATHER_TIMEOUT", "750ms")
		t.Setenv("CULTIVATION_TIMEZONE", "UTC")
		t.Setenv("DAILY_RESET_ENABLED", "false")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, EnvironmentProduction, cfg.Environment)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, StoreBackendMemory, cfg.StoreBackend)
		assert.Equal(t, "customuser", cfg.DBUser)
		assert.Equal(t, "custompass", cfg.DBPassword)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, "customdb", cfg.DBName)
		assert.Equal(t, "owm-key", cfg.WeatherAPIKey)
		assert.Equal(t, 750*time.Millisecond, cfg.WeatherTimeout)
		assert.Equal(t, time.UTC, cfg.Location())
		assert.False(t, cfg.DailyResetEnabled)
		assert.False(t, cfg.UsesPostgres())
	})

	t.Run("returns error when JWT_SECRET is missing", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "JWTSecret")
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("JWT_SECRET", "dev-secret")
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:             8080,
			Environment:      EnvironmentDev,
			LogLevel:         "info",
			LogFormat:        "text",
			StoreBackend:     StoreBackendPostgres,
			DBUser:           "postgres",
			DBHost:           "localhost",
			DBPort:           "5432",
			DBName:           "cultivation",
			DBMaxConns:       10,
			JWTSecret:        "short",
			WeatherBaseURL:   "https://api.openweathermap.org/data/2.5",
			WeatherTimeout:   time.Second,
			WeatherCacheSize: 16,
			Timezone:         "Asia/Shanghai",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid dev config", mutate: func(c *Config) {}},
		{name: "unknown backend", mutate: func(c *Config) { c.StoreBackend = "sqlite" }, wantErr: "StoreBackend"},
		{name: "unknown log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "LogFormat"},
		{name: "bad timezone", mutate: func(c *Config) { c.Timezone = "Mars/Olympus" }, wantErr: "Timezone"},
		{name: "postgres requires host", mutate: func(c *Config) { c.DBHost = "" }, wantErr: "DBHost"},
		{name: "memory backend ignores db fields", mutate: func(c *Config) {
			c.StoreBackend = StoreBackendMemory
			c.DBHost = ""
			c.DBName = ""
		}},
		{name: "short secret outside dev", mutate: func(c *Config) { c.Environment = EnvironmentProduction }, wantErr: "JWT_SECRET"},
		{name: "zero weather timeout", mutate: func(c *Config) { c.WeatherTimeout = 0 }, wantErr: "WeatherTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "1", DBName: "n"}
	assert.Equal(t, "postgres://u:p@h:1/n?sslmode=disable", cfg.GetDBConnString())
}

func TestWarnings(t *testing.T) {
	cfg := &Config{Environment: EnvironmentDev, StoreBackend: StoreBackendMemory, DailyResetEnabled: true}
	assert.Len(t, cfg.Warnings(), 1)

	cfg.WeatherAPIKey = "key"
	assert.Empty(t, cfg.Warnings())

	cfg.DailyResetEnabled = false
	assert.Len(t, cfg.Warnings(), 1)
}

func TestLocationFallsBackToUTC(t *testing.T) {
	cfg := &Config{Timezone: "Nowhere/Invalid"}
	assert.Equal(t, time.UTC, cfg.Location())
}
