package bootstrap

import (
	"log/slog"

	"github.com/osse101/Cultivation_Go/internal/config"
	"github.com/osse101/Cultivation_Go/internal/logger"
)

// SetupLogger installs the process logger from configuration and logs the startup banner.
// Source locations are attached in dev only.
func SetupLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDev(),
	))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"store", cfg.StoreBackend)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"timezone", cfg.Timezone)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigurationWarning, "detail", w)
	}
}
