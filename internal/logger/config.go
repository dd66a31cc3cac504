package logger

import (
	"log/slog"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	Environment string // "dev", "staging", "prod"
	AddSource   bool
}

// NewConfig creates a config from explicit values
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// ProductionConfig returns production defaults
func ProductionConfig() Config {
	return NewConfig(LogLevelInfo, LogFormatJSON, DefaultServiceName, ProductionVersion, EnvironmentProduction, false)
}

// DevelopmentConfig returns development defaults
func DevelopmentConfig() Config {
	return NewConfig(LogLevelDebug, LogFormatText, DefaultServiceName, DefaultVersion, EnvironmentDev, true)
}

// DefaultConfig is the fallback when no config is provided
func DefaultConfig() Config {
	return NewConfig(LogLevelInfo, LogFormatText, DefaultServiceName, DefaultVersion, EnvironmentDev, false)
}

// LogLevel converts the string level to slog.Level, defaulting to info
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// BaseAttributes returns attributes attached to every record
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
