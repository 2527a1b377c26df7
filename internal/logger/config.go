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
	Environment string // "dev", "test", "staging", "prod"
	AddSource   bool   // Include source file/line in logs
}

// ForEnvironment returns the logging profile of an environment.
// prod and staging log JSON at info for collectors; test stays quiet;
// anything else is a developer machine and gets debug text with source lines.
func ForEnvironment(environment, version string) Config {
	cfg := Config{
		ServiceName: DefaultServiceName,
		Version:     version,
		Environment: environment,
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}

	switch strings.ToLower(environment) {
	case EnvironmentProduction, EnvironmentStaging:
		cfg.Level, cfg.Format = LogLevelInfo, LogFormatJSON
	case EnvironmentTest:
		cfg.Level, cfg.Format = LogLevelWarn, LogFormatText
	default:
		cfg.Level, cfg.Format, cfg.AddSource = LogLevelDebug, LogFormatText, true
	}
	return cfg
}

// WithOverrides replaces level and format with explicitly configured values; empty keeps the profile's
func (c Config) WithOverrides(level, format string) Config {
	if level != "" {
		c.Level = level
	}
	if format != "" {
		c.Format = format
	}
	return c
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
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

// BaseAttributes returns common attributes to add to all logs
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
