package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/RecipeBox_Go/internal/config"
	"github.com/osse101/RecipeBox_Go/internal/logger"
)

// SetupLogger initializes the application logger. Output always goes to stdout;
// when cfg.LogDir is set it is also written to a timestamped session file there,
// keeping only the most recent sessions.
// Returns the log file handle (nil without LogDir; caller must close) and any error encountered.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	logCfg := logger.ForEnvironment(cfg.Environment, cfg.Version).WithOverrides(cfg.LogLevel, cfg.LogFormat)

	if cfg.LogDir == "" {
		logger.InitLogger(logCfg)
		logStartup(cfg, logCfg)
		return nil, nil
	}

	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir)

	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, logFile))
	logStartup(cfg, logCfg)
	return logFile, nil
}

func logStartup(cfg *config.Config, logCfg logger.Config) {
	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "format", logCfg.Format)
	slog.Info(LogMsgStartingRecipeBox,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"storage_backend", cfg.StorageBackend,
		"storage_path", cfg.StoragePath,
		"cache_size", cfg.CacheSize,
		"cors_origins", cfg.CORSAllowedOrigins)
}

// cleanupLogs removes old session logs so that, with the one about to be
// created, at most LogFileRetentionCount+1 remain.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	// Timestamped names sort chronologically
	sort.Strings(logFiles)

	for len(logFiles) > LogFileRetentionCount {
		if err := os.Remove(filepath.Join(logDir, logFiles[0])); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[0], "error", err)
		}
		logFiles = logFiles[1:]
	}
}
