package config

import (
	"os"
	"path/filepath"

	"easeinvo/internal/logger"
	"easeinvo/pkg/models"
)

type Config struct {
	// Data directory holding the invoice history, draft and theme
	DataDir string

	// Defaults applied to fresh drafts
	Currency    string
	AccentColor string
	Template    string

	// Export directory for generated PDF files
	ExportDir string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		DataDir:       getEnv("EASEINVO_DATA_DIR", defaultDataDir()),
		Currency:      getEnv("EASEINVO_CURRENCY", "$"),
		AccentColor:   getEnv("EASEINVO_ACCENT_COLOR", "#000000"),
		Template:      getEnv("EASEINVO_TEMPLATE", string(models.TemplateModern)),
		ExportDir:     getEnv("EASEINVO_EXPORT_DIR", "."),
		LogLevel:      getEnv("LOG_LEVEL", "warn"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}

	return config, nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

// defaultDataDir resolves the per-user data directory, ~/.easeinvo. When no
// home directory can be determined the current directory is used so the tool
// still works in containers.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".easeinvo"
	}
	return filepath.Join(home, ".easeinvo")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
