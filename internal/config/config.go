// Package config holds the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds the application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Scan     ScanConfig     `mapstructure:"scan"`
	Vision   VisionConfig   `mapstructure:"vision"`
	Export   ExportConfig   `mapstructure:"export"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DatabaseConfig holds configuration for the catalog database.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ScanConfig holds configuration for image scanning.
type ScanConfig struct {
	Timeout       time.Duration `mapstructure:"timeout"`
	ThumbnailSide int           `mapstructure:"thumbnail_side"`
	JPEGQuality   int           `mapstructure:"jpeg_quality"`
}

// VisionConfig holds configuration for the optional vision-model backend.
type VisionConfig struct {
	Backend string `mapstructure:"backend"`
	URL     string `mapstructure:"url"`
	Model   string `mapstructure:"model"`
}

// ExportConfig holds configuration for catalog exports.
type ExportConfig struct {
	Dir           string `mapstructure:"dir"`
	DefaultFormat string `mapstructure:"default_format"`
	SyncDir       string `mapstructure:"sync_dir"`
}

// LoggingConfig holds configuration for structured logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Vision backends.
const (
	BackendHeuristic = "heuristic"
	BackendOllama    = "ollama"
)

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(defaultDataDir(), "closet.db"),
		},
		Scan: ScanConfig{
			Timeout:       15 * time.Second,
			ThumbnailSide: 256,
			JPEGQuality:   85,
		},
		Vision: VisionConfig{
			Backend: BackendHeuristic,
			URL:     "http://localhost:11434",
			Model:   "llava",
		},
		Export: ExportConfig{
			Dir:           filepath.Join(defaultDataDir(), "exports"),
			DefaultFormat: "csv",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path cannot be empty")
	}

	if c.Scan.Timeout <= 0 {
		return fmt.Errorf("scan.timeout must be positive")
	}

	if c.Scan.ThumbnailSide < 16 {
		return fmt.Errorf("scan.thumbnail_side must be at least 16")
	}

	if c.Scan.JPEGQuality < 1 || c.Scan.JPEGQuality > 100 {
		return fmt.Errorf("scan.jpeg_quality must be between 1 and 100")
	}

	switch c.Vision.Backend {
	case BackendHeuristic, BackendOllama:
	default:
		return fmt.Errorf("vision.backend must be %q or %q", BackendHeuristic, BackendOllama)
	}

	if c.Vision.Backend == BackendOllama {
		if c.Vision.URL == "" {
			return fmt.Errorf("vision.url cannot be empty with the ollama backend")
		}
		if c.Vision.Model == "" {
			return fmt.Errorf("vision.model cannot be empty with the ollama backend")
		}
	}

	switch c.Export.DefaultFormat {
	case "csv", "json":
	default:
		return fmt.Errorf("export.default_format must be csv or json")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error")
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json")
	}

	return nil
}

// GetConfigPath returns the default configuration file path.
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./closet.yaml"
	}
	return filepath.Join(home, ".config", "closet", "closet.yaml")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./closet-data"
	}
	return filepath.Join(home, ".local", "share", "closet")
}
