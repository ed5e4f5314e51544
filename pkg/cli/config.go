package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for pixelforge.
type Config struct {
	HistoryCapacity int
	FontPath        string
	JPEGQuality     int
	LogLevel        slog.Level
	PresetsFile     string
	PreviewDebug    bool
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is read first when present; variables already set in
// the environment win.
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		HistoryCapacity: 20,
		JPEGQuality:     92,
		LogLevel:        slog.LevelInfo,
	}

	if v := os.Getenv("PIXELFORGE_HISTORY_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PIXELFORGE_HISTORY_CAPACITY: %w", err)
		}
		cfg.HistoryCapacity = n
	}

	cfg.FontPath = os.Getenv("PIXELFORGE_FONT_PATH")
	cfg.PresetsFile = os.Getenv("PIXELFORGE_PRESETS_FILE")

	if v := os.Getenv("PIXELFORGE_JPEG_QUALITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PIXELFORGE_JPEG_QUALITY: %w", err)
		}
		cfg.JPEGQuality = n
	}

	if v := os.Getenv("PIXELFORGE_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return nil, fmt.Errorf("invalid PIXELFORGE_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if v := os.Getenv("PREVIEW_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PREVIEW_DEBUG: %w", err)
		}
		cfg.PreviewDebug = b
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HistoryCapacity < 1 {
		return fmt.Errorf("history capacity must be positive")
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be between 1 and 100")
	}
	if c.FontPath != "" {
		if _, err := os.Stat(c.FontPath); err != nil {
			return fmt.Errorf("font path: %w", err)
		}
	}
	return nil
}

// NewLogger builds the text logger used by the command line tools.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
