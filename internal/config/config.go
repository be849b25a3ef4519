package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all external settings, loaded once at process start.
type Config struct {
	// BotToken authorizes the Telegram front-end. Required for serve.
	BotToken string
	// SpreadsheetID and CredentialsFile select the Google Sheets store
	// when both are set; otherwise the local SQLite store is used.
	SpreadsheetID   string
	CredentialsFile string
	// DBPath is the SQLite database location.
	DBPath string
	// Timezone is the IANA zone used for all instant arithmetic.
	Timezone string
	// HourlyRate feeds the salary figures in monthly stats.
	HourlyRate int64
}

// Load reads configuration from a .env file (when present) and the
// environment. Missing optional values fall back to defaults.
func Load() (*Config, error) {
	_ = godotenv.Load() // a missing .env file is not an error

	cfg := &Config{
		BotToken:        os.Getenv("WORKLOG_BOT_TOKEN"),
		SpreadsheetID:   os.Getenv("WORKLOG_SPREADSHEET_ID"),
		CredentialsFile: os.Getenv("WORKLOG_CREDENTIALS_FILE"),
		DBPath:          os.Getenv("WORKLOG_DB"),
		Timezone:        os.Getenv("WORKLOG_TZ"),
		HourlyRate:      70000,
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".worklog", "worklog.db")
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Tehran"
	}
	if rate := os.Getenv("WORKLOG_HOURLY_RATE"); rate != "" {
		n, err := strconv.ParseInt(rate, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing WORKLOG_HOURLY_RATE: %w", err)
		}
		cfg.HourlyRate = n
	}

	return cfg, nil
}

// UseSheets reports whether the Google Sheets store is configured.
func (c *Config) UseSheets() bool {
	return c.SpreadsheetID != "" && c.CredentialsFile != ""
}
