package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WORKLOG_BOT_TOKEN", "")
	t.Setenv("WORKLOG_SPREADSHEET_ID", "")
	t.Setenv("WORKLOG_CREDENTIALS_FILE", "")
	t.Setenv("WORKLOG_DB", "")
	t.Setenv("WORKLOG_TZ", "")
	t.Setenv("WORKLOG_HOURLY_RATE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Asia/Tehran", cfg.Timezone)
	assert.Equal(t, int64(70000), cfg.HourlyRate)
	assert.Equal(t, "worklog.db", filepath.Base(cfg.DBPath))
	assert.False(t, cfg.UseSheets())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WORKLOG_BOT_TOKEN", "token-123")
	t.Setenv("WORKLOG_SPREADSHEET_ID", "sheet-abc")
	t.Setenv("WORKLOG_CREDENTIALS_FILE", "/tmp/creds.json")
	t.Setenv("WORKLOG_DB", "/tmp/test.db")
	t.Setenv("WORKLOG_TZ", "Europe/Berlin")
	t.Setenv("WORKLOG_HOURLY_RATE", "120")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token-123", cfg.BotToken)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, int64(120), cfg.HourlyRate)
	assert.True(t, cfg.UseSheets())
}

func TestLoad_BadHourlyRate(t *testing.T) {
	t.Setenv("WORKLOG_HOURLY_RATE", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestUseSheets_RequiresBothSettings(t *testing.T) {
	cfg := &Config{SpreadsheetID: "sheet-abc"}
	assert.False(t, cfg.UseSheets())

	cfg.CredentialsFile = "/tmp/creds.json"
	assert.True(t, cfg.UseSheets())
}
