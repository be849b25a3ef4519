package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/aminrezaei/worklog/internal/calendar"
	"github.com/aminrezaei/worklog/internal/cli"
	"github.com/aminrezaei/worklog/internal/config"
	"github.com/aminrezaei/worklog/internal/db"
	"github.com/aminrezaei/worklog/internal/repository"
	"github.com/aminrezaei/worklog/internal/sheets"
	"github.com/aminrezaei/worklog/internal/tracker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger()

	cal, err := calendar.New(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("configuring calendar: %w", err)
	}

	// The spreadsheet store is for hosted deployments; the SQLite store
	// is the local default.
	var store repository.SessionLogStore
	if cfg.UseSheets() {
		store, err = sheets.NewStore(context.Background(), cfg.CredentialsFile, cfg.SpreadsheetID)
		if err != nil {
			return fmt.Errorf("connecting to spreadsheet: %w", err)
		}
		logger.Info().Str("spreadsheet_id", cfg.SpreadsheetID).Msg("using sheets store")
	} else {
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		store = repository.NewSQLiteSessionLogRepo(database)
	}

	trk := tracker.New(store, cal, cfg.HourlyRate, tracker.NewLogObserver(logger))

	app := &cli.App{
		Tracker: trk,
		Config:  cfg,
		Log:     logger,
	}

	return cli.NewRootCmd(app).Execute()
}

func newLogger() zerolog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
