// Package sheets implements the session log store over a Google
// spreadsheet: one row per record, columns {date, weekday, check-in,
// check-out, total hours, activity}, appended in insertion order.
package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/aminrezaei/worklog/internal/domain"
)

// readRange covers the six record columns on the first worksheet.
const readRange = "A:F"

// Store is a SessionLogStore backed by a single-operator worksheet. The
// sheet carries no user column, so the userID argument only tags the
// records read back.
type Store struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// NewStore authenticates with a service-account credentials file and binds
// to the given spreadsheet.
func NewStore(ctx context.Context, credentialsFile, spreadsheetID string) (*Store, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing service account credentials: %w", err)
	}
	svc, err := sheetsapi.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}
	return &Store{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (s *Store) Append(ctx context.Context, userID string, rec *domain.SessionRecord) error {
	vr := &sheetsapi.ValueRange{
		Values: [][]any{{
			rec.Date, rec.Weekday, rec.CheckIn, rec.CheckOut, rec.Duration, rec.Activity,
		}},
	}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, readRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("appending row to spreadsheet: %w", err)
	}
	return nil
}

func (s *Store) ReadAll(ctx context.Context, userID string) ([]*domain.SessionRecord, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("reading spreadsheet rows: %w", err)
	}

	var records []*domain.SessionRecord
	for i, row := range resp.Values {
		if i == 0 {
			continue // header row
		}
		if len(row) < 6 {
			continue
		}
		records = append(records, &domain.SessionRecord{
			UserID:   userID,
			Date:     cell(row, 0),
			Weekday:  cell(row, 1),
			CheckIn:  cell(row, 2),
			CheckOut: cell(row, 3),
			Duration: cell(row, 4),
			Activity: cell(row, 5),
		})
	}
	return records, nil
}

func cell(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return s
}
