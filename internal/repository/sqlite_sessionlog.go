package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aminrezaei/worklog/internal/db"
	"github.com/aminrezaei/worklog/internal/domain"
)

// SQLiteSessionLogRepo implements SessionLogStore using a SQLite database.
type SQLiteSessionLogRepo struct {
	db db.DBTX
}

// NewSQLiteSessionLogRepo creates a new SQLiteSessionLogRepo.
func NewSQLiteSessionLogRepo(db db.DBTX) *SQLiteSessionLogRepo {
	return &SQLiteSessionLogRepo{db: db}
}

func (r *SQLiteSessionLogRepo) Append(ctx context.Context, userID string, rec *domain.SessionRecord) error {
	query := `INSERT INTO session_records (id, user_id, civil_date, weekday, check_in, check_out, duration, activity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		userID,
		rec.Date,
		rec.Weekday,
		rec.CheckIn,
		rec.CheckOut,
		rec.Duration,
		rec.Activity,
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session record: %w", err)
	}
	return nil
}

func (r *SQLiteSessionLogRepo) ReadAll(ctx context.Context, userID string) ([]*domain.SessionRecord, error) {
	query := `SELECT id, user_id, civil_date, weekday, check_in, check_out, duration, activity, created_at
		FROM session_records WHERE user_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing session records: %w", err)
	}
	defer rows.Close()

	var records []*domain.SessionRecord
	for rows.Next() {
		var rec domain.SessionRecord
		var createdAtStr string
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.Weekday,
			&rec.CheckIn, &rec.CheckOut, &rec.Duration, &rec.Activity, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning session record: %w", err)
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session records: %w", err)
	}
	return records, nil
}
