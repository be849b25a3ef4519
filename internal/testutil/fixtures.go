package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/aminrezaei/worklog/internal/domain"
)

// RecordOption mutates a test session record.
type RecordOption func(*domain.SessionRecord)

func WithDate(date string) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Date = date
	}
}

func WithDuration(duration string) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Duration = duration
	}
}

func WithActivity(activity string) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Activity = activity
	}
}

func WithClocks(checkIn, checkOut string) RecordOption {
	return func(r *domain.SessionRecord) {
		r.CheckIn = checkIn
		r.CheckOut = checkOut
	}
}

// NewTestRecord builds a closed session record with sane defaults.
func NewTestRecord(userID string, opts ...RecordOption) *domain.SessionRecord {
	r := &domain.SessionRecord{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      "1403/02/05",
		Weekday:   "Wednesday",
		CheckIn:   "09:00:00 AM",
		CheckOut:  "05:30:00 PM",
		Duration:  "8:30",
		Activity:  "coding",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
