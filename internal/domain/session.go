package domain

import "time"

// Session is one check-in-to-check-out work interval for a single user.
// It lives in memory only while open; once closed it is converted to a
// SessionRecord and discarded.
type Session struct {
	UserID     string
	CheckInAt  time.Time
	CheckOutAt *time.Time
	Activity   string
	Status     SessionStatus
}

// SessionRecord is the persisted, immutable form of a closed session.
// Date is a Jalali civil date (YYYY/MM/DD); CheckIn, CheckOut are 12-hour
// clock strings; Duration is H:MM.
type SessionRecord struct {
	ID        string
	UserID    string
	Date      string
	Weekday   string
	CheckIn   string
	CheckOut  string
	Duration  string
	Activity  string
	CreatedAt time.Time
}
