package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// ErrBadInstant is returned when an instant cannot be converted to a civil date.
var ErrBadInstant = errors.New("instant is not convertible to a civil date")

// Civil is a timezone-resolved instant expressed in the Jalali civil calendar.
type Civil struct {
	Date    string // Jalali date, YYYY/MM/DD
	Year    int
	Month   int
	Day     int
	Weekday string // English weekday name of the underlying Gregorian instant
	Clock   string // 12-hour clock, hh:mm:ss AM/PM
}

// Calendar converts instants into Jalali civil dates in a fixed timezone.
type Calendar struct {
	loc *time.Location
}

// New creates a Calendar for the named IANA timezone.
func New(tz string) (*Calendar, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", tz, err)
	}
	return &Calendar{loc: loc}, nil
}

// Convert resolves an instant in the configured timezone and returns its
// Jalali civil components. The zero instant is rejected.
func (c *Calendar) Convert(t time.Time) (Civil, error) {
	if t.IsZero() {
		return Civil{}, ErrBadInstant
	}
	local := t.In(c.loc)
	pt := ptime.New(local)
	return Civil{
		Date:    fmt.Sprintf("%04d/%02d/%02d", pt.Year(), int(pt.Month()), pt.Day()),
		Year:    pt.Year(),
		Month:   int(pt.Month()),
		Day:     pt.Day(),
		Weekday: local.Weekday().String(),
		Clock:   local.Format("03:04:05 PM"),
	}, nil
}

// ParseDate splits a YYYY/MM/DD Jalali date string into its components.
func ParseDate(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("parsing civil date %q: want YYYY/MM/DD", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(strings.TrimSpace(p))
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("parsing civil date %q: %w", s, convErr)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

// MonthDays returns the number of days in the given Jalali month.
// Months 1-6 have 31 days, 7-11 have 30, and Esfand has 29 (30 in leap years).
func MonthDays(year, month int) int {
	switch {
	case month >= 1 && month <= 6:
		return 31
	case month >= 7 && month <= 11:
		return 30
	case month == 12:
		if ptime.Date(year, 1, 1, 0, 0, 0, 0, ptime.Iran()).IsLeap() {
			return 30
		}
		return 29
	}
	return 0
}

// IsBusinessDay reports whether the given Jalali date is a working day.
// Friday is the weekly day off.
func IsBusinessDay(year, month, day int) bool {
	g := ptime.Date(year, ptime.Month(month), day, 12, 0, 0, 0, ptime.Iran()).Time()
	return g.Weekday() != time.Friday
}

// MonthName returns the English transliteration of a Jalali month name.
func MonthName(month int) string {
	names := [...]string{
		"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
		"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
	}
	if month < 1 || month > 12 {
		return ""
	}
	return names[month-1]
}
