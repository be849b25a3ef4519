package hours

import (
	"time"

	"github.com/aminrezaei/worklog/internal/calendar"
	"github.com/aminrezaei/worklog/internal/domain"
)

// Stats is the derived monthly summary: total worked time plus salary
// figures based on a fixed hourly rate. Business days exclude Fridays.
type Stats struct {
	Year  int
	Month int

	Total        string // H:MM
	TotalMinutes int
	WorkedDays   int

	// CurrentSalary is worked hours so far times the hourly rate.
	CurrentSalary int64
	// ExpectedSalary assumes 8 hours on every business day elapsed so far.
	ExpectedSalary int64
	// ProjectedSalary extrapolates the per-worked-day average over the
	// remaining business days of the month. Zero when nothing was worked.
	ProjectedSalary int64
}

// Monthly computes Stats for the Jalali month containing (year, month, day),
// where day is today's day-of-month, from the full record log.
func Monthly(records []*domain.SessionRecord, year, month, day int, hourlyRate int64) Stats {
	totalMinutes := 0
	workedDays := make(map[int]bool)
	for _, rec := range records {
		y, m, d, err := calendar.ParseDate(rec.Date)
		if err != nil || y != year || m != month {
			continue
		}
		dur, err := Parse(rec.Duration)
		if err != nil {
			continue
		}
		totalMinutes += int(dur / time.Minute)
		workedDays[d] = true
	}

	totalHours := float64(totalMinutes) / 60.0

	businessSoFar := 0
	for d := 1; d <= day; d++ {
		if calendar.IsBusinessDay(year, month, d) {
			businessSoFar++
		}
	}

	var projected int64
	if len(workedDays) > 0 {
		avgPerDay := totalHours / float64(len(workedDays))
		businessInMonth := 0
		for d := 1; d <= calendar.MonthDays(year, month); d++ {
			if calendar.IsBusinessDay(year, month, d) {
				businessInMonth++
			}
		}
		remaining := businessInMonth - businessSoFar
		projected = int64((totalHours + avgPerDay*float64(remaining)) * float64(hourlyRate))
	}

	return Stats{
		Year:            year,
		Month:           month,
		Total:           Format(time.Duration(totalMinutes) * time.Minute),
		TotalMinutes:    totalMinutes,
		WorkedDays:      len(workedDays),
		CurrentSalary:   int64(totalHours * float64(hourlyRate)),
		ExpectedSalary:  int64(businessSoFar) * 8 * hourlyRate,
		ProjectedSalary: projected,
	}
}
