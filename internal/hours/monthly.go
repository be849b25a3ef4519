package hours

import (
	"time"

	"github.com/aminrezaei/worklog/internal/calendar"
	"github.com/aminrezaei/worklog/internal/domain"
)

// MonthlyTotal sums the durations of all records whose civil date falls in
// the given Jalali year and month. Rows with unparseable dates or durations
// are skipped; an empty selection yields zero. The total is recomputed from
// the full log on every call, which is the correctness reference for any
// cached variant.
func MonthlyTotal(records []*domain.SessionRecord, year, month int) time.Duration {
	var total time.Duration
	for _, rec := range records {
		y, m, _, err := calendar.ParseDate(rec.Date)
		if err != nil || y != year || m != month {
			continue
		}
		d, err := Parse(rec.Duration)
		if err != nil {
			continue
		}
		total += d
	}
	return total
}
