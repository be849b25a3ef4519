// Package hours holds the pure duration and aggregation arithmetic for
// work sessions: elapsed time between check-in and check-out, H:MM
// formatting, and monthly totals over persisted session records.
package hours

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Between returns the wall-clock duration between check-in and check-out,
// truncated to whole minutes. A negative raw difference means the pair was
// taken from same-day clock readings and the session crossed midnight, so
// exactly 24 hours are added. Only a single overnight wrap is corrected:
// a session left open for 24 hours or more is indistinguishable from a
// shorter one when reconstructed from clock readings.
func Between(checkIn, checkOut time.Time) time.Duration {
	raw := checkOut.Sub(checkIn)
	if raw < 0 {
		raw += 24 * time.Hour
	}
	return raw.Truncate(time.Minute)
}

// Format renders a duration as H:MM, flooring to minute granularity.
// Negative durations render as 0:00.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d%time.Hour) / int(time.Minute)
	return fmt.Sprintf("%d:%02d", h, m)
}

// Parse reads an H:MM or H:MM:SS duration string. Seconds, when present,
// are dropped; stored records only carry minute granularity.
func Parse(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("parsing duration %q: want H:MM or H:MM:SS", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("parsing duration hours %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("parsing duration minutes %q: %w", s, err)
	}
	if h < 0 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parsing duration %q: out of range", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}
