package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tehran(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tehran")
	require.NoError(t, err)
	return loc
}

func TestConvert_Nowruz(t *testing.T) {
	cal, err := New("Asia/Tehran")
	require.NoError(t, err)

	// Nowruz 1403 fell on Wednesday, March 20, 2024.
	civil, err := cal.Convert(time.Date(2024, 3, 20, 12, 0, 0, 0, tehran(t)))
	require.NoError(t, err)

	assert.Equal(t, "1403/01/01", civil.Date)
	assert.Equal(t, 1403, civil.Year)
	assert.Equal(t, 1, civil.Month)
	assert.Equal(t, 1, civil.Day)
	assert.Equal(t, "Wednesday", civil.Weekday)
	assert.Equal(t, "12:00:00 PM", civil.Clock)
}

func TestConvert_TwelveHourClock(t *testing.T) {
	cal, err := New("Asia/Tehran")
	require.NoError(t, err)

	civil, err := cal.Convert(time.Date(2024, 4, 24, 17, 30, 5, 0, tehran(t)))
	require.NoError(t, err)
	assert.Equal(t, "05:30:05 PM", civil.Clock)

	civil, err = cal.Convert(time.Date(2024, 4, 24, 9, 0, 0, 0, tehran(t)))
	require.NoError(t, err)
	assert.Equal(t, "09:00:00 AM", civil.Clock)
}

func TestConvert_ResolvesConfiguredTimezone(t *testing.T) {
	cal, err := New("Asia/Tehran")
	require.NoError(t, err)

	// 20:30 UTC is already the next Jalali day in Tehran (UTC+3:30).
	civil, err := cal.Convert(time.Date(2024, 4, 24, 20, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "1403/02/06", civil.Date)
	assert.Equal(t, "12:00:00 AM", civil.Clock)
}

func TestConvert_ZeroInstant(t *testing.T) {
	cal, err := New("Asia/Tehran")
	require.NoError(t, err)

	_, err = cal.Convert(time.Time{})
	assert.ErrorIs(t, err, ErrBadInstant)
}

func TestNew_UnknownTimezone(t *testing.T) {
	_, err := New("Not/AZone")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	y, m, d, err := ParseDate("1403/02/06")
	require.NoError(t, err)
	assert.Equal(t, 1403, y)
	assert.Equal(t, 2, m)
	assert.Equal(t, 6, d)

	for _, bad := range []string{"", "1403-02-06", "1403/02", "y/m/d"} {
		_, _, _, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestMonthDays(t *testing.T) {
	assert.Equal(t, 31, MonthDays(1403, 1))
	assert.Equal(t, 31, MonthDays(1403, 6))
	assert.Equal(t, 30, MonthDays(1403, 7))
	assert.Equal(t, 30, MonthDays(1403, 11))
	// 1399 is a leap year, 1400 is not.
	assert.Equal(t, 30, MonthDays(1399, 12))
	assert.Equal(t, 29, MonthDays(1400, 12))
	assert.Equal(t, 0, MonthDays(1403, 13))
}

func TestIsBusinessDay(t *testing.T) {
	// Ordibehesht 1403 starts on Saturday 2024-04-20; day 7 is a Friday.
	assert.True(t, IsBusinessDay(1403, 2, 1))
	assert.False(t, IsBusinessDay(1403, 2, 7))
	assert.True(t, IsBusinessDay(1403, 2, 8))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Farvardin", MonthName(1))
	assert.Equal(t, "Ordibehesht", MonthName(2))
	assert.Equal(t, "Esfand", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}
