package tracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aminrezaei/worklog/internal/repository"
	"github.com/aminrezaei/worklog/internal/testutil"
)

// Full lifecycle over the real SQLite store: sessions recorded through the
// state machine come back out of the log with identical fields and feed the
// monthly aggregation.
func TestLifecycle_SQLiteStore(t *testing.T) {
	store := repository.NewSQLiteSessionLogRepo(testutil.NewTestDB(t))
	trk := newTestTracker(t, store)
	ctx := context.Background()

	_, err := trk.CheckIn(ctx, "u1", tehranTime(t, 2024, 4, 24, 9, 0))
	require.NoError(t, err)
	rec, err := trk.CheckOut(ctx, "u1", tehranTime(t, 2024, 4, 24, 12, 0), "api work")
	require.NoError(t, err)

	_, err = trk.CheckIn(ctx, "u1", tehranTime(t, 2024, 4, 25, 14, 0))
	require.NoError(t, err)
	_, err = trk.CheckOut(ctx, "u1", tehranTime(t, 2024, 4, 25, 19, 45), "code review")
	require.NoError(t, err)

	records, err := trk.Records(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.Equal(t, "1403/02/05", records[0].Date)
	assert.Equal(t, "09:00:00 AM", records[0].CheckIn)
	assert.Equal(t, "12:00:00 PM", records[0].CheckOut)
	assert.Equal(t, "3:00", records[0].Duration)
	assert.Equal(t, "api work", records[0].Activity)
	assert.Equal(t, "5:45", records[1].Duration)

	stats, err := trk.MonthlyStats(ctx, "u1", tehranTime(t, 2024, 4, 29, 12, 0))
	require.NoError(t, err)
	assert.Equal(t, "8:45", stats.Total)
	assert.Equal(t, 2, stats.WorkedDays)
}

// A check-out delayed past midnight still produces a single record dated by
// its check-in day.
func TestLifecycle_OvernightSession(t *testing.T) {
	store := repository.NewSQLiteSessionLogRepo(testutil.NewTestDB(t))
	trk := newTestTracker(t, store)
	ctx := context.Background()

	_, err := trk.CheckIn(ctx, "u1", tehranTime(t, 2024, 4, 24, 23, 0))
	require.NoError(t, err)

	rec, err := trk.CheckOut(ctx, "u1", tehranTime(t, 2024, 4, 25, 1, 15), "deploy")
	require.NoError(t, err)
	assert.Equal(t, "1403/02/05", rec.Date)
	assert.Equal(t, "2:15", rec.Duration)

	records, err := trk.Records(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2:15", records[0].Duration)
}
