package tracker

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aminrezaei/worklog/internal/testutil"
)

// TestConcurrent_AtMostOneOpenSessionPerUser property-tests the state
// machine invariant under random interleavings: whatever order concurrent
// check-in/check-out events land in, a user never ends up with more than
// one open session, and every successful check-out matches exactly one
// successful check-in.
func TestConcurrent_AtMostOneOpenSessionPerUser(t *testing.T) {
	store := testutil.NewMemStore()
	trk := newTestTracker(t, store)
	ctx := context.Background()

	const (
		users      = 5
		workers    = 8
		opsPerUser = 50
	)

	base := tehranTime(t, 2024, 4, 24, 9, 0)

	checkins := make([]atomic.Int64, users)
	checkouts := make([]atomic.Int64, users)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < opsPerUser; i++ {
				u := rng.Intn(users)
				userID := fmt.Sprintf("user-%d", u)
				now := base.Add(time.Duration(rng.Intn(600)) * time.Minute)
				if rng.Intn(2) == 0 {
					if _, err := trk.CheckIn(ctx, userID, now); err == nil {
						checkins[u].Add(1)
					}
				} else {
					if _, err := trk.CheckOut(ctx, userID, now, "work"); err == nil {
						checkouts[u].Add(1)
					}
				}
			}
		}(int64(w + 1))
	}
	wg.Wait()

	for u := 0; u < users; u++ {
		userID := fmt.Sprintf("user-%d", u)
		in := checkins[u].Load()
		out := checkouts[u].Load()

		_, open := trk.Open(userID)
		openCount := in - out
		assert.GreaterOrEqual(t, openCount, int64(0),
			"user %d: check-outs may never outnumber check-ins", u)
		assert.LessOrEqual(t, openCount, int64(1),
			"user %d: at most one session may be open", u)
		assert.Equal(t, openCount == 1, open,
			"user %d: open flag must match the event balance", u)

		records, err := store.ReadAll(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, out, int64(len(records)),
			"user %d: every successful check-out persists exactly one record", u)
	}
}
