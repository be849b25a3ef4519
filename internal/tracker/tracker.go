// Package tracker owns the per-user session state machine: check-in opens
// a session, check-out closes it, persists the record, and recomputes the
// monthly summary. At most one open session exists per user at any time.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aminrezaei/worklog/internal/calendar"
	"github.com/aminrezaei/worklog/internal/domain"
	"github.com/aminrezaei/worklog/internal/hours"
	"github.com/aminrezaei/worklog/internal/repository"
	"github.com/google/uuid"
)

var (
	// ErrAlreadyOpen rejects a check-in while a session is already open.
	ErrAlreadyOpen = errors.New("a session is already open")
	// ErrNoOpenSession rejects a check-out with no open session.
	ErrNoOpenSession = errors.New("no open session")
	// ErrEmptyActivity rejects a check-out whose activity text is empty.
	ErrEmptyActivity = errors.New("activity must not be empty")
)

// Tracker holds the open-session state for all users and drives the
// check-in/check-out lifecycle against the session log store.
type Tracker struct {
	store repository.SessionLogStore
	cal   *calendar.Calendar
	rate  int64
	obs   Observer

	mu    sync.Mutex
	users map[string]*userState
}

// userState serializes events for a single user. Store I/O during check-out
// happens under this lock so a slow append cannot interleave with another
// event for the same user; different users never contend.
type userState struct {
	mu   sync.Mutex
	open *domain.Session
}

// New creates a Tracker. A nil observer disables telemetry.
func New(store repository.SessionLogStore, cal *calendar.Calendar, hourlyRate int64, obs Observer) *Tracker {
	if obs == nil {
		obs = NoopObserver{}
	}
	return &Tracker{
		store: store,
		cal:   cal,
		rate:  hourlyRate,
		obs:   obs,
		users: make(map[string]*userState),
	}
}

func (t *Tracker) user(userID string) *userState {
	t.mu.Lock()
	defer t.mu.Unlock()
	u, ok := t.users[userID]
	if !ok {
		u = &userState{}
		t.users[userID] = u
	}
	return u
}

// CheckIn opens a session for the user at the given instant and returns its
// civil representation for display. Fails with ErrAlreadyOpen when a session
// is open; state is unchanged on any error.
func (t *Tracker) CheckIn(ctx context.Context, userID string, now time.Time) (civil calendar.Civil, err error) {
	defer t.observe(ctx, "check_in", userID, time.Now(), &err)

	civil, err = t.cal.Convert(now)
	if err != nil {
		return calendar.Civil{}, fmt.Errorf("converting check-in instant: %w", err)
	}

	u := t.user(userID)
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.open != nil {
		return calendar.Civil{}, ErrAlreadyOpen
	}
	u.open = &domain.Session{
		UserID:    userID,
		CheckInAt: now,
		Status:    domain.SessionOpen,
	}
	return civil, nil
}

// CheckOut closes the user's open session at the given instant, persists the
// resulting record, and returns it. The transition commits only after a
// successful append: on a store failure the session stays open so the user
// can retry without losing data.
func (t *Tracker) CheckOut(ctx context.Context, userID string, now time.Time, activity string) (rec *domain.SessionRecord, err error) {
	defer t.observe(ctx, "check_out", userID, time.Now(), &err)

	activity = strings.TrimSpace(activity)
	if activity == "" {
		return nil, ErrEmptyActivity
	}

	u := t.user(userID)
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.open == nil {
		return nil, ErrNoOpenSession
	}

	inCivil, err := t.cal.Convert(u.open.CheckInAt)
	if err != nil {
		return nil, fmt.Errorf("converting check-in instant: %w", err)
	}
	outCivil, err := t.cal.Convert(now)
	if err != nil {
		return nil, fmt.Errorf("converting check-out instant: %w", err)
	}

	rec = &domain.SessionRecord{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      inCivil.Date,
		Weekday:   inCivil.Weekday,
		CheckIn:   inCivil.Clock,
		CheckOut:  outCivil.Clock,
		Duration:  hours.Format(hours.Between(u.open.CheckInAt, now)),
		Activity:  activity,
		CreatedAt: time.Now().UTC(),
	}

	if err := t.store.Append(ctx, userID, rec); err != nil {
		return nil, fmt.Errorf("persisting session record: %w", err)
	}

	u.open.CheckOutAt = &now
	u.open.Activity = activity
	u.open.Status = domain.SessionClosed
	u.open = nil

	return rec, nil
}

// Open returns a copy of the user's open session, if any.
func (t *Tracker) Open(userID string) (domain.Session, bool) {
	u := t.user(userID)
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.open == nil {
		return domain.Session{}, false
	}
	return *u.open, true
}

// MonthlyStats recomputes the current Jalali month's summary from the full
// session log. Returns a zero-valued summary when no records match.
func (t *Tracker) MonthlyStats(ctx context.Context, userID string, now time.Time) (hours.Stats, error) {
	var err error
	defer t.observe(ctx, "monthly_stats", userID, time.Now(), &err)

	civil, convErr := t.cal.Convert(now)
	if convErr != nil {
		err = fmt.Errorf("converting current instant: %w", convErr)
		return hours.Stats{}, err
	}
	records, readErr := t.store.ReadAll(ctx, userID)
	if readErr != nil {
		err = fmt.Errorf("reading session log: %w", readErr)
		return hours.Stats{}, err
	}
	return hours.Monthly(records, civil.Year, civil.Month, civil.Day, t.rate), nil
}

// Records returns the user's full session log in insertion order.
func (t *Tracker) Records(ctx context.Context, userID string) ([]*domain.SessionRecord, error) {
	return t.store.ReadAll(ctx, userID)
}
