package tracker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Event captures lightweight execution telemetry for one tracker operation.
type Event struct {
	Op       string
	UserID   string
	Duration time.Duration
	Err      error
}

// Observer receives tracker operation events.
type Observer interface {
	Observe(ctx context.Context, event Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) Observe(context.Context, Event) {}

type logObserver struct {
	log zerolog.Logger
}

// NewLogObserver writes tracker events to the given zerolog logger.
func NewLogObserver(log zerolog.Logger) Observer {
	return &logObserver{log: log}
}

func (o *logObserver) Observe(ctx context.Context, event Event) {
	entry := o.log.Info()
	if event.Err != nil {
		entry = o.log.Error().Err(event.Err)
	}
	entry.
		Str("op", event.Op).
		Str("user_id", event.UserID).
		Dur("duration", event.Duration).
		Msg("tracker_op")
}

func (t *Tracker) observe(ctx context.Context, op, userID string, start time.Time, err *error) {
	t.obs.Observe(ctx, Event{
		Op:       op,
		UserID:   userID,
		Duration: time.Since(start),
		Err:      *err,
	})
}
