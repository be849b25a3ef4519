package repository

import (
	"context"

	"github.com/aminrezaei/worklog/internal/domain"
)

// SessionLogStore is the append-only log of completed sessions. An Append
// must be observed by the next ReadAll for the same user; no stronger
// transactional guarantee is assumed. Retries and backoff for the
// underlying transport are the implementation's responsibility.
type SessionLogStore interface {
	Append(ctx context.Context, userID string, rec *domain.SessionRecord) error
	ReadAll(ctx context.Context, userID string) ([]*domain.SessionRecord, error)
}
