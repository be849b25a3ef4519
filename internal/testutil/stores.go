package testutil

import (
	"context"
	"sync"

	"github.com/aminrezaei/worklog/internal/domain"
)

// MemStore is a thread-safe in-memory session log for tests.
type MemStore struct {
	mu      sync.Mutex
	records map[string][]*domain.SessionRecord
}

func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string][]*domain.SessionRecord)}
}

func (s *MemStore) Append(ctx context.Context, userID string, rec *domain.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[userID] = append(s.records[userID], rec)
	return nil
}

func (s *MemStore) ReadAll(ctx context.Context, userID string) ([]*domain.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.SessionRecord, len(s.records[userID]))
	copy(out, s.records[userID])
	return out, nil
}

// FailingStore injects an error on Append until Healed is set, enabling
// rollback tests for the persistence-gated check-out transition. Reads pass
// through to the wrapped store.
type FailingStore struct {
	*MemStore
	mu     sync.Mutex
	err    error
	healed bool
}

func NewFailingStore(err error) *FailingStore {
	return &FailingStore{MemStore: NewMemStore(), err: err}
}

// Heal makes subsequent appends succeed.
func (s *FailingStore) Heal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healed = true
}

func (s *FailingStore) Append(ctx context.Context, userID string, rec *domain.SessionRecord) error {
	s.mu.Lock()
	healed := s.healed
	s.mu.Unlock()
	if !healed {
		return s.err
	}
	return s.MemStore.Append(ctx, userID, rec)
}
