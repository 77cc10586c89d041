package activity

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo for tests and local development.
type MemoryRepo struct {
	mu     sync.RWMutex
	byUser map[string][]Record
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUser: make(map[string][]Record)}
}

func (r *MemoryRepo) Append(_ context.Context, record Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[record.UserID] = append(r.byUser[record.UserID], record)
	return nil
}

// ListByUser returns the user's records newest first. Records sharing a
// timestamp keep reverse insertion order, matching the Postgres ordering.
func (r *MemoryRepo) ListByUser(_ context.Context, userID string) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byUser[userID]
	records := make([]Record, len(stored))
	for i, record := range stored {
		records[len(stored)-1-i] = record
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

var _ Repo = (*MemoryRepo)(nil)
