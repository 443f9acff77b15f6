// Package memory provides in-memory store implementations for tests
// and ephemeral runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
	"github.com/uot-apps/withdrawal-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the port.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore keeps submission records in memory.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.SubmissionRecord
}

// NewHistoryStore creates an empty in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Append stores one submission record.
func (s *HistoryStore) Append(_ context.Context, record domain.SubmissionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// List returns all stored records, newest first.
func (s *HistoryStore) List(_ context.Context) ([]domain.SubmissionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.SubmissionRecord, len(s.records))
	copy(out, s.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *HistoryStore) Close() error {
	return nil
}
