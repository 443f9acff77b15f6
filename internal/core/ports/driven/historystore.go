package driven

import (
	"context"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

// HistoryStore persists the client's own submission records.
type HistoryStore interface {
	// Append stores one submission record.
	Append(ctx context.Context, record domain.SubmissionRecord) error

	// List returns all stored records, newest first.
	List(ctx context.Context) ([]domain.SubmissionRecord, error)

	// Close releases the underlying resources.
	Close() error
}
