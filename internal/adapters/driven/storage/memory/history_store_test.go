package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

func TestHistoryStore_NewestFirst(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, domain.SubmissionRecord{
		ID: "a", CourseCode: "CS301", SubmittedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, store.Append(ctx, domain.SubmissionRecord{
		ID: "b", CourseCode: "MATH210", SubmittedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b", records[0].ID)
	assert.Equal(t, "a", records[1].ID)

	// List returns a copy; mutating it does not affect the store.
	records[0].CourseCode = "changed"
	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "MATH210", again[0].CourseCode)

	assert.NoError(t, store.Close())
}
