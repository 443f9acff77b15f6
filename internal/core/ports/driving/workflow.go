// Package driving defines the driving ports: interfaces through which
// adapters (CLI, TUI) drive the core workflow services.
package driving

import (
	"context"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

// WorkflowService orchestrates the two-phase withdrawal workflow.
type WorkflowService interface {
	// ParseTranscript uploads the transcript attachment for parsing and
	// returns the extracted student record. The attachment must satisfy
	// the upload policy.
	ParseTranscript(ctx context.Context, transcript domain.Attachment) (*domain.ParsedStudentRecord, error)

	// Submit validates the form preconditions locally, then posts the
	// full form snapshot to the validation endpoint. On success the
	// submission is recorded in the local history.
	Submit(ctx context.Context, form domain.WithdrawalForm) (*domain.ValidationOutcome, error)

	// RequestStatus looks up the stored state of a submitted request.
	RequestStatus(ctx context.Context, id string) (*domain.RequestStatus, error)

	// History lists the client's own past submissions, newest first.
	History(ctx context.Context) ([]domain.SubmissionRecord, error)
}
