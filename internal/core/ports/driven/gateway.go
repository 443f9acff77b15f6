// Package driven defines the driven ports: interfaces the core depends
// on, implemented by infrastructure adapters.
package driven

import (
	"context"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

// ValidationGateway is the client of the remote transcript-parsing and
// eligibility-validation endpoints.
//
// Implementations classify responses into four outcomes: success,
// domain error (structured error body), conflict (duplicate request),
// and transport error (no parsable response). Callers distinguish them
// with errors.As against the gateway's error types.
type ValidationGateway interface {
	// ParseTranscript posts the transcript as multipart form content to
	// the parsing endpoint and returns the phase-one payload.
	ParseTranscript(ctx context.Context, transcript domain.Attachment) (*domain.ParsedStudentRecord, error)

	// SubmitValidation posts the full form snapshot to the validation
	// endpoint and returns the terminal outcome.
	SubmitValidation(ctx context.Context, form domain.WithdrawalForm) (*domain.ValidationOutcome, error)

	// RequestStatus fetches the stored state of a submitted request.
	RequestStatus(ctx context.Context, id string) (*domain.RequestStatus, error)
}
