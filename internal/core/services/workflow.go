// Package services implements the core workflow logic behind the
// driving ports.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
	"github.com/uot-apps/withdrawal-cli/internal/core/ports/driven"
	"github.com/uot-apps/withdrawal-cli/internal/core/ports/driving"
	"github.com/uot-apps/withdrawal-cli/internal/logger"
)

// Ensure WorkflowService implements the driving port.
var _ driving.WorkflowService = (*WorkflowService)(nil)

// WorkflowService orchestrates the two-phase withdrawal workflow:
// local precondition checks, remote calls through the gateway, and the
// client's own submission history.
type WorkflowService struct {
	gateway driven.ValidationGateway
	history driven.HistoryStore
	now     func() time.Time
}

// NewWorkflowService creates the workflow service. The history store
// may be nil, in which case submissions are not recorded locally.
func NewWorkflowService(gateway driven.ValidationGateway, history driven.HistoryStore) *WorkflowService {
	return &WorkflowService{
		gateway: gateway,
		history: history,
		now:     time.Now,
	}
}

// ParseTranscript checks the attachment against the upload policy and
// forwards it to the parsing endpoint.
func (s *WorkflowService) ParseTranscript(ctx context.Context, transcript domain.Attachment) (*domain.ParsedStudentRecord, error) {
	if transcript.Path == "" {
		return nil, domain.ErrNoTranscript
	}
	if !transcript.Accepted() {
		return nil, domain.ErrUnsupportedAttachment
	}

	logger.Info("parsing transcript %s", transcript.Name)
	return s.gateway.ParseTranscript(ctx, transcript)
}

// Submit validates the form preconditions and posts the snapshot to
// the validation endpoint. Precondition violations never reach the
// network. A successful outcome is appended to the local history;
// history failures are logged, not surfaced, because the submission
// itself succeeded.
func (s *WorkflowService) Submit(ctx context.Context, form domain.WithdrawalForm) (*domain.ValidationOutcome, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	outcome, err := s.gateway.SubmitValidation(ctx, form)
	if err != nil {
		return nil, err
	}

	if s.history != nil {
		record := domain.SubmissionRecord{
			ID:          uuid.NewString(),
			RequestID:   outcome.RequestID.String(),
			CourseCode:  form.SelectedCourse.Code,
			CourseName:  form.SelectedCourse.Name,
			Eligible:    outcome.Eligible,
			SubmittedAt: s.now(),
		}
		if err := s.history.Append(ctx, record); err != nil {
			logger.Warn("recording submission history: %v", err)
		}
	}

	return outcome, nil
}

// RequestStatus looks up the stored state of a submitted request.
func (s *WorkflowService) RequestStatus(ctx context.Context, id string) (*domain.RequestStatus, error) {
	if id == "" {
		return nil, fmt.Errorf("request id: %w", domain.ErrNotFound)
	}
	return s.gateway.RequestStatus(ctx, id)
}

// History lists the client's own past submissions, newest first.
func (s *WorkflowService) History(ctx context.Context) ([]domain.SubmissionRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.List(ctx)
}
