package tui

import (
	"context"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
	"github.com/uot-apps/withdrawal-cli/internal/core/ports/driving"
)

// MockWorkflowService is a configurable workflow stub for app tests.
type MockWorkflowService struct {
	ParseFn  func(ctx context.Context, transcript domain.Attachment) (*domain.ParsedStudentRecord, error)
	SubmitFn func(ctx context.Context, form domain.WithdrawalForm) (*domain.ValidationOutcome, error)
}

var _ driving.WorkflowService = (*MockWorkflowService)(nil)

func (m *MockWorkflowService) ParseTranscript(ctx context.Context, transcript domain.Attachment) (*domain.ParsedStudentRecord, error) {
	if m.ParseFn != nil {
		return m.ParseFn(ctx, transcript)
	}
	return &domain.ParsedStudentRecord{}, nil
}

func (m *MockWorkflowService) Submit(ctx context.Context, form domain.WithdrawalForm) (*domain.ValidationOutcome, error) {
	if m.SubmitFn != nil {
		return m.SubmitFn(ctx, form)
	}
	return &domain.ValidationOutcome{}, nil
}

func (m *MockWorkflowService) RequestStatus(_ context.Context, _ string) (*domain.RequestStatus, error) {
	return &domain.RequestStatus{}, nil
}

func (m *MockWorkflowService) History(_ context.Context) ([]domain.SubmissionRecord, error) {
	return nil, nil
}
