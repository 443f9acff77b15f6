package cli

import (
	"context"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
	"github.com/uot-apps/withdrawal-cli/internal/core/ports/driving"
)

// mockWorkflow is a configurable workflow stub for command tests.
type mockWorkflow struct {
	ParseFn   func(ctx context.Context, transcript domain.Attachment) (*domain.ParsedStudentRecord, error)
	SubmitFn  func(ctx context.Context, form domain.WithdrawalForm) (*domain.ValidationOutcome, error)
	StatusFn  func(ctx context.Context, id string) (*domain.RequestStatus, error)
	HistoryFn func(ctx context.Context) ([]domain.SubmissionRecord, error)
}

var _ driving.WorkflowService = (*mockWorkflow)(nil)

func (m *mockWorkflow) ParseTranscript(ctx context.Context, transcript domain.Attachment) (*domain.ParsedStudentRecord, error) {
	if m.ParseFn != nil {
		return m.ParseFn(ctx, transcript)
	}
	return testRecord(), nil
}

func (m *mockWorkflow) Submit(ctx context.Context, form domain.WithdrawalForm) (*domain.ValidationOutcome, error) {
	if m.SubmitFn != nil {
		return m.SubmitFn(ctx, form)
	}
	return &domain.ValidationOutcome{Eligible: true, RequestID: "1"}, nil
}

func (m *mockWorkflow) RequestStatus(ctx context.Context, id string) (*domain.RequestStatus, error) {
	if m.StatusFn != nil {
		return m.StatusFn(ctx, id)
	}
	return &domain.RequestStatus{ID: domain.FlexString(id), Status: "pending"}, nil
}

func (m *mockWorkflow) History(ctx context.Context) ([]domain.SubmissionRecord, error) {
	if m.HistoryFn != nil {
		return m.HistoryFn(ctx)
	}
	return nil, nil
}

func testRecord() *domain.ParsedStudentRecord {
	return &domain.ParsedStudentRecord{
		Student: domain.StudentInfo{
			Name:       "نواف بن سلطان العتيبي",
			ID:         "451007699",
			College:    "كلية الحاسبات وتقنية المعلومات",
			Department: "علوم الحاسب",
			Degree:     "بكالوريوس",
			GPA:        "3.42",
		},
		Courses: []domain.Course{
			{Code: "CSC 1201", Name: "برمجة الحاسب 1"},
			{Code: "MATH 1102", Name: "تفاضل وتكامل"},
		},
	}
}

// setupTestServices installs a default mock workflow and returns a
// cleanup that restores the previous state.
func setupTestServices() func() {
	oldService := workflowService
	workflowService = &mockWorkflow{}
	oldTerminal := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return false }
	return func() {
		workflowService = oldService
		stdoutIsTerminal = oldTerminal
	}
}
