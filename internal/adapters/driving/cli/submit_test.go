package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

func TestSubmitCmd_Use(t *testing.T) {
	assert.Equal(t, "submit", submitCmd.Use)
}

func TestSubmitCmd_RequiresTranscriptAndCourse(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"submit"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestSubmitCmd_EligibleOutcome(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	var submitted domain.WithdrawalForm
	workflowService = &mockWorkflow{
		SubmitFn: func(_ context.Context, form domain.WithdrawalForm) (*domain.ValidationOutcome, error) {
			submitted = form
			return &domain.ValidationOutcome{
				Eligible:  true,
				RequestID: "17",
				RulesChecked: []domain.RuleCheck{
					{Rule: "لم يتجاوز الحد الأقصى للاعتذارات", Status: domain.RulePass},
				},
				Warnings: []string{"يتطلب المقرر مراجعة القسم"},
			}, nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"submit",
		"--transcript", writeTranscript(t, "transcript.pdf"),
		"--course", "CSC 1201",
		"--reason", "ظروف صحية",
		"--ack",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		submitAck = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✓ "+domain.MsgEligible)
	assert.Contains(t, buf.String(), "رقم الطلب: #17")
	assert.Contains(t, buf.String(), "لم يتجاوز الحد الأقصى للاعتذارات")
	assert.Contains(t, buf.String(), "يتطلب المقرر مراجعة القسم")

	assert.Equal(t, "CSC 1201", submitted.SelectedCourse.Code)
	assert.Equal(t, "برمجة الحاسب 1", submitted.SelectedCourse.Name)
	assert.Equal(t, "451007699", submitted.StudentID)
	assert.Equal(t, "ظروف صحية", submitted.Reason)
	assert.True(t, submitted.Acknowledged)
}

func TestSubmitCmd_UnregisteredCourse(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{
		"submit",
		"--transcript", writeTranscript(t, "transcript.pdf"),
		"--course", "PHYS 9999",
		"--ack",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		submitAck = false
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not registered this semester")
}

func TestSubmitCmd_MissingAcknowledgment(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	workflowService = &mockWorkflow{
		SubmitFn: func(_ context.Context, form domain.WithdrawalForm) (*domain.ValidationOutcome, error) {
			if err := form.Validate(); err != nil {
				return nil, err
			}
			return &domain.ValidationOutcome{}, nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{
		"submit",
		"--transcript", writeTranscript(t, "transcript.pdf"),
		"--course", "CSC 1201",
	})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, buf.String(), domain.MsgAcknowledgmentRequired)
}

func TestSubmitCmd_NotEligibleOutcome(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	workflowService = &mockWorkflow{
		SubmitFn: func(_ context.Context, _ domain.WithdrawalForm) (*domain.ValidationOutcome, error) {
			return &domain.ValidationOutcome{
				Eligible: false,
				Errors:   []string{"لا يمكن الاعتذار عن مقررات الفصل الصيفي"},
			}, nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"submit",
		"--transcript", writeTranscript(t, "transcript.pdf"),
		"--course", "CSC 1201",
		"--ack",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		submitAck = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✗ "+domain.MsgNotEligible)
	assert.Contains(t, buf.String(), "لا يمكن الاعتذار عن مقررات الفصل الصيفي")
}
