package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

func TestHistoryCmd_Use(t *testing.T) {
	assert.Equal(t, "history", historyCmd.Use)
}

func TestHistoryCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "لا توجد طلبات سابقة")
}

func TestHistoryCmd_ListsRecords(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	workflowService = &mockWorkflow{
		HistoryFn: func(_ context.Context) ([]domain.SubmissionRecord, error) {
			return []domain.SubmissionRecord{
				{
					RequestID:   "17",
					CourseCode:  "CSC 1201",
					CourseName:  "برمجة الحاسب 1",
					Eligible:    true,
					SubmittedAt: time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
				},
				{
					CourseCode:  "MATH 1102",
					CourseName:  "تفاضل وتكامل",
					Eligible:    false,
					SubmittedAt: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
				},
			}, nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "2026-08-29 10:30")
	assert.Contains(t, buf.String(), "✓  CSC 1201")
	assert.Contains(t, buf.String(), "(طلب 17)")
	assert.Contains(t, buf.String(), "✗  MATH 1102")
}

func TestHistoryCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	workflowService = &mockWorkflow{
		HistoryFn: func(_ context.Context) ([]domain.SubmissionRecord, error) {
			return []domain.SubmissionRecord{{CourseCode: "CSC 1201"}}, nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		historyJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "CSC 1201")
}
