package stubserver

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uot-apps/withdrawal-cli/internal/adapters/driven/gateway/httpapi"
	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

func testAttachment(t *testing.T, name string) domain.Attachment {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 test"), 0600))
	return domain.Attachment{
		Path:         path,
		Name:         name,
		DeclaredType: domain.PDFMIMEType,
		SizeBytes:    13,
	}
}

func testClient(t *testing.T) *httpapi.Client {
	t.Helper()
	server := httptest.NewServer(New().Handler())
	t.Cleanup(server.Close)
	return httpapi.NewClient(server.URL)
}

func testForm(t *testing.T) domain.WithdrawalForm {
	t.Helper()
	supporting := testAttachment(t, "medical.pdf")
	return domain.WithdrawalForm{
		Transcript:     testAttachment(t, "transcript.pdf"),
		SupportingDoc:  &supporting,
		SelectedCourse: domain.Course{Code: "CSC 1201", Name: "برمجة الحاسب 1"},
		Acknowledged:   true,
		StudentID:      "451007699",
		Semester:       "الفصل الأول",
		Year:           "1447",
		ReasonType:     "صحي",
		Reason:         "ظرف صحي طارئ",
	}
}

func TestParseTranscript_ReturnsSampleRecord(t *testing.T) {
	client := testClient(t)

	record, err := client.ParseTranscript(context.Background(), testAttachment(t, "transcript.pdf"))

	require.NoError(t, err)
	assert.Equal(t, "451007699", record.Student.ID.String())
	assert.Equal(t, "بكالوريوس", record.Student.Degree)
	assert.True(t, record.HasSemesterInfo())
	assert.Len(t, record.Courses, 4)
}

func TestParseTranscript_RejectsUnsupportedExtension(t *testing.T) {
	client := testClient(t)

	_, err := client.ParseTranscript(context.Background(), testAttachment(t, "transcript.docx"))

	require.Error(t, err)
	var domainErr *httpapi.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.MsgOnlyPDF, domainErr.Message)
}

func TestValidate_EligibleOutcome(t *testing.T) {
	client := testClient(t)

	outcome, err := client.SubmitValidation(context.Background(), testForm(t))

	require.NoError(t, err)
	assert.True(t, outcome.Eligible)
	assert.NotEmpty(t, outcome.RequestID.String())
	assert.Len(t, outcome.RulesChecked, 9)
	assert.Empty(t, outcome.Errors)
	assert.NotEmpty(t, outcome.Warnings)
	assert.Equal(t, "451007699", outcome.TranscriptData.StudentID.String())
	assert.Equal(t, 1, outcome.TranscriptData.WithdrawalCount)
}

func TestValidate_SummerSemesterFails(t *testing.T) {
	client := testClient(t)

	form := testForm(t)
	form.Semester = "الفصل الصيفي"
	outcome, err := client.SubmitValidation(context.Background(), form)

	require.NoError(t, err)
	assert.False(t, outcome.Eligible)
	assert.NotEmpty(t, outcome.Errors)
}

func TestValidate_MissingSupportingDoc(t *testing.T) {
	client := testClient(t)

	form := testForm(t)
	form.SupportingDoc = nil
	_, err := client.SubmitValidation(context.Background(), form)

	require.Error(t, err)
	assert.True(t, httpapi.IsDomainError(err))
}

func TestValidate_DuplicateRequestConflicts(t *testing.T) {
	client := testClient(t)
	form := testForm(t)

	first, err := client.SubmitValidation(context.Background(), form)
	require.NoError(t, err)

	_, err = client.SubmitValidation(context.Background(), form)
	require.Error(t, err)
	assert.True(t, httpapi.IsConflict(err))
	var conflictErr *httpapi.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, first.RequestID.String(), conflictErr.RequestID)
}

func TestRequestStatus_RoundTrip(t *testing.T) {
	client := testClient(t)

	outcome, err := client.SubmitValidation(context.Background(), testForm(t))
	require.NoError(t, err)

	status, err := client.RequestStatus(context.Background(), outcome.RequestID.String())
	require.NoError(t, err)
	assert.Equal(t, outcome.RequestID.String(), status.ID.String())
	assert.Equal(t, "CSC 1201", status.CourseCode)
	assert.Equal(t, "pending", status.Status)
	assert.Equal(t, outcome.Eligible, status.Eligible)
	assert.NotEmpty(t, status.CreatedAt)
}

func TestRequestStatus_UnknownID(t *testing.T) {
	client := testClient(t)

	_, err := client.RequestStatus(context.Background(), "999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
