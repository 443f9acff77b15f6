package domain

import "time"

// RuleStatus is the evaluation result of one eligibility rule.
type RuleStatus string

const (
	// RulePass indicates the rule was satisfied.
	RulePass RuleStatus = "pass"
	// RuleFail indicates the rule was violated.
	RuleFail RuleStatus = "fail"
	// RuleWarn indicates the rule needs the student's attention but does
	// not block eligibility.
	RuleWarn RuleStatus = "warn"
)

// Glyph returns the status marker shown next to a rule row.
// Unknown statuses fall back to the warning glyph.
func (s RuleStatus) Glyph() string {
	switch s {
	case RulePass:
		return "✓"
	case RuleFail:
		return "✗"
	default:
		return "⚠"
	}
}

// RuleCheck is one named eligibility criterion with its outcome.
type RuleCheck struct {
	Rule   string     `json:"rule"`
	Status RuleStatus `json:"status"`
	Detail string     `json:"detail"`
}

// TranscriptSummary is the student summary echoed back by the
// validation endpoint. Department and Major are alternates; whichever
// is non-empty is displayed.
type TranscriptSummary struct {
	StudentName      string     `json:"student_name"`
	StudentID        FlexString `json:"student_id"`
	Department       string     `json:"department,omitempty"`
	Major            string     `json:"major,omitempty"`
	Degree           string     `json:"degree"`
	GPA              FlexString `json:"gpa"`
	WithdrawalCount  int        `json:"withdrawal_count"`
	RemainingCredits *int       `json:"remaining_credits,omitempty"`
	ExpectedGraduate bool       `json:"expected_graduate"`
}

// DepartmentOrMajor returns the department, falling back to the major.
func (t TranscriptSummary) DepartmentOrMajor() string {
	if t.Department != "" {
		return t.Department
	}
	return t.Major
}

// ValidationOutcome is the terminal phase-two result. It is rendered
// read-only and never mutated after receipt.
type ValidationOutcome struct {
	// Eligible is the overall verdict.
	Eligible bool `json:"eligible"`

	// RequestID identifies the stored request, when one was created.
	RequestID FlexString `json:"request_id,omitempty"`

	// TranscriptData is the echoed student summary.
	TranscriptData TranscriptSummary `json:"transcript_data"`

	// RulesChecked is the ordered list of evaluated rules.
	RulesChecked []RuleCheck `json:"rules_checked"`

	// Errors lists the reasons for ineligibility. Empty when eligible.
	Errors []string `json:"errors"`

	// Warnings lists advisories that do not block eligibility.
	Warnings []string `json:"warnings"`
}

// RequestStatus is the stored state of a previously submitted request,
// as returned by the status endpoint.
type RequestStatus struct {
	ID         FlexString `json:"id"`
	CourseCode string     `json:"course_code"`
	CourseName string     `json:"course_name"`
	Semester   string     `json:"semester"`
	Year       string     `json:"year"`
	Status     string     `json:"status"`
	Eligible   bool       `json:"eligible"`
	CreatedAt  string     `json:"created_at"`
}

// SubmissionRecord is the client's own record of a submitted request,
// kept in the local history store.
type SubmissionRecord struct {
	// ID is a client-generated identifier for the history row.
	ID string

	// RequestID is the server-assigned request identifier, if any.
	RequestID string

	// CourseCode and CourseName identify the withdrawn-from course.
	CourseCode string
	CourseName string

	// Eligible is the verdict returned by the validation service.
	Eligible bool

	// SubmittedAt is when the submission completed.
	SubmittedAt time.Time
}
