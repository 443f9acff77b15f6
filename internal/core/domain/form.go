package domain

// WithdrawalForm is the full snapshot of the request form at submission
// time. All visible fields are posted to the validation endpoint.
type WithdrawalForm struct {
	// Transcript is the mandatory academic transcript attachment.
	Transcript Attachment

	// SupportingDoc is the optional supporting document attachment.
	SupportingDoc *Attachment

	// SelectedCourse is the single course chosen for withdrawal.
	SelectedCourse Course

	// Acknowledged records the student's acceptance of the declaration.
	Acknowledged bool

	// Echoed student fields. When set they override the parsed values
	// on the server side.
	StudentName string
	StudentID   string
	Degree      string
	Major       string

	// Semester and Year identify the academic term of the request.
	Semester string
	Year     string

	// ReasonType and Reason describe why the student is withdrawing.
	ReasonType string
	Reason     string
}

// Validate checks the local submission preconditions. Violations are
// surfaced immediately and never reach the network.
func (f *WithdrawalForm) Validate() error {
	if f.Transcript.Path == "" {
		return ErrNoTranscript
	}
	if !f.Acknowledged {
		return ErrAcknowledgmentRequired
	}
	if f.SelectedCourse.Code == "" {
		return ErrNoCourseSelected
	}
	return nil
}

// Fields returns the plain form fields as posted to the validation
// endpoint, keyed by wire field name. Attachments are sent separately
// as file parts.
func (f *WithdrawalForm) Fields() map[string]string {
	fields := map[string]string{
		"selected_course": f.SelectedCourse.Code,
		"course_code":     f.SelectedCourse.Code,
		"course_name":     f.SelectedCourse.Name,
		"semester":        f.Semester,
		"year":            f.Year,
		"reason_type":     f.ReasonType,
		"reason":          f.Reason,
		"student_name":    f.StudentName,
		"student_id":      f.StudentID,
		"degree":          f.Degree,
		"major":           f.Major,
	}
	if f.Acknowledged {
		fields["acknowledge"] = "on"
	}
	return fields
}
