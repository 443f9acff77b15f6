package domain

// Course is one registered course extracted from the transcript.
// Courses are rendered as mutually exclusive options in the request form.
type Course struct {
	// Code is the course code, e.g. "CS301". Options are keyed by code.
	Code string `json:"code"`

	// Name is the human-readable course title.
	Name string `json:"name"`
}

// StudentInfo holds the display fields extracted from the transcript.
// Any field may be empty; the UI substitutes a "not available" placeholder.
type StudentInfo struct {
	Name       string     `json:"name"`
	ID         FlexString `json:"id"`
	College    string     `json:"college"`
	Department string     `json:"department"`
	Degree     string     `json:"degree"`
	GPA        FlexString `json:"gpa"`
}

// ParsedStudentRecord is the phase-one result returned by the
// transcript-parsing endpoint.
type ParsedStudentRecord struct {
	// Student holds the extracted student display fields.
	Student StudentInfo `json:"student"`

	// CurrentSemester is the semester number, when the parser found one.
	CurrentSemester *int `json:"current_semester,omitempty"`

	// CurrentYear is the (hijri) academic year, when the parser found one.
	CurrentYear *int `json:"current_year,omitempty"`

	// Courses is the ordered list of courses registered this semester.
	Courses []Course `json:"courses"`
}

// HasSemesterInfo reports whether both semester and year are present.
// The semester banner is shown only when both are known.
func (r *ParsedStudentRecord) HasSemesterInfo() bool {
	return r.CurrentSemester != nil && r.CurrentYear != nil
}

// CourseByCode returns the course with the given code, if registered.
func (r *ParsedStudentRecord) CourseByCode(code string) (Course, bool) {
	for _, c := range r.Courses {
		if c.Code == code {
			return c, true
		}
	}
	return Course{}, false
}
