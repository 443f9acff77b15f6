package domain

// User-facing message text. The service is operated in Arabic; these
// strings match the wording of the production web front end.
const (
	// MsgOnlyPDF rejects an attachment that failed the upload policy.
	MsgOnlyPDF = "يرجى رفع ملف بصيغة PDF فقط"

	// MsgUploadTranscriptFirst asks for the transcript before parsing.
	MsgUploadTranscriptFirst = "يرجى رفع السجل الأكاديمي أولاً"

	// MsgAcknowledgmentRequired asks the student to accept the declaration.
	MsgAcknowledgmentRequired = "يرجى الموافقة على الإقرار والتعهد"

	// MsgSelectCourse asks for exactly one course to be chosen.
	MsgSelectCourse = "يرجى اختيار المقرر المراد الاعتذار عنه"

	// MsgParseFailed is the generic phase-one failure message.
	MsgParseFailed = "حدث خطأ أثناء تحليل السجل"

	// MsgProcessFailed is the generic phase-two failure message.
	MsgProcessFailed = "حدث خطأ أثناء المعالجة"

	// MsgConnectionFailed is shown on transport-level failures.
	MsgConnectionFailed = "حدث خطأ في الاتصال بالخادم"

	// MsgNotAvailable is the placeholder for missing optional fields.
	MsgNotAvailable = "غير متوفر"

	// MsgEligible and MsgNotEligible head the results view.
	MsgEligible    = "مؤهل للاعتذار عن المقرر"
	MsgNotEligible = "غير مؤهل للاعتذار عن المقرر"

	// MsgYes and MsgNo render boolean summary fields.
	MsgYes = "نعم"
	MsgNo  = "لا"
)
