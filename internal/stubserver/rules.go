package stubserver

import (
	"fmt"
	"strings"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

// Sample transcript statistics backing every stub response. The stub
// has no PDF parser; it behaves like a student with one prior
// withdrawal and plenty of credits left.
const (
	sampleWithdrawalCount  = 1
	sampleRemainingCredits = 45
)

// sampleRecord is the canned phase-one parse result.
func sampleRecord() domain.ParsedStudentRecord {
	semester := 1
	year := 1447
	return domain.ParsedStudentRecord{
		Student: domain.StudentInfo{
			Name:       "نواف بن سلطان العتيبي",
			ID:         "451007699",
			College:    "كلية الحاسبات وتقنية المعلومات",
			Department: "علوم الحاسب",
			Degree:     "بكالوريوس",
			GPA:        "3.42",
		},
		CurrentSemester: &semester,
		CurrentYear:     &year,
		Courses: []domain.Course{
			{Code: "CSC 1201", Name: "برمجة الحاسب 1"},
			{Code: "MATH 1102", Name: "تفاضل وتكامل"},
			{Code: "PHYS 1101", Name: "فيزياء عامة"},
			{Code: "CSC 2301", Name: "تراكيب البيانات"},
		},
	}
}

// evaluation carries the inputs the eligibility rules look at.
type evaluation struct {
	Degree           string
	Semester         string
	CourseCode       string
	WithdrawalCount  int
	RemainingCredits int
}

// maxWithdrawals returns the withdrawal ceiling for a degree.
func maxWithdrawals(degree string) (int, string) {
	switch degree {
	case "دبلوم متوسط":
		return 3, "الحد الأقصى للاعتذار عن مقررات (دبلوم متوسط): 3 مقررات"
	case "دبلوم مشارك":
		return 2, "الحد الأقصى للاعتذار عن مقررات (دبلوم مشارك): 2 مقررات"
	default:
		return 6, "الحد الأقصى للاعتذار عن مقررات (بكالوريوس - نظام فصلي): 6 مقررات"
	}
}

// evaluate runs the withdrawal eligibility rules and assembles the
// outcome. The request is eligible when no rule produced an error.
func evaluate(in evaluation) domain.ValidationOutcome {
	var checks []domain.RuleCheck

	// Empty slices keep the wire shape as [] rather than null.
	errors := []string{}
	warnings := []string{}

	limit, limitRule := maxWithdrawals(in.Degree)
	limitStatus := domain.RulePass
	if in.WithdrawalCount >= limit {
		limitStatus = domain.RuleFail
		errors = append(errors, fmt.Sprintf(
			"تجاوزت الحد الأقصى للاعتذار عن المقررات (%d مقررات). عدد مرات الاعتذار السابقة: %d",
			limit, in.WithdrawalCount))
	}
	checks = append(checks, domain.RuleCheck{
		Rule:   limitRule,
		Status: limitStatus,
		Detail: fmt.Sprintf("عدد مرات الاعتذار السابقة: %d من أصل %d", in.WithdrawalCount, limit),
	})

	checks = append(checks, domain.RuleCheck{
		Rule:   "ألا يكون المقرر من مقررات السنة الدراسية الأولى",
		Status: domain.RulePass,
		Detail: "الطالب ليس في السنة الأولى",
	})

	checks = append(checks, domain.RuleCheck{
		Rule:   "لا يسمح للطالب المتوقع تخرجه الانسحاب من أي مقرر",
		Status: domain.RulePass,
		Detail: "الطالب غير متوقع تخرجه",
	})

	checks = append(checks, domain.RuleCheck{
		Rule:   "ألا يكون المقرر قد سبق الانسحاب منه سابقاً",
		Status: domain.RulePass,
		Detail: "لم يتم الاعتذار عن هذا المقرر مسبقاً",
	})

	summerStatus := domain.RulePass
	summerDetail := "المقرر ليس في الفصل الصيفي"
	if strings.Contains(in.Semester, "صيفي") {
		summerStatus = domain.RuleFail
		summerDetail = "لا يسمح بالاعتذار عن مقررات الفصل الصيفي"
		errors = append(errors, "لا يسمح بالاعتذار عن مقرر مسجل في الفصل الصيفي")
	}
	checks = append(checks, domain.RuleCheck{
		Rule:   "ألا يكون المقرر مسجلاً في الفصل الصيفي",
		Status: summerStatus,
		Detail: summerDetail,
	})

	remainingWarning := "يرجى التأكد من أن المدة النظامية المتبقية كافية لإنهاء متطلبات التخرج"
	checks = append(checks, domain.RuleCheck{
		Rule:   "أن تكون المدة النظامية المتبقية كافية لإنهاء متطلبات التخرج",
		Status: domain.RuleWarn,
		Detail: remainingWarning,
	})
	warnings = append(warnings, remainingWarning)

	checks = append(checks, domain.RuleCheck{
		Rule:   "يسمح بالانسحاب من مقرر واحد فقط خلال الفصل الدراسي",
		Status: domain.RuleWarn,
		Detail: "تأكد من عدم تقديم طلب اعتذار آخر في نفس الفصل",
	})

	checks = append(checks, domain.RuleCheck{
		Rule:   "ألا يكون المقرر الوحيد المسجل للطالب",
		Status: domain.RuleWarn,
		Detail: "تأكد من وجود مقررات أخرى مسجلة في الفصل الدراسي",
	})

	checks = append(checks, domain.RuleCheck{
		Rule:   "ألا يكون المقرر متزامناً مع مقرر آخر",
		Status: domain.RuleWarn,
		Detail: "تأكد من أن المقرر ليس متطلباً متزامناً مع مقرر آخر مسجل",
	})

	remaining := in.RemainingCredits
	return domain.ValidationOutcome{
		Eligible:     len(errors) == 0,
		RulesChecked: checks,
		Errors:       errors,
		Warnings:     warnings,
		TranscriptData: domain.TranscriptSummary{
			WithdrawalCount:  in.WithdrawalCount,
			RemainingCredits: &remaining,
		},
	}
}
