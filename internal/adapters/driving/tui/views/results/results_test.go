package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

func intPtr(n int) *int { return &n }

func eligibleOutcome() *domain.ValidationOutcome {
	return &domain.ValidationOutcome{
		Eligible:  true,
		RequestID: "17",
		TranscriptData: domain.TranscriptSummary{
			StudentName:      "نواف بن سلطان العتيبي",
			StudentID:        "451007699",
			Department:       "علوم الحاسب",
			Degree:           "بكالوريوس",
			GPA:              "3.42",
			WithdrawalCount:  1,
			RemainingCredits: intPtr(45),
		},
		RulesChecked: []domain.RuleCheck{
			{Rule: "لم يتجاوز الحد الأقصى للاعتذارات", Status: domain.RulePass},
			{Rule: "المقرر ليس متطلب تخرج", Status: domain.RuleWarn, Detail: "يتطلب مراجعة يدوية"},
		},
		Warnings: []string{"يتطلب المقرر مراجعة القسم"},
	}
}

func TestView_Render_EligibleHeader(t *testing.T) {
	view := NewView(nil)

	out := view.Render(eligibleOutcome())

	assert.Contains(t, out, "✓ "+domain.MsgEligible)
	assert.Contains(t, out, "رقم الطلب: #17")
}

func TestView_Render_NotEligibleHeader(t *testing.T) {
	view := NewView(nil)
	outcome := eligibleOutcome()
	outcome.Eligible = false
	outcome.RequestID = ""
	outcome.Errors = []string{"عدد مرات الاعتذار تجاوز الحد المسموح"}

	out := view.Render(outcome)

	assert.Contains(t, out, "✗ "+domain.MsgNotEligible)
	assert.NotContains(t, out, "رقم الطلب")
	assert.Contains(t, out, "أسباب الرفض")
	assert.Contains(t, out, "• عدد مرات الاعتذار تجاوز الحد المسموح")
}

func TestView_Render_Summary(t *testing.T) {
	view := NewView(nil)

	out := view.Render(eligibleOutcome())

	assert.Contains(t, out, "نواف بن سلطان العتيبي")
	assert.Contains(t, out, "451007699")
	assert.Contains(t, out, "علوم الحاسب")
	assert.Contains(t, out, "3.42")
	assert.Contains(t, out, "عدد مرات الاعتذار السابقة: 1")
	assert.Contains(t, out, "الساعات المتبقية: 45")
	assert.Contains(t, out, "متوقع التخرج: "+domain.MsgNo)
}

func TestView_Render_SummaryPlaceholders(t *testing.T) {
	view := NewView(nil)
	outcome := &domain.ValidationOutcome{}

	out := view.Render(outcome)

	assert.Contains(t, out, "الاسم: "+domain.MsgNotAvailable)
	assert.NotContains(t, out, "الساعات المتبقية")
}

func TestView_Render_RuleGlyphs(t *testing.T) {
	view := NewView(nil)
	outcome := eligibleOutcome()
	outcome.RulesChecked = append(outcome.RulesChecked,
		domain.RuleCheck{Rule: "الفصل الصيفي", Status: domain.RuleFail})

	out := view.Render(outcome)

	assert.Contains(t, out, domain.RulePass.Glyph())
	assert.Contains(t, out, domain.RuleWarn.Glyph())
	assert.Contains(t, out, domain.RuleFail.Glyph())
	assert.Contains(t, out, "يتطلب مراجعة يدوية")
}

func TestView_Render_Warnings(t *testing.T) {
	view := NewView(nil)

	out := view.Render(eligibleOutcome())

	assert.Contains(t, out, "تنبيهات")
	assert.Contains(t, out, "• يتطلب المقرر مراجعة القسم")
}

func TestView_View_EmptyWithoutOutcome(t *testing.T) {
	view := NewView(nil)

	assert.Empty(t, view.View())

	outcome := eligibleOutcome()
	view.SetOutcome(outcome)
	require.Equal(t, outcome, view.Outcome())
	assert.NotEmpty(t, view.View())
}
