// Package results renders the validation outcome as a full-screen
// overlay. The outcome is displayed read-only; closing the overlay is
// handled by the application model.
package results

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/styles"
	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

// View renders validation outcomes.
type View struct {
	styles  *styles.Styles
	outcome *domain.ValidationOutcome

	width  int
	height int
}

// NewView creates the results view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80, height: 24}
}

// SetOutcome installs the outcome to display.
func (v *View) SetOutcome(outcome *domain.ValidationOutcome) {
	v.outcome = outcome
}

// Outcome returns the displayed outcome, or nil.
func (v *View) Outcome() *domain.ValidationOutcome {
	return v.outcome
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// View renders the outcome overlay.
func (v *View) View() string {
	if v.outcome == nil {
		return ""
	}
	return v.Render(v.outcome)
}

// Render produces the full outcome report. It is deterministic for a
// given outcome and safe to call without any view state.
func (v *View) Render(outcome *domain.ValidationOutcome) string {
	sections := []string{v.renderHeader(outcome)}

	if outcome.RequestID != "" {
		sections = append(sections,
			v.styles.Muted.Render(fmt.Sprintf("رقم الطلب: #%s", outcome.RequestID)))
	}

	sections = append(sections, "", v.renderSummary(outcome.TranscriptData))
	sections = append(sections, "", v.renderRules(outcome.RulesChecked))

	if len(outcome.Errors) > 0 {
		sections = append(sections, "", v.renderList("أسباب الرفض", outcome.Errors, v.styles.Error))
	}
	if len(outcome.Warnings) > 0 {
		sections = append(sections, "", v.renderList("تنبيهات", outcome.Warnings, v.styles.Warning))
	}

	sections = append(sections, "", v.styles.Help.Render("esc: إغلاق"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderHeader(outcome *domain.ValidationOutcome) string {
	if outcome.Eligible {
		return v.styles.Eligible.Render("✓ " + domain.MsgEligible)
	}
	return v.styles.NotEligible.Render("✗ " + domain.MsgNotEligible)
}

// orNotAvailable substitutes the placeholder for empty fields.
func orNotAvailable(value string) string {
	if value == "" {
		return domain.MsgNotAvailable
	}
	return value
}

func (v *View) renderSummary(data domain.TranscriptSummary) string {
	yesNo := domain.MsgNo
	if data.ExpectedGraduate {
		yesNo = domain.MsgYes
	}

	rows := []string{
		fmt.Sprintf("الاسم: %s", orNotAvailable(data.StudentName)),
		fmt.Sprintf("الرقم الأكاديمي: %s", orNotAvailable(data.StudentID.String())),
		fmt.Sprintf("التخصص: %s", orNotAvailable(data.DepartmentOrMajor())),
		fmt.Sprintf("الدرجة: %s", orNotAvailable(data.Degree)),
		fmt.Sprintf("المعدل التراكمي: %s", orNotAvailable(data.GPA.String())),
		fmt.Sprintf("عدد مرات الاعتذار السابقة: %d", data.WithdrawalCount),
	}
	if data.RemainingCredits != nil {
		rows = append(rows, fmt.Sprintf("الساعات المتبقية: %d", *data.RemainingCredits))
	}
	rows = append(rows, fmt.Sprintf("متوقع التخرج: %s", yesNo))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return v.styles.Border.Padding(0, 1).Render(content)
}

func (v *View) renderRules(rules []domain.RuleCheck) string {
	header := v.styles.Subtitle.Render("القواعد المفحوصة")
	if len(rules) == 0 {
		return header
	}

	lines := make([]string, 0, len(rules))
	for _, rule := range rules {
		var style lipgloss.Style
		switch rule.Status {
		case domain.RulePass:
			style = v.styles.Success
		case domain.RuleFail:
			style = v.styles.Error
		default:
			style = v.styles.Warning
		}
		line := style.Render(rule.Status.Glyph()) + " " + v.styles.Normal.Render(rule.Rule)
		if rule.Detail != "" {
			line += "\n  " + v.styles.Muted.Render(rule.Detail)
		}
		lines = append(lines, line)
	}
	return header + "\n" + lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *View) renderList(title string, items []string, style lipgloss.Style) string {
	header := v.styles.Subtitle.Render(title)
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, style.Render("• "+item))
	}
	return header + "\n" + lipgloss.JoinVertical(lipgloss.Left, lines...)
}
