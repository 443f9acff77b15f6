package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleStatus_Glyph(t *testing.T) {
	assert.Equal(t, "✓", RulePass.Glyph())
	assert.Equal(t, "✗", RuleFail.Glyph())
	assert.Equal(t, "⚠", RuleWarn.Glyph())
	// Unknown statuses fall back to the warning glyph.
	assert.Equal(t, "⚠", RuleStatus("warning").Glyph())
}

func TestTranscriptSummary_DepartmentOrMajor(t *testing.T) {
	assert.Equal(t, "علوم الحاسب", TranscriptSummary{Department: "علوم الحاسب", Major: "x"}.DepartmentOrMajor())
	assert.Equal(t, "هندسة الحاسب", TranscriptSummary{Major: "هندسة الحاسب"}.DepartmentOrMajor())
	assert.Equal(t, "", TranscriptSummary{}.DepartmentOrMajor())
}

func TestValidationOutcome_Decode(t *testing.T) {
	// Wire shape of the validation endpoint, snake_case throughout.
	body := `{
		"eligible": true,
		"request_id": 17,
		"transcript_data": {
			"student_name": "نواف",
			"student_id": "451007699",
			"major": "علوم الحاسب",
			"degree": "بكالوريوس",
			"gpa": 3.2,
			"withdrawal_count": 1,
			"remaining_credits": 45,
			"expected_graduate": false
		},
		"rules_checked": [
			{"rule": "GPA", "status": "pass", "detail": "3.2 ≥ 2.0"}
		],
		"errors": [],
		"warnings": ["تنبيه"]
	}`

	var outcome ValidationOutcome
	require.NoError(t, json.Unmarshal([]byte(body), &outcome))

	assert.True(t, outcome.Eligible)
	// Numeric identifiers and GPA values decode as their literal text.
	assert.Equal(t, "17", outcome.RequestID.String())
	assert.Equal(t, "3.2", outcome.TranscriptData.GPA.String())
	assert.Equal(t, "علوم الحاسب", outcome.TranscriptData.DepartmentOrMajor())
	require.NotNil(t, outcome.TranscriptData.RemainingCredits)
	assert.Equal(t, 45, *outcome.TranscriptData.RemainingCredits)
	require.Len(t, outcome.RulesChecked, 1)
	assert.Equal(t, RulePass, outcome.RulesChecked[0].Status)
	assert.Empty(t, outcome.Errors)
	assert.Len(t, outcome.Warnings, 1)
}
