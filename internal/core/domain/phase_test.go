package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowPhase_AfterParseSuccess(t *testing.T) {
	assert.Equal(t, PhaseTranscriptParsed, PhaseAwaitingTranscript.AfterParseSuccess())
	// Later phases do not regress.
	assert.Equal(t, PhaseTranscriptParsed, PhaseTranscriptParsed.AfterParseSuccess())
	assert.Equal(t, PhaseAwaitingDecision, PhaseAwaitingDecision.AfterParseSuccess())
}

func TestWorkflowPhase_AfterFormShown(t *testing.T) {
	assert.Equal(t, PhaseAwaitingDecision, PhaseTranscriptParsed.AfterFormShown())
	assert.Equal(t, PhaseAwaitingTranscript, PhaseAwaitingTranscript.AfterFormShown())
}

func TestWorkflowPhase_AfterTranscriptRemoved(t *testing.T) {
	// Removal forces the initial phase regardless of prior phase.
	for _, p := range []WorkflowPhase{PhaseAwaitingTranscript, PhaseTranscriptParsed, PhaseAwaitingDecision} {
		assert.Equal(t, PhaseAwaitingTranscript, p.AfterTranscriptRemoved())
	}
}

func TestWorkflowPhase_ParseCompleted(t *testing.T) {
	assert.False(t, PhaseAwaitingTranscript.ParseCompleted())
	assert.True(t, PhaseTranscriptParsed.ParseCompleted())
	assert.True(t, PhaseAwaitingDecision.ParseCompleted())
}

func TestWorkflowPhase_String(t *testing.T) {
	assert.Equal(t, "awaiting_transcript", PhaseAwaitingTranscript.String())
	assert.Equal(t, "transcript_parsed", PhaseTranscriptParsed.String())
	assert.Equal(t, "awaiting_decision", PhaseAwaitingDecision.String())
	assert.Equal(t, "unknown", WorkflowPhase(99).String())
}
