package domain

// WorkflowPhase is one of the two sequential workflow stages.
// Exactly one phase is current at any time.
type WorkflowPhase int

const (
	// PhaseAwaitingTranscript is the initial phase: no parsed transcript yet.
	PhaseAwaitingTranscript WorkflowPhase = iota

	// PhaseTranscriptParsed is entered on a successful parse response.
	PhaseTranscriptParsed

	// PhaseAwaitingDecision is entered implicitly once the request form
	// becomes interactive.
	PhaseAwaitingDecision
)

// String returns the string representation of the phase.
func (p WorkflowPhase) String() string {
	switch p {
	case PhaseAwaitingTranscript:
		return "awaiting_transcript"
	case PhaseTranscriptParsed:
		return "transcript_parsed"
	case PhaseAwaitingDecision:
		return "awaiting_decision"
	default:
		return "unknown"
	}
}

// AfterParseSuccess returns the phase entered after a successful parse
// response. Only PhaseAwaitingTranscript advances; the transition is a
// no-op from any later phase.
func (p WorkflowPhase) AfterParseSuccess() WorkflowPhase {
	if p == PhaseAwaitingTranscript {
		return PhaseTranscriptParsed
	}
	return p
}

// AfterFormShown returns the phase entered once the request form is
// interactive.
func (p WorkflowPhase) AfterFormShown() WorkflowPhase {
	if p == PhaseTranscriptParsed {
		return PhaseAwaitingDecision
	}
	return p
}

// AfterTranscriptRemoved returns the phase entered when the transcript
// attachment is removed. Removal always forces the workflow back to the
// initial phase, whatever the prior phase was.
func (p WorkflowPhase) AfterTranscriptRemoved() WorkflowPhase {
	return PhaseAwaitingTranscript
}

// ParseCompleted reports whether phase one has completed.
func (p WorkflowPhase) ParseCompleted() bool {
	return p == PhaseTranscriptParsed || p == PhaseAwaitingDecision
}
