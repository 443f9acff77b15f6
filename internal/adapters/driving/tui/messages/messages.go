// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewUpload is the phase-one transcript upload view.
	ViewUpload ViewType = iota
	// ViewRequest is the phase-two withdrawal request form.
	ViewRequest
	// ViewResults is the full-screen validation outcome overlay.
	ViewResults
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewUpload:
		return "upload"
	case ViewRequest:
		return "request"
	case ViewResults:
		return "results"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// AttachmentRemoved signals an attachment slot was cleared.
type AttachmentRemoved struct {
	Slot domain.SlotKind
}

// FileDropped signals a file arrived in the drop inbox.
type FileDropped struct {
	Path string
}

// ParseCompleted carries the phase-one parse result back to the model.
type ParseCompleted struct {
	Record *domain.ParsedStudentRecord
	Err    error
}

// SubmitCompleted carries the phase-two validation outcome back to the
// model.
type SubmitCompleted struct {
	Outcome *domain.ValidationOutcome
	Err     error
}

// Quit signals the application should exit.
type Quit struct{}
