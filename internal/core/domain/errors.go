package domain

import "errors"

// Domain errors represent local precondition failures. They are
// surfaced to the user immediately and never reach the network.
var (
	// ErrNoTranscript indicates no transcript attachment is selected.
	ErrNoTranscript = errors.New("transcript attachment required")

	// ErrNoCourseSelected indicates no course option is chosen.
	ErrNoCourseSelected = errors.New("no course selected")

	// ErrAcknowledgmentRequired indicates the declaration checkbox is
	// not ticked.
	ErrAcknowledgmentRequired = errors.New("acknowledgment required")

	// ErrUnsupportedAttachment indicates the file failed the upload
	// type/extension policy.
	ErrUnsupportedAttachment = errors.New("unsupported attachment type")

	// ErrSlotDisabled indicates a selection was attempted while the slot
	// was not accepting files.
	ErrSlotDisabled = errors.New("attachment slot disabled")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

// UserFacing is implemented by errors that carry their own
// display text, such as classified gateway errors.
type UserFacing interface {
	UserMessage() string
}

// UserMessage maps an error to the Arabic text shown to the student.
// Unrecognised errors fall back to the generic processing message.
func UserMessage(err error) string {
	var uf UserFacing
	if errors.As(err, &uf) {
		return uf.UserMessage()
	}
	switch {
	case errors.Is(err, ErrNoTranscript):
		return MsgUploadTranscriptFirst
	case errors.Is(err, ErrNoCourseSelected):
		return MsgSelectCourse
	case errors.Is(err, ErrAcknowledgmentRequired):
		return MsgAcknowledgmentRequired
	case errors.Is(err, ErrUnsupportedAttachment):
		return MsgOnlyPDF
	default:
		return MsgProcessFailed
	}
}
