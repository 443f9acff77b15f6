// Package fileslot provides the attachment slot component. A slot
// holds at most one file and renders either the selected file's label
// or its empty-state prompt.
package fileslot

import (
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/styles"
	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

// Slot is one attachment slot.
type Slot struct {
	styles *styles.Styles

	kind       domain.SlotKind
	title      string
	prompt     string
	attachment *domain.Attachment
	armed      bool
	focused    bool
}

// New creates a slot for the given kind. The prompt is shown while the
// slot is empty.
func New(s *styles.Styles, kind domain.SlotKind, title, prompt string) *Slot {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Slot{
		styles: s,
		kind:   kind,
		title:  title,
		prompt: prompt,
		armed:  true,
	}
}

// Kind returns the slot kind.
func (s *Slot) Kind() domain.SlotKind {
	return s.kind
}

// Select binds a file to the slot, replacing any previous attachment.
// Dropped files are checked against the upload policy; files chosen
// through the picker are accepted as-is.
func (s *Slot) Select(att domain.Attachment, viaDrop bool) error {
	if !s.armed {
		return domain.ErrSlotDisabled
	}
	if viaDrop && !att.Accepted() {
		return domain.ErrUnsupportedAttachment
	}
	s.attachment = &att
	return nil
}

// Remove clears the slot.
func (s *Slot) Remove() {
	s.attachment = nil
}

// Attachment returns the bound attachment, or nil.
func (s *Slot) Attachment() *domain.Attachment {
	return s.attachment
}

// HasFile reports whether a file is bound.
func (s *Slot) HasFile() bool {
	return s.attachment != nil
}

// Arm enables the slot for selection.
func (s *Slot) Arm() {
	s.armed = true
}

// Disarm disables the slot; selection attempts fail until rearmed.
func (s *Slot) Disarm() {
	s.armed = false
}

// Armed reports whether the slot accepts selections.
func (s *Slot) Armed() bool {
	return s.armed
}

// Focus marks the slot as the active form element.
func (s *Slot) Focus() {
	s.focused = true
}

// Blur removes focus.
func (s *Slot) Blur() {
	s.focused = false
}

// Focused reports whether the slot has focus.
func (s *Slot) Focused() bool {
	return s.focused
}

// View renders the slot.
func (s *Slot) View() string {
	title := s.styles.Subtitle.Render(s.title)

	var body string
	switch {
	case s.attachment != nil:
		body = s.styles.Success.Render("📄 " + s.attachment.Label())
	case !s.armed:
		body = s.styles.Muted.Render(s.prompt)
	default:
		body = s.styles.Normal.Render(s.prompt)
	}

	box := s.styles.Border
	if s.focused {
		box = box.BorderForeground(s.styles.Theme().Primary)
	}
	return title + "\n" + box.Padding(0, 1).Render(body)
}
