// Package upload provides the phase-one transcript upload view.
package upload

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/components/fileslot"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/keymap"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/messages"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/styles"
	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
	"github.com/uot-apps/withdrawal-cli/internal/core/ports/driving"
)

// View is the transcript upload view. It owns the transcript slot and
// dispatches the parse call once a file is bound.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	workflow driving.WorkflowService
	ctx      context.Context

	slot    *fileslot.Slot
	picker  filepicker.Model
	picking bool
	spin    spinner.Model
	busy    bool
	notice  string

	width  int
	height int
	ready  bool
}

// NewView creates the upload view.
func NewView(s *styles.Styles, km *keymap.KeyMap, workflow driving.WorkflowService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	fp := filepicker.New()
	if home, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = home
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(s.Theme().Primary)

	return &View{
		styles:   s,
		keymap:   km,
		workflow: workflow,
		ctx:      context.Background(),
		slot: fileslot.New(s, domain.SlotTranscript,
			"السجل الأكاديمي",
			"اسحب الملف إلى مجلد الإسقاط أو اضغط o لاختيار ملف"),
		picker: fp,
		spin:   sp,
		width:  80,
		height: 24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the upload view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case spinner.TickMsg:
		if !v.busy {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FileDropped:
		return v.handleDrop(msg.Path)

	case messages.ParseCompleted:
		v.busy = false
		v.slot.Arm()
		if msg.Err != nil {
			// Failed parses reset the slot so the student can retry.
			v.slot.Remove()
			v.notice = domain.UserMessage(msg.Err)
		}
		return v, nil
	}

	if v.picking {
		var cmd tea.Cmd
		v.picker, cmd = v.picker.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.busy {
		return v, nil
	}

	if v.picking {
		if msg.Type == tea.KeyEsc {
			v.picking = false
			return v, nil
		}
		var cmd tea.Cmd
		v.picker, cmd = v.picker.Update(msg)
		if ok, path := v.picker.DidSelectFile(msg); ok {
			v.picking = false
			return v.bindFile(path, false)
		}
		return v, cmd
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Pick):
		v.picking = true
		return v, v.picker.Init()
	case keymap.Matches(key, v.keymap.Select) && !v.slot.HasFile():
		v.picking = true
		return v, v.picker.Init()
	case keymap.Matches(key, v.keymap.Remove) && v.slot.HasFile():
		v.slot.Remove()
		v.notice = ""
		return v, func() tea.Msg {
			return messages.AttachmentRemoved{Slot: domain.SlotTranscript}
		}
	}
	return v, nil
}

// handleDrop binds a file that arrived through the drop inbox. Dropped
// files are validated against the upload policy; the picker path is
// not.
func (v *View) handleDrop(path string) (*View, tea.Cmd) {
	if v.busy {
		return v, nil
	}
	return v.bindFile(path, true)
}

func (v *View) bindFile(path string, viaDrop bool) (*View, tea.Cmd) {
	att, err := domain.AttachmentFromFile(path)
	if err != nil {
		v.notice = domain.MsgParseFailed
		return v, nil
	}
	if err := v.slot.Select(att, viaDrop); err != nil {
		v.notice = domain.UserMessage(err)
		return v, nil
	}

	v.notice = ""
	v.busy = true
	v.slot.Disarm()
	return v, tea.Batch(v.spin.Tick, v.parseCmd(att))
}

// parseCmd dispatches the remote parse call.
func (v *View) parseCmd(att domain.Attachment) tea.Cmd {
	return func() tea.Msg {
		record, err := v.workflow.ParseTranscript(v.ctx, att)
		return messages.ParseCompleted{Record: record, Err: err}
	}
}

// View renders the upload view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("طلب الاعتذار عن مقرر دراسي"),
		"",
		v.slot.View(),
	}

	if v.picking {
		sections = append(sections, "", v.picker.View())
	}

	if v.busy {
		sections = append(sections, "",
			v.spin.View()+v.styles.Muted.Render(" جاري تحليل السجل الأكاديمي..."))
	}

	if v.notice != "" {
		sections = append(sections, "", v.styles.Banner.Render(v.notice))
	}

	sections = append(sections, "",
		v.styles.Help.Render("o: اختيار ملف · x: إزالة · ctrl+c: خروج"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.picker.Height = height - 10
}

// Busy reports whether a parse call is in flight.
func (v *View) Busy() bool {
	return v.busy
}

// Notice returns the current notice text.
func (v *View) Notice() string {
	return v.notice
}

// Slot returns the transcript slot.
func (v *View) Slot() *fileslot.Slot {
	return v.slot
}

// Picking reports whether the file picker is open.
func (v *View) Picking() bool {
	return v.picking
}

// Reset returns the view to its initial empty state.
func (v *View) Reset() {
	v.slot.Remove()
	v.slot.Arm()
	v.busy = false
	v.picking = false
	v.notice = ""
}
