// Package request provides the phase-two withdrawal request form view.
package request

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/components/fileslot"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/keymap"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/messages"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/styles"
	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
	"github.com/uot-apps/withdrawal-cli/internal/core/ports/driving"
)

// Form focus positions, in tab order.
const (
	focusCourses = iota
	focusSemester
	focusYear
	focusReasonType
	focusReason
	focusSupporting
	focusAck
	focusCount
)

// View is the withdrawal request form. It is populated from the parsed
// student record and dispatches the validation call on submit.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	workflow driving.WorkflowService
	ctx      context.Context

	record     *domain.ParsedStudentRecord
	transcript domain.Attachment

	courseCursor   int
	selectedCourse *domain.Course

	semester   textinput.Model
	year       textinput.Model
	reasonType textinput.Model
	reason     textinput.Model

	supporting *fileslot.Slot
	picker     filepicker.Model
	picking    bool

	acknowledged bool
	focus        int

	spin   spinner.Model
	busy   bool
	notice string

	width  int
	height int
	ready  bool
}

// NewView creates the request form view.
func NewView(s *styles.Styles, km *keymap.KeyMap, workflow driving.WorkflowService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 128
		ti.Width = 40
		return ti
	}

	fp := filepicker.New()
	if home, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = home
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(s.Theme().Primary)

	return &View{
		styles:     s,
		keymap:     km,
		workflow:   workflow,
		ctx:        context.Background(),
		semester:   newInput("الفصل الدراسي"),
		year:       newInput("العام الدراسي (هـ)"),
		reasonType: newInput("نوع السبب"),
		reason:     newInput("سبب الاعتذار"),
		supporting: fileslot.New(s, domain.SlotSupporting,
			"المستند الداعم",
			"اضغط o لاختيار المستند الداعم لسبب الاعتذار"),
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

// SetRecord populates the form from the parsed student record.
// Semester and year are prefilled when the parser found them.
func (v *View) SetRecord(record *domain.ParsedStudentRecord) {
	v.record = record
	v.courseCursor = 0
	v.selectedCourse = nil
	if record == nil {
		return
	}
	if record.CurrentSemester != nil {
		v.semester.SetValue(strconv.Itoa(*record.CurrentSemester))
	}
	if record.CurrentYear != nil {
		v.year.SetValue(strconv.Itoa(*record.CurrentYear))
	}
}

// SetTranscript binds the transcript attachment carried over from the
// upload phase.
func (v *View) SetTranscript(att domain.Attachment) {
	v.transcript = att
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the request view.
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
		if v.busy {
			return v, nil
		}
		return v.bindSupporting(msg.Path, true)

	case messages.SubmitCompleted:
		v.busy = false
		if msg.Err != nil {
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

//nolint:gocognit,gocyclo // central form key handler
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
			return v.bindSupporting(path, false)
		}
		return v, cmd
	}

	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Submit):
		return v.submit()
	case keymap.Matches(key, v.keymap.NextField):
		v.setFocus((v.focus + 1) % focusCount)
		return v, nil
	case keymap.Matches(key, v.keymap.PrevField):
		v.setFocus((v.focus + focusCount - 1) % focusCount)
		return v, nil
	}

	switch v.focus {
	case focusCourses:
		return v.handleCoursesKey(msg)

	case focusSupporting:
		switch {
		case keymap.Matches(key, v.keymap.Pick), keymap.Matches(key, v.keymap.Select):
			v.picking = true
			return v, v.picker.Init()
		case keymap.Matches(key, v.keymap.Remove) && v.supporting.HasFile():
			v.supporting.Remove()
			return v, func() tea.Msg {
				return messages.AttachmentRemoved{Slot: domain.SlotSupporting}
			}
		}
		return v, nil

	case focusAck:
		if keymap.Matches(key, v.keymap.Acknowledge) || keymap.Matches(key, v.keymap.Select) {
			v.acknowledged = !v.acknowledged
		}
		return v, nil

	default:
		return v.updateFocusedInput(msg)
	}
}

func (v *View) handleCoursesKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.record == nil || len(v.record.Courses) == 0 {
		return v, nil
	}
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Up):
		if v.courseCursor > 0 {
			v.courseCursor--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.courseCursor < len(v.record.Courses)-1 {
			v.courseCursor++
		}
	case keymap.Matches(key, v.keymap.Select), keymap.Matches(key, v.keymap.Acknowledge):
		course := v.record.Courses[v.courseCursor]
		v.selectedCourse = &course
	}
	return v, nil
}

func (v *View) updateFocusedInput(msg tea.KeyMsg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	switch v.focus {
	case focusSemester:
		v.semester, cmd = v.semester.Update(msg)
	case focusYear:
		v.year, cmd = v.year.Update(msg)
	case focusReasonType:
		v.reasonType, cmd = v.reasonType.Update(msg)
	case focusReason:
		v.reason, cmd = v.reason.Update(msg)
	}
	return v, cmd
}

func (v *View) setFocus(focus int) {
	v.focus = focus
	v.semester.Blur()
	v.year.Blur()
	v.reasonType.Blur()
	v.reason.Blur()
	v.supporting.Blur()

	switch focus {
	case focusSemester:
		v.semester.Focus()
	case focusYear:
		v.year.Focus()
	case focusReasonType:
		v.reasonType.Focus()
	case focusReason:
		v.reason.Focus()
	case focusSupporting:
		v.supporting.Focus()
	}
}

func (v *View) bindSupporting(path string, viaDrop bool) (*View, tea.Cmd) {
	att, err := domain.AttachmentFromFile(path)
	if err != nil {
		v.notice = domain.MsgProcessFailed
		return v, nil
	}
	if err := v.supporting.Select(att, viaDrop); err != nil {
		v.notice = domain.UserMessage(err)
		return v, nil
	}
	v.notice = ""
	return v, nil
}

// Form assembles the submission snapshot from the current form state.
func (v *View) Form() domain.WithdrawalForm {
	form := domain.WithdrawalForm{
		Transcript:    v.transcript,
		SupportingDoc: v.supporting.Attachment(),
		Acknowledged:  v.acknowledged,
		Semester:      v.semester.Value(),
		Year:          v.year.Value(),
		ReasonType:    v.reasonType.Value(),
		Reason:        v.reason.Value(),
	}
	if v.selectedCourse != nil {
		form.SelectedCourse = *v.selectedCourse
	}
	if v.record != nil {
		form.StudentName = v.record.Student.Name
		form.StudentID = v.record.Student.ID.String()
		form.Degree = v.record.Student.Degree
		form.Major = v.record.Student.Department
	}
	return form
}

// submit dispatches the validation call.
func (v *View) submit() (*View, tea.Cmd) {
	form := v.Form()

	v.notice = ""
	v.busy = true
	return v, tea.Batch(v.spin.Tick, func() tea.Msg {
		outcome, err := v.workflow.Submit(v.ctx, form)
		return messages.SubmitCompleted{Outcome: outcome, Err: err}
	})
}

// View renders the request form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("نموذج طلب الاعتذار"),
		"",
		v.renderSummary(),
	}

	if banner := v.renderSemesterBanner(); banner != "" {
		sections = append(sections, "", banner)
	}

	sections = append(sections, "", v.renderCourses())
	sections = append(sections,
		"",
		v.renderInput("الفصل", v.semester, focusSemester),
		v.renderInput("العام", v.year, focusYear),
		v.renderInput("نوع السبب", v.reasonType, focusReasonType),
		v.renderInput("السبب", v.reason, focusReason),
		"",
		v.supporting.View(),
		"",
		v.renderAcknowledge(),
	)

	if v.picking {
		sections = append(sections, "", v.picker.View())
	}

	if v.busy {
		sections = append(sections, "",
			v.spin.View()+v.styles.Muted.Render(" جاري معالجة الطلب..."))
	}

	if v.notice != "" {
		sections = append(sections, "", v.styles.Banner.Render(v.notice))
	}

	sections = append(sections, "",
		v.styles.Help.Render("tab: التنقل · space: تحديد · ctrl+s: إرسال · esc: رجوع"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// orNotAvailable substitutes the placeholder for empty fields.
func orNotAvailable(value string) string {
	if value == "" {
		return domain.MsgNotAvailable
	}
	return value
}

func (v *View) renderSummary() string {
	if v.record == nil {
		return ""
	}
	s := v.record.Student
	rows := []string{
		fmt.Sprintf("الاسم: %s", orNotAvailable(s.Name)),
		fmt.Sprintf("الرقم الأكاديمي: %s", orNotAvailable(s.ID.String())),
		fmt.Sprintf("الكلية: %s", orNotAvailable(s.College)),
		fmt.Sprintf("التخصص: %s", orNotAvailable(s.Department)),
		fmt.Sprintf("الدرجة: %s", orNotAvailable(s.Degree)),
		fmt.Sprintf("المعدل التراكمي: %s", orNotAvailable(s.GPA.String())),
	}
	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return v.styles.Border.Padding(0, 1).Render(content)
}

func (v *View) renderSemesterBanner() string {
	if v.record == nil || !v.record.HasSemesterInfo() {
		return ""
	}
	return v.styles.Subtitle.Render(fmt.Sprintf(
		"الفصل الدراسي الحالي: الفصل %d - هـ%d",
		*v.record.CurrentSemester, *v.record.CurrentYear))
}

func (v *View) renderCourses() string {
	header := v.styles.Subtitle.Render("المقرر المطلوب الاعتذار عنه")
	if v.record == nil || len(v.record.Courses) == 0 {
		return header + "\n" + v.styles.Muted.Render("لا توجد مقررات مسجلة")
	}

	lines := make([]string, 0, len(v.record.Courses))
	for i, course := range v.record.Courses {
		radio := "( )"
		if v.selectedCourse != nil && v.selectedCourse.Code == course.Code {
			radio = "(•)"
		}
		line := fmt.Sprintf("%s %s — %s", radio, course.Code, course.Name)
		if v.focus == focusCourses && i == v.courseCursor {
			line = v.styles.Selected.Render(line)
		} else {
			line = v.styles.Normal.Render(line)
		}
		lines = append(lines, line)
	}
	return header + "\n" + lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *View) renderInput(label string, ti textinput.Model, focus int) string {
	rendered := v.styles.Subtitle.Render(label+": ") + ti.View()
	if v.focus == focus {
		return v.styles.Selected.Render("> ") + rendered
	}
	return "  " + rendered
}

func (v *View) renderAcknowledge() string {
	box := "[ ]"
	if v.acknowledged {
		box = "[x]"
	}
	line := box + " أقر بصحة البيانات الواردة في هذا الطلب"
	if v.focus == focusAck {
		return v.styles.Selected.Render(line)
	}
	return v.styles.Normal.Render(line)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.picker.Height = height - 14
}

// Busy reports whether a submit call is in flight.
func (v *View) Busy() bool {
	return v.busy
}

// Notice returns the current notice text.
func (v *View) Notice() string {
	return v.notice
}

// Acknowledged reports the declaration checkbox state.
func (v *View) Acknowledged() bool {
	return v.acknowledged
}

// SelectedCourse returns the chosen course, or nil.
func (v *View) SelectedCourse() *domain.Course {
	return v.selectedCourse
}

// Supporting returns the supporting document slot.
func (v *View) Supporting() *fileslot.Slot {
	return v.supporting
}

// Reset clears all form state.
func (v *View) Reset() {
	v.record = nil
	v.transcript = domain.Attachment{}
	v.courseCursor = 0
	v.selectedCourse = nil
	v.semester.Reset()
	v.year.Reset()
	v.reasonType.Reset()
	v.reason.Reset()
	v.supporting.Remove()
	v.acknowledged = false
	v.focus = focusCourses
	v.busy = false
	v.picking = false
	v.notice = ""
}
