package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/keymap"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/messages"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/styles"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/views/request"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/views/results"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/views/upload"
	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// uploadView is the phase-one transcript upload view.
	uploadView *upload.View

	// requestView is the phase-two withdrawal request form.
	requestView *request.View

	// resultsView is the validation outcome overlay.
	resultsView *results.View

	// drops delivers files placed in the drop inbox, when watching.
	drops <-chan string

	// phase tracks the workflow stage; it gates which view is reachable.
	phase domain.WorkflowPhase

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		uploadView:  upload.NewView(s, km, ports.Workflow),
		requestView: request.NewView(s, km, ports.Workflow),
		resultsView: results.NewView(s),
		phase:       domain.PhaseAwaitingTranscript,
		currentView: messages.ViewUpload,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.uploadView.WithContext(ctx)
	a.requestView.WithContext(ctx)
	return a
}

// WithDrops wires the drop inbox channel into the app.
func (a *App) WithDrops(drops <-chan string) *App {
	a.drops = drops
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("الاعتذار عن مقرر دراسي"),
	}
	if a.drops != nil {
		cmds = append(cmds, a.waitForDrop())
	}
	return tea.Batch(cmds...)
}

// waitForDrop blocks on the inbox channel and surfaces the next dropped
// file as a message. It is re-armed after every delivery.
func (a *App) waitForDrop() tea.Cmd {
	return func() tea.Msg {
		path, ok := <-a.drops
		if !ok {
			return nil
		}
		return messages.FileDropped{Path: path}
	}
}

// Update implements tea.Model.
//
//nolint:gocognit,gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.uploadView.SetDimensions(msg.Width, msg.Height)
		a.requestView.SetDimensions(msg.Width, msg.Height)
		a.resultsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewUpload:
			a.uploadView, cmd = a.uploadView.Update(msg)
			return a, cmd

		case messages.ViewRequest:
			// Esc from the form goes back to the upload view. The parsed
			// record is kept; returning to the form needs no new parse.
			if msg.Type == tea.KeyEsc && !a.requestView.Busy() {
				a.currentView = messages.ViewUpload
				return a, nil
			}
			a.requestView, cmd = a.requestView.Update(msg)
			return a, cmd

		case messages.ViewResults:
			// The overlay captures all input; esc or enter closes it.
			if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
				a.currentView = messages.ViewRequest
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.FileDropped:
		// Route the drop to the active view, then re-arm the listener.
		switch a.currentView {
		case messages.ViewUpload:
			a.uploadView, cmd = a.uploadView.Update(msg)
		case messages.ViewRequest:
			a.requestView, cmd = a.requestView.Update(msg)
		case messages.ViewResults:
			// Drops are ignored while the overlay is open.
		}
		return a, tea.Batch(cmd, a.waitForDrop())

	case messages.ParseCompleted:
		a.uploadView, cmd = a.uploadView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
			return a, cmd
		}

		a.err = nil
		a.phase = a.phase.AfterParseSuccess()
		a.requestView.SetRecord(msg.Record)
		if att := a.uploadView.Slot().Attachment(); att != nil {
			a.requestView.SetTranscript(*att)
		}
		a.currentView = messages.ViewRequest
		a.phase = a.phase.AfterFormShown()
		return a, tea.Batch(cmd, a.requestView.Init())

	case messages.SubmitCompleted:
		a.requestView, cmd = a.requestView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
			return a, cmd
		}

		a.err = nil
		a.resultsView.SetOutcome(msg.Outcome)
		a.currentView = messages.ViewResults
		return a, cmd

	case messages.AttachmentRemoved:
		if msg.Slot == domain.SlotTranscript {
			// Removing the transcript rewinds the whole workflow.
			a.phase = a.phase.AfterTranscriptRemoved()
			a.requestView.Reset()
			a.resultsView.SetOutcome(nil)
			a.currentView = messages.ViewUpload
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (spinner ticks, picker IO) to the active view.
	switch a.currentView {
	case messages.ViewUpload:
		a.uploadView, cmd = a.uploadView.Update(msg)
	case messages.ViewRequest:
		a.requestView, cmd = a.requestView.Update(msg)
	case messages.ViewResults:
		// The overlay is inert.
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewUpload:
		return a.uploadView.View()
	case messages.ViewRequest:
		return a.requestView.View()
	case messages.ViewResults:
		return a.resultsView.View()
	default:
		return a.uploadView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Phase returns the current workflow phase.
func (a *App) Phase() domain.WorkflowPhase {
	return a.phase
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.uploadView.SetDimensions(width, height)
	a.requestView.SetDimensions(width, height)
	a.resultsView.SetDimensions(width, height)
}
