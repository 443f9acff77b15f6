package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui/styles"
	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

// stdoutIsTerminal reports whether stdout is attached to a terminal.
// Styled output is suppressed when piping. Overridable for tests.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var outputStyles = styles.DefaultStyles()

// render applies the style only when writing to a terminal.
func render(style lipgloss.Style, text string) string {
	if !stdoutIsTerminal() {
		return text
	}
	return style.Render(text)
}

// orNotAvailable substitutes the placeholder for empty fields.
func orNotAvailable(value string) string {
	if value == "" {
		return domain.MsgNotAvailable
	}
	return value
}
