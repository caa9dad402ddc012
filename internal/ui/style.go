package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	overdueStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	completedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	priorityHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	idStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

// Styler renders a table cell with ANSI styling.
type Styler func(string) string

// PlainStyler returns values unchanged.
func PlainStyler(value string) string { return value }

// Styles bundles the stylers used by table and detail rendering. Every field
// is safe to call; when styling is disabled they all pass values through.
type Styles struct {
	ID           Styler
	Overdue      Styler
	Completed    Styler
	HighPriority Styler
}

// NewStyles returns stylers for the current environment. Styling is disabled
// when noColor is set, NO_COLOR is present, TERM is dumb, or stdout is not a
// terminal.
func NewStyles(noColor bool) Styles {
	if noColor || !ansiEnabled() {
		return Styles{
			ID:           PlainStyler,
			Overdue:      PlainStyler,
			Completed:    PlainStyler,
			HighPriority: PlainStyler,
		}
	}

	return Styles{
		ID:           func(s string) string { return idStyle.Render(s) },
		Overdue:      func(s string) string { return overdueStyle.Render(s) },
		Completed:    func(s string) string { return completedStyle.Render(s) },
		HighPriority: func(s string) string { return priorityHighStyle.Render(s) },
	}
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
