// Package style defines lipgloss styles for the TUI.
package style

import (
	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/workflow"
	"github.com/charmbracelet/lipgloss"
)

// UI styles using lipgloss.
// These are package-level for convenience; lipgloss styles are value types
// and safe for concurrent use.
//
// Variable names omit the "Style" suffix since they're accessed via the
// style package (style.Title reads better than style.TitleStyle).
var (
	// Title is used for screen titles and headers.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Subtitle is used for secondary text.
	Subtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	// Viewport is used for the transcript and note borders.
	Viewport = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	Progress = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	// Label is used for inline labels (e.g., "Patient:", "MRN:").
	Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	Bullet = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205"))

	// Selected marks the highlighted row of a list.
	Selected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	// Stepper segment styles.
	StepActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Underline(true)
	StepComplete = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
	StepPending = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	StepLocked = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Strikethrough(true)

	badge = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true)
)

// StatusBadge renders the document lifecycle badge.
func StatusBadge(s workflow.DocumentStatus) string {
	var bg lipgloss.Color
	switch s {
	case workflow.StatusReviewed:
		bg = lipgloss.Color("33")
	case workflow.StatusFinal:
		bg = lipgloss.Color("28")
	default:
		bg = lipgloss.Color("240")
	}

	return badge.Background(bg).Foreground(lipgloss.Color("255")).Render(s.Label())
}

// Severity returns the text style for an alert severity.
func Severity(s clinical.Severity) lipgloss.Style {
	switch s {
	case clinical.SeverityHigh:
		return Error
	case clinical.SeverityMedium:
		return Warning
	default:
		return Muted
	}
}
