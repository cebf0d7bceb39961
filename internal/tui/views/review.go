package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/tui/style"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// chrome is the number of rows around a viewport taken by the header,
// title, flash and help lines.
const chrome = 12

type reviewKeyMap struct {
	Suppressed key.Binding
	Copy       key.Binding
	Complete   key.Binding
	Up         key.Binding
	Down       key.Binding
}

func defaultReviewKeyMap() reviewKeyMap {
	return reviewKeyMap{
		Suppressed: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "show/hide suppressed"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy transcript"),
		),
		Complete: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "mark reviewed"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

func (k reviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Suppressed, k.Copy, k.Complete, k.Up, k.Down}
}

type reviewView struct {
	app            *app.App
	keys           reviewKeyMap
	help           help.Model
	viewport       viewport.Model
	showSuppressed bool
	hidden         int
	flash          flash
}

// NewReview builds the transcript and insights view.
func NewReview(a *app.App) tea.Model {
	return &reviewView{
		app:      a,
		keys:     defaultReviewKeyMap(),
		help:     help.New(),
		viewport: viewport.New(80, 16),
	}
}

func (r *reviewView) Init() tea.Cmd {
	r.flash.clear()
	r.refresh()
	return nil
}

func (r *reviewView) refresh() {
	rv, err := r.app.Review(r.showSuppressed)
	if errors.Is(err, app.ErrNoTranscript) {
		r.hidden = 0
		r.viewport.SetContent(style.Muted.Render("Nothing captured yet. Record or upload audio first."))
		return
	}

	r.hidden = rv.SuppressedHidden
	r.viewport.SetContent(renderReview(rv))
}

func (r *reviewView) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch typedMsg := teaMsg.(type) {
	case tea.WindowSizeMsg:
		r.viewport.Width = max(typedMsg.Width-4, 20)
		r.viewport.Height = max(typedMsg.Height-chrome, 5)
		r.refresh()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(typedMsg, r.keys.Suppressed):
			r.showSuppressed = !r.showSuppressed
			r.refresh()
			return r, nil

		case key.Matches(typedMsg, r.keys.Copy):
			if _, err := r.app.CopyTranscript(); err != nil {
				r.flash.fail(err)
			} else {
				r.flash.set("Transcript copied to clipboard")
			}
			return r, nil

		case key.Matches(typedMsg, r.keys.Complete):
			if err := r.app.CompleteReview(); err != nil {
				r.flash.fail(err)
			}
			return r, nil
		}
	}

	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(teaMsg)

	return r, cmd
}

func (r *reviewView) View() string {
	sub := r.app.Store.DocumentStatus().Label()
	if r.hidden > 0 {
		sub += fmt.Sprintf(" · %d suppressed insights hidden", r.hidden)
	}

	return section(
		title("Review", sub),
		style.Viewport.Render(r.viewport.View()),
		r.flash.View(),
		renderHelp(r.help, r.keys),
	)
}

func renderReview(rv app.Review) string {
	var sb strings.Builder

	t := rv.Transcript
	if t.Title != "" {
		sb.WriteString(style.Label.Render(t.Title))
		sb.WriteString("\n")
	}
	for _, seg := range t.Segments {
		speaker := seg.Speaker
		if speaker == "" {
			speaker = string(seg.SpeakerRole)
		}
		text := seg.Text
		if seg.IsRedacted {
			text = style.Muted.Render("[redacted] " + seg.RedactedReason)
		}
		fmt.Fprintf(&sb, "%s %s %s\n",
			style.Muted.Render("["+timestamp(seg.StartTime)+"]"),
			style.Label.Render(speaker+":"),
			text)
	}

	if len(rv.QualityWarnings) > 0 {
		sb.WriteString("\n")
		sb.WriteString(style.Title.Render("Quality warnings"))
		for _, w := range rv.QualityWarnings {
			sb.WriteString("\n")
			sb.WriteString(style.Severity(w.Severity).Render("! " + w.Message))
		}
		sb.WriteString("\n")
	}

	if len(rv.SafetyAlerts) > 0 {
		sb.WriteString("\n")
		sb.WriteString(style.Title.Render("Safety alerts"))
		for _, al := range rv.SafetyAlerts {
			sb.WriteString("\n")
			sb.WriteString(style.Severity(al.Severity).Render("▲ " + al.Title))
			sb.WriteString(" ")
			sb.WriteString(al.Description)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(style.Title.Render("Insights"))
	for _, in := range rv.Insights {
		sb.WriteString("\n")
		sb.WriteString(renderInsight(in))
	}
	sb.WriteString("\n")

	if len(rv.Differentials) > 0 {
		sb.WriteString("\n")
		sb.WriteString(style.Title.Render("Differentials"))
		for _, d := range rv.Differentials {
			fmt.Fprintf(&sb, "\n%s %s %s", style.Bullet.Render("•"), d.Condition,
				style.Muted.Render("("+string(d.Likelihood)+")"))
		}
		sb.WriteString("\n")
	}

	if len(rv.Tasks) > 0 {
		sb.WriteString("\n")
		sb.WriteString(style.Title.Render("Tasks"))
		for _, task := range rv.Tasks {
			box := "[ ]"
			if task.Completed {
				box = "[x]"
			}
			fmt.Fprintf(&sb, "\n%s %s %s", box, task.Task, style.Muted.Render(string(task.Priority)))
		}
	}

	return sb.String()
}

func renderInsight(in clinical.ClinicalInsight) string {
	var sb strings.Builder
	sb.WriteString(style.Bullet.Render("• "))
	sb.WriteString(style.Label.Render(in.Title))
	sb.WriteString(" ")
	sb.WriteString(style.Muted.Render(string(in.Type) + ", " + string(in.Confidence) + " confidence"))
	if in.IsSuppressed {
		sb.WriteString(" ")
		sb.WriteString(style.Warning.Render("suppressed: " + in.SuppressionReason))
	}
	for _, line := range in.Content {
		sb.WriteString("\n    ")
		sb.WriteString(line)
	}

	return sb.String()
}
