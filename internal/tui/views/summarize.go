package views

import (
	"fmt"
	"os"
	"strings"

	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/summary"
	"github.com/alkime/itranscript/internal/tui/style"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	summaryTypes = []clinical.SummaryType{
		clinical.SummarySOAP,
		clinical.SummaryDischarge,
		clinical.SummaryReferral,
		clinical.SummaryProgress,
		clinical.SummaryCustom,
	}
	languages = []string{"en", "es", "fr", "de", "zh"}
)

type summarizeKeyMap struct {
	Type     key.Binding
	Visit    key.Binding
	Language key.Binding
	Generate key.Binding
	Copy     key.Binding
	Edit     key.Binding
	Finalize key.Binding
}

func defaultSummarizeKeyMap() summarizeKeyMap {
	return summarizeKeyMap{
		Type: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "note type"),
		),
		Visit: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "visit type"),
		),
		Language: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "language"),
		),
		Generate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "generate"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy note"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit in $EDITOR"),
		),
		Finalize: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "finalize"),
		),
	}
}

func (k summarizeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Type, k.Visit, k.Language, k.Generate, k.Copy, k.Edit, k.Finalize}
}

type summarizeView struct {
	app      *app.App
	keys     summarizeKeyMap
	help     help.Model
	viewport viewport.Model
	editor   EditorLauncher
	kind     int
	visit    int
	lang     int
	flash    flash
}

// NewSummarize builds the note generation view. A nil editor means
// ExecEditor.
func NewSummarize(a *app.App, editor EditorLauncher) tea.Model {
	if editor == nil {
		editor = ExecEditor{}
	}

	s := &summarizeView{
		app:      a,
		keys:     defaultSummarizeKeyMap(),
		help:     help.New(),
		viewport: viewport.New(80, 14),
		editor:   editor,
	}
	for i, v := range clinical.VisitTypes() {
		if v == clinical.VisitFollowUp {
			s.visit = i
		}
	}

	return s
}

func (s *summarizeView) Init() tea.Cmd {
	s.flash.clear()
	s.refresh()
	return nil
}

func (s *summarizeView) request() summary.Request {
	return summary.Request{
		Type:      summaryTypes[s.kind],
		VisitType: clinical.VisitTypes()[s.visit],
		Language:  languages[s.lang],
	}
}

func (s *summarizeView) refresh() {
	n := s.app.Note()
	if n == nil {
		s.viewport.SetContent(style.Muted.Render("No note yet. Press g to generate one."))
		return
	}

	s.viewport.SetContent(renderNote(*n))
}

func (s *summarizeView) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch typedMsg := teaMsg.(type) {
	case tea.WindowSizeMsg:
		s.viewport.Width = max(typedMsg.Width-4, 20)
		s.viewport.Height = max(typedMsg.Height-chrome-2, 5)
		return s, nil

	case EditorDoneMsg:
		s.finishEdit(typedMsg)
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(typedMsg, s.keys.Type):
			s.kind = (s.kind + 1) % len(summaryTypes)
			return s, nil

		case key.Matches(typedMsg, s.keys.Visit):
			s.visit = (s.visit + 1) % len(clinical.VisitTypes())
			return s, nil

		case key.Matches(typedMsg, s.keys.Language):
			s.lang = (s.lang + 1) % len(languages)
			return s, nil

		case key.Matches(typedMsg, s.keys.Generate):
			note, err := s.app.GenerateSummary(s.request())
			if err != nil {
				s.flash.fail(err)
				return s, nil
			}
			s.flash.set("Generated " + note.Title)
			s.refresh()
			return s, nil

		case key.Matches(typedMsg, s.keys.Copy):
			if _, err := s.app.CopySummary(); err != nil {
				s.flash.fail(err)
			} else {
				s.flash.set("Note copied to clipboard")
			}
			return s, nil

		case key.Matches(typedMsg, s.keys.Edit):
			return s, s.startEdit()

		case key.Matches(typedMsg, s.keys.Finalize):
			if err := s.app.FinalizeSummary(); err != nil {
				s.flash.fail(err)
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(teaMsg)

	return s, cmd
}

func (s *summarizeView) startEdit() tea.Cmd {
	n := s.app.Note()
	if n == nil {
		s.flash.fail(app.ErrNoSummary)
		return nil
	}

	path, err := writeDraft(n.Title, n.Content)
	if err != nil {
		s.flash.fail(err)
		return nil
	}

	return s.editor.Launch(path)
}

func (s *summarizeView) finishEdit(msg EditorDoneMsg) {
	defer os.Remove(msg.Path)

	if msg.Err != nil {
		s.flash.fail(fmt.Errorf("editor: %w", msg.Err))
		return
	}

	content, err := readDraft(msg.Path)
	if err != nil {
		s.flash.fail(err)
		return
	}

	if _, err := s.app.EditNote(content); err != nil {
		s.flash.fail(err)
		return
	}

	s.flash.set("Note updated")
	s.refresh()
}

func (s *summarizeView) View() string {
	req := s.request()
	options := strings.Join([]string{
		labelled("Type", req.Type.Label()),
		labelled("Visit", string(req.VisitType)),
		labelled("Language", summary.Languages[req.Language]),
	}, "  ")

	return section(
		title("Summarize", "Generate clinical notes"),
		options,
		style.Viewport.Render(s.viewport.View()),
		s.flash.View(),
		renderHelp(s.help, s.keys),
	)
}

func renderNote(n summary.Note) string {
	var sb strings.Builder
	sb.WriteString(style.Label.Render(n.Title))
	sb.WriteString("\n\n")
	sb.WriteString(n.Content)

	if len(n.Warnings) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(style.Warning.Render("Language check"))
		for _, w := range n.Warnings {
			fmt.Fprintf(&sb, "\n%s %q x%d, try: %s", style.Bullet.Render("•"),
				w.Phrase, w.Count, strings.Join(w.Suggestions, ", "))
		}
	}

	return sb.String()
}
