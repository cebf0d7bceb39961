package views

import (
	"strconv"

	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/tui/style"
	"github.com/alkime/itranscript/internal/workflow"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type hubKeyMap struct {
	Search         key.Binding
	Done           key.Binding
	Open           key.Binding
	Link           key.Binding
	Unlink         key.Binding
	Transcriptions key.Binding
}

func defaultHubKeyMap() hubKeyMap {
	return hubKeyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Done: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "done searching"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open patient"),
		),
		Link: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "link to session"),
		),
		Unlink: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "unlink"),
		),
		Transcriptions: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "past transcriptions"),
		),
	}
}

func (k hubKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Open, k.Link, k.Unlink, k.Transcriptions}
}

type hubView struct {
	app      *app.App
	keys     hubKeyMap
	help     help.Model
	search   textinput.Model
	table    table.Model
	patients []clinical.Patient
	flash    flash
}

// NewPatientHub builds the searchable patient directory view.
func NewPatientHub(a *app.App) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "name or MRN"
	ti.Prompt = "Search: "

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "", Width: 1},
			{Title: "Name", Width: 22},
			{Title: "Age", Width: 4},
			{Title: "MRN", Width: 12},
			{Title: "Condition", Width: 26},
			{Title: "Alerts", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	return &hubView{
		app:    a,
		keys:   defaultHubKeyMap(),
		help:   help.New(),
		search: ti,
		table:  t,
	}
}

func (h *hubView) Init() tea.Cmd {
	h.flash.clear()
	h.refresh()
	return nil
}

// CapturingKeys is true while the search box has focus.
func (h *hubView) CapturingKeys() bool {
	return h.search.Focused()
}

func (h *hubView) refresh() {
	h.patients = h.app.Patients.Search(h.search.Value())

	linked := h.app.Store.LinkedPatientID()
	rows := make([]table.Row, 0, len(h.patients))
	for _, p := range h.patients {
		mark := ""
		if p.ID == linked {
			mark = "*"
		}
		rows = append(rows, table.Row{
			mark,
			p.Name,
			strconv.Itoa(p.Age),
			p.MedicalID,
			p.PrimaryCondition,
			string(p.HighestAlertSeverity()),
		})
	}
	h.table.SetRows(rows)
	if h.table.Cursor() >= len(rows) {
		h.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (h *hubView) selected() (clinical.Patient, bool) {
	i := h.table.Cursor()
	if i < 0 || i >= len(h.patients) {
		return clinical.Patient{}, false
	}

	return h.patients[i], true
}

func (h *hubView) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := teaMsg.(tea.KeyMsg)

	if h.search.Focused() {
		if isKey && key.Matches(keyMsg, h.keys.Done) {
			h.search.Blur()
			h.table.Focus()
			return h, nil
		}

		var cmd tea.Cmd
		h.search, cmd = h.search.Update(teaMsg)
		h.refresh()
		return h, cmd
	}

	if isKey {
		switch {
		case key.Matches(keyMsg, h.keys.Search):
			h.table.Blur()
			return h, h.search.Focus()

		case key.Matches(keyMsg, h.keys.Open):
			if p, ok := h.selected(); ok {
				if _, err := h.app.OpenPatient(p.ID); err != nil {
					h.flash.fail(err)
				}
			}
			return h, nil

		case key.Matches(keyMsg, h.keys.Link):
			if p, ok := h.selected(); ok {
				if _, err := h.app.Linker.Link(p.ID); err != nil {
					h.flash.fail(err)
				} else {
					h.flash.set("Linked " + p.Name)
				}
				h.refresh()
			}
			return h, nil

		case key.Matches(keyMsg, h.keys.Unlink):
			h.app.Linker.Unlink()
			h.flash.set("Patient unlinked")
			h.refresh()
			return h, nil

		case key.Matches(keyMsg, h.keys.Transcriptions):
			h.app.Store.SetCurrentStep(workflow.StepTranscriptions)
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.table, cmd = h.table.Update(teaMsg)

	return h, cmd
}

func (h *hubView) View() string {
	sub := strconv.Itoa(len(h.patients)) + " of " + strconv.Itoa(h.app.Patients.Len()) + " patients"

	linked := style.Muted.Render("No patient linked")
	if p := h.app.Linker.Linked(); p != nil {
		linked = labelled("Linked", p.Name)
	}

	return section(
		title("Patient Hub", sub),
		h.search.View(),
		h.table.View(),
		linked,
		h.flash.View(),
		renderHelp(h.help, h.keys),
	)
}
