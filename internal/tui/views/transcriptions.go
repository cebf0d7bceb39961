package views

import (
	"time"

	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/capture"
	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/fixtures"
	"github.com/alkime/itranscript/internal/workflow"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

type transcriptionsKeyMap struct {
	Open key.Binding
	Back key.Binding
}

func (k transcriptionsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Back}
}

type transcriptionsView struct {
	app   *app.App
	keys  transcriptionsKeyMap
	help  help.Model
	table table.Model
	rows  []clinical.RecentTranscription
	flash flash
}

// NewTranscriptions builds the history of past transcriptions.
func NewTranscriptions(a *app.App) tea.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Title", Width: 28},
			{Title: "Patient", Width: 20},
			{Title: "Date", Width: 10},
			{Title: "Length", Width: 6},
			{Title: "Status", Width: 10},
			{Title: "", Width: 1},
		}),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	return &transcriptionsView{
		app: a,
		keys: transcriptionsKeyMap{
			Open: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "open for review"),
			),
			Back: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "back to hub"),
			),
		},
		help:  help.New(),
		table: t,
	}
}

func (v *transcriptionsView) Init() tea.Cmd {
	v.flash.clear()
	v.rows = fixtures.RecentTranscriptions()

	rows := make([]table.Row, 0, len(v.rows))
	for _, r := range v.rows {
		quality := ""
		if r.HasQualityIssues {
			quality = "!"
		}
		rows = append(rows, table.Row{
			r.Title,
			r.PatientName,
			r.Timestamp.Format(dateLayout),
			capture.FormatElapsed(time.Duration(r.Duration) * time.Second),
			string(r.Status),
			quality,
		})
	}
	v.table.SetRows(rows)

	return nil
}

func (v *transcriptionsView) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := teaMsg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, v.keys.Open):
			i := v.table.Cursor()
			if i >= 0 && i < len(v.rows) {
				if err := v.app.OpenTranscription(v.rows[i].ID); err != nil {
					v.flash.fail(err)
				}
			}
			return v, nil

		case key.Matches(keyMsg, v.keys.Back):
			v.app.Navigate(workflow.StepPatientHub)
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(teaMsg)

	return v, cmd
}

func (v *transcriptionsView) View() string {
	return section(
		title("Transcriptions", "Browse past transcriptions"),
		v.table.View(),
		v.flash.View(),
		renderHelp(v.help, v.keys),
	)
}
