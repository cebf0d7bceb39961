package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/tui/style"
	"github.com/alkime/itranscript/internal/workflow"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const dateLayout = "2006-01-02"

type demographicsKeyMap struct {
	Link   key.Binding
	Record key.Binding
	Back   key.Binding
}

func defaultDemographicsKeyMap() demographicsKeyMap {
	return demographicsKeyMap{
		Link: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "link/unlink"),
		),
		Record: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "record visit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back to hub"),
		),
	}
}

func (k demographicsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Link, k.Record, k.Back}
}

type demographicsView struct {
	app    *app.App
	keys   demographicsKeyMap
	help   help.Model
	record *app.Demographics
	flash  flash
}

// NewDemographics builds the detail view of the selected patient.
func NewDemographics(a *app.App) tea.Model {
	return &demographicsView{
		app:  a,
		keys: defaultDemographicsKeyMap(),
		help: help.New(),
	}
}

func (d *demographicsView) Init() tea.Cmd {
	d.flash.clear()
	d.refresh()
	return nil
}

func (d *demographicsView) refresh() {
	d.record = nil

	p := d.app.Store.SelectedPatient()
	if p == nil {
		return
	}

	rec, err := d.app.Demographics(p.ID)
	if err != nil {
		d.flash.fail(err)
		return
	}
	d.record = &rec
}

func (d *demographicsView) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := teaMsg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch {
	case key.Matches(keyMsg, d.keys.Link):
		if d.record == nil {
			return d, nil
		}
		if d.app.Store.LinkedPatientID() == d.record.Patient.ID {
			d.app.Linker.Unlink()
			d.flash.set("Patient unlinked")
			return d, nil
		}
		if _, err := d.app.Linker.Link(d.record.Patient.ID); err != nil {
			d.flash.fail(err)
		} else {
			d.flash.set("Linked to this session")
		}

	case key.Matches(keyMsg, d.keys.Record):
		if d.record == nil {
			return d, nil
		}
		if _, err := d.app.Linker.Link(d.record.Patient.ID); err != nil {
			d.flash.fail(err)
			return d, nil
		}
		// Starting a visit from the record bypasses the stepper.
		d.app.Store.SetCurrentStep(workflow.StepCapture)

	case key.Matches(keyMsg, d.keys.Back):
		d.app.Navigate(workflow.StepPatientHub)
	}

	return d, nil
}

func (d *demographicsView) View() string {
	if d.record == nil {
		return section(
			title("Demographics", ""),
			style.Muted.Render("No patient selected. Open one from the Patient Hub."),
			d.flash.View(),
			renderHelp(d.help, d.keys),
		)
	}

	p := d.record.Patient
	linked := ""
	if d.app.Store.LinkedPatientID() == p.ID {
		linked = style.Success.Render("linked")
	}

	card := strings.Join([]string{
		labelled("MRN", p.MedicalID),
		labelled("Age", strconv.Itoa(p.Age)) + "  " + labelled("Gender", string(p.Gender)),
		labelled("Contact", p.Contact),
		labelled("Condition", p.PrimaryCondition),
		labelled("Allergies", p.Allergies),
	}, "\n")

	return section(
		title(p.Name, linked),
		card,
		d.alertsView(),
		d.medicationsView(),
		d.vitalsView(),
		d.visitsView(),
		d.summariesView(),
		d.flash.View(),
		renderHelp(d.help, d.keys),
	)
}

func (d *demographicsView) alertsView() string {
	if len(d.record.Patient.Alerts) == 0 {
		return ""
	}

	lines := []string{style.Label.Render("Alerts")}
	for _, a := range d.record.Patient.Alerts {
		lines = append(lines, style.Severity(a.Severity).Render("▲ "+a.Message))
	}

	return strings.Join(lines, "\n")
}

func (d *demographicsView) medicationsView() string {
	lines := []string{style.Label.Render("Medications")}
	for _, m := range d.record.Medications {
		if !m.Active {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s %s, %s", style.Bullet.Render("•"), m.Name, m.Dosage, m.Frequency))
	}
	if len(lines) == 1 {
		return ""
	}

	return strings.Join(lines, "\n")
}

func (d *demographicsView) vitalsView() string {
	if len(d.record.Vitals) == 0 {
		return ""
	}

	v := d.record.Vitals[len(d.record.Vitals)-1]

	return labelled("Latest vitals", fmt.Sprintf("%s  BP %d/%d  HR %d  SpO2 %d%%  %.1f°F",
		v.Date.Format(dateLayout), v.BloodPressureSystolic, v.BloodPressureDiastolic,
		v.HeartRate, v.OxygenSaturation, v.Temperature))
}

func (d *demographicsView) visitsView() string {
	if len(d.record.Visits) == 0 {
		return style.Muted.Render("No previous visits")
	}

	lines := []string{style.Label.Render("Visits")}
	for _, v := range d.record.Visits {
		lines = append(lines, fmt.Sprintf("%s %s %s %s", style.Bullet.Render("•"),
			v.Date.Format(dateLayout), v.Type, style.Muted.Render(v.Diagnosis)))
	}

	return strings.Join(lines, "\n")
}

func (d *demographicsView) summariesView() string {
	if len(d.record.Summaries) == 0 {
		return ""
	}

	lines := []string{style.Label.Render("Notes")}
	for _, s := range d.record.Summaries {
		lines = append(lines, fmt.Sprintf("%s %s %s", style.Bullet.Render("•"),
			s.CreatedAt.Format(dateLayout), s.Title))
	}

	return strings.Join(lines, "\n")
}
