package views

import (
	"fmt"
	"strings"

	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/capture"
	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/tui/style"
	"github.com/alkime/itranscript/pkg/uictl"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// visibleLines is how many transcript lines the capture view keeps on
// screen while recording.
const visibleLines = 8

// SampleAudio is uploaded when no file was given on the command line.
var SampleAudio = clinical.AudioFile{
	Name:     "consultation.mp3",
	MIMEType: "audio/mpeg",
	Size:     2_457_600,
}

// CaptureControls is what the capture view reads and toggles.
type CaptureControls struct {
	Recorder uictl.Knob
	Upload   uictl.CappedDial[int]
}

type captureKeyMap struct {
	Toggle  key.Binding
	Stop    key.Binding
	Ambient key.Binding
	Minimal key.Binding
	Upload  key.Binding
	Clear   key.Binding
}

func defaultCaptureKeyMap() captureKeyMap {
	return captureKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause/resume"),
		),
		Stop: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "stop and review"),
		),
		Ambient: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "ambient mode"),
		),
		Minimal: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimal view"),
		),
		Upload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upload file"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear file"),
		),
	}
}

func (k captureKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Stop, k.Ambient, k.Minimal, k.Upload, k.Clear}
}

type captureView struct {
	app      *app.App
	keys     captureKeyMap
	help     help.Model
	controls CaptureControls
	file     clinical.AudioFile
	spinner  spinner.Model
	progress progress.Model
	flash    flash
}

// NewCapture builds the capture view. file is what the upload key selects.
func NewCapture(a *app.App, file clinical.AudioFile) tea.Model {
	s := spinner.New()
	s.Spinner = spinner.Points

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return &captureView{
		app:  a,
		keys: defaultCaptureKeyMap(),
		help: help.New(),
		controls: CaptureControls{
			Recorder: a.Capture,
			Upload:   a.Upload.ProgressDial(),
		},
		file:     file,
		spinner:  s,
		progress: p,
	}
}

func (c *captureView) Init() tea.Cmd {
	c.flash.clear()
	return c.spinner.Tick
}

func (c *captureView) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch typedMsg := teaMsg.(type) {
	case tea.KeyMsg:
		c.handleKey(typedMsg)
		return c, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(typedMsg)
		return c, cmd

	case progress.FrameMsg:
		progressModel, cmd := c.progress.Update(typedMsg)
		c.progress = progressModel.(progress.Model) //nolint:forcetypeassert // bubbles library contract
		return c, cmd
	}

	return c, nil
}

func (c *captureView) handleKey(msg tea.KeyMsg) {
	sess := c.app.Capture

	switch {
	case key.Matches(msg, c.keys.Toggle):
		c.flash.clear()
		if !sess.State().Active() {
			// Start directly so a missing patient link is shown.
			if err := sess.Start(); err != nil {
				c.flash.fail(err)
			}
			return
		}
		c.controls.Recorder.Toggle()

	case key.Matches(msg, c.keys.Stop):
		if _, err := sess.Stop(); err != nil {
			c.flash.fail(err)
		}

	case key.Matches(msg, c.keys.Ambient):
		sess.SetAmbientMode(!c.app.Store.IsAmbientMode())

	case key.Matches(msg, c.keys.Minimal):
		if err := sess.SetMinimalMode(!c.app.Store.IsMinimalMode()); err != nil {
			c.flash.fail(err)
		}

	case key.Matches(msg, c.keys.Upload):
		c.flash.clear()
		if sess.State().Active() {
			c.flash.fail(capture.ErrAlreadyRecording)
			return
		}
		if st := c.app.Upload.State(); st == capture.UploadNoFile || st == capture.UploadDone {
			if err := c.app.Upload.Select(c.file); err != nil {
				c.flash.fail(err)
				return
			}
		}
		if err := c.app.Upload.Begin(); err != nil {
			c.flash.fail(err)
		}

	case key.Matches(msg, c.keys.Clear):
		c.app.Upload.Clear()
		c.flash.clear()
	}
}

func (c *captureView) View() string {
	snap := c.app.Capture.Snapshot()

	if c.app.Store.IsMinimalMode() && snap.State.Active() {
		return c.minimalView(snap)
	}

	return section(
		c.headerView(snap),
		c.patientView(),
		c.linesView(snap),
		c.ambientView(snap),
		c.uploadView(),
		c.flash.View(),
		renderHelp(c.help, c.keys),
	)
}

func (c *captureView) minimalView(snap capture.Snapshot) string {
	status := style.Title.Render("● REC")
	if snap.State == capture.StatePaused {
		status = style.Warning.Render("Paused")
	}

	return fmt.Sprintf("%s %s  %s", status,
		style.Subtitle.Render(capture.FormatElapsed(snap.Elapsed)),
		style.Help.Render("m to expand"))
}

func (c *captureView) headerView(snap capture.Snapshot) string {
	elapsed := style.Subtitle.Render(capture.FormatElapsed(snap.Elapsed))

	switch snap.State {
	case capture.StateRecording:
		return c.spinner.View() + " " + style.Title.Render("Recording") + " " + elapsed
	case capture.StatePaused:
		return style.Warning.Render("Paused") + " " + elapsed
	case capture.StateStopped:
		return style.Success.Render("Recording complete") + " " + elapsed
	default:
		return title("Capture", "Record or upload audio")
	}
}

func (c *captureView) patientView() string {
	if p := c.app.Store.SelectedPatient(); p != nil {
		return labelled("Patient", p.Name+" "+style.Muted.Render(p.MedicalID))
	}

	if c.app.Config.RequirePatientLink {
		return style.Warning.Render("No patient linked. Link one from the Patient Hub (4) before recording.")
	}

	return style.Muted.Render("No patient linked")
}

func (c *captureView) linesView(snap capture.Snapshot) string {
	if len(snap.Lines) == 0 {
		return ""
	}

	lines := snap.Lines
	if len(lines) > visibleLines {
		lines = lines[len(lines)-visibleLines:]
	}

	body := strings.Join(lines, "\n")
	footer := style.Muted.Render(fmt.Sprintf("%d of %d lines", len(snap.Lines), snap.TotalLines))

	return style.Viewport.Render(body) + "\n" + footer
}

func (c *captureView) ambientView(snap capture.Snapshot) string {
	if !c.app.Store.IsAmbientMode() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(style.Label.Render("Ambient mode"))
	sb.WriteString(" ")
	sb.WriteString(style.Muted.Render(fmt.Sprintf("%d non-clinical segments hidden", snap.Suppressed)))
	for _, m := range snap.Moments {
		sb.WriteString("\n")
		sb.WriteString(style.Bullet.Render("• "))
		sb.WriteString(style.Label.Render(m.Type.Label()))
		sb.WriteString(" ")
		sb.WriteString(m.Content)
		if m.IsHighConfidence() {
			sb.WriteString(" ")
			sb.WriteString(style.Success.Render("high confidence"))
		}
	}

	return sb.String()
}

func (c *captureView) uploadView() string {
	f := c.app.Upload.File()
	if f == nil {
		return ""
	}

	line := labelled("File", fmt.Sprintf("%s (%s, %s)", f.Name, f.MIMEType, formatBytes(f.Size)))

	switch c.app.Upload.State() {
	case capture.UploadUploading:
		done, limit := c.controls.Upload.Cap()
		percent := float64(done) / float64(limit)
		return line + "\n" + c.progress.ViewAs(percent) + " " + style.Subtitle.Render(fmt.Sprintf("%d%%", done))
	case capture.UploadDone:
		return line + "\n" + style.Success.Render("Upload complete")
	default:
		return line + "\n" + style.Muted.Render("Ready to upload")
	}
}

func formatBytes(n int64) string {
	const mb = 1024 * 1024
	if n < mb {
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	}

	return fmt.Sprintf("%.1f MB", float64(n)/mb)
}
