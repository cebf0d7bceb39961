package views_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/capture"
	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/clipboard"
	"github.com/alkime/itranscript/internal/clock"
	"github.com/alkime/itranscript/internal/config"
	"github.com/alkime/itranscript/internal/fixtures"
	"github.com/alkime/itranscript/internal/tui/components/screens"
	"github.com/alkime/itranscript/internal/tui/views"
	"github.com/alkime/itranscript/internal/workflow"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

type fixture struct {
	app   *app.App
	sched *clock.Manual
	clip  *clipboard.Memory
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	cfg := config.Default()
	cfg.IDStrategy = "counter"

	sched := clock.NewManual(time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC))
	clip := &clipboard.Memory{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	a, err := app.New(context.Background(), cfg,
		app.WithScheduler(sched), app.WithClipboard(clip), app.WithLogger(logger))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	return fixture{app: a, sched: sched, clip: clip}
}

// press feeds keys to m one at a time. Named keys are enter, esc, tab and
// space; anything else is typed as runes.
func press(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}

	return m
}

func capturing(t *testing.T, m tea.Model) bool {
	t.Helper()

	c, ok := m.(screens.Capturer)
	return ok && c.CapturingKeys()
}

func TestCaptureRequiresPatient(t *testing.T) {
	f := newFixture(t)
	v := views.NewCapture(f.app, views.SampleAudio)
	v.Init()

	assert.Contains(t, v.View(), "No patient linked")

	v = press(v, "space")
	assert.Equal(t, capture.StateIdle, f.app.Capture.State())
	assert.Contains(t, v.View(), "Please link a patient before starting the recording.")
}

func TestCaptureRecordPauseStop(t *testing.T) {
	f := newFixture(t)
	_, err := f.app.Linker.Link("p1")
	require.NoError(t, err)

	v := views.NewCapture(f.app, views.SampleAudio)
	v.Init()
	assert.Contains(t, v.View(), "Sarah Johnson")

	v = press(v, "space")
	require.Equal(t, capture.StateRecording, f.app.Capture.State())
	assert.Contains(t, v.View(), "Recording")

	f.sched.Advance(3 * time.Second)
	assert.Contains(t, v.View(), "0:03")
	assert.Contains(t, v.View(), "1 of ")

	v = press(v, "space")
	assert.Equal(t, capture.StatePaused, f.app.Capture.State())
	assert.Contains(t, v.View(), "Paused")

	t.Run("minimal view while paused", func(t *testing.T) {
		v = press(v, "m")
		assert.True(t, f.app.Store.IsMinimalMode())
		assert.Contains(t, v.View(), "m to expand")
		assert.NotContains(t, v.View(), "Sarah Johnson")

		v = press(v, "m")
		assert.False(t, f.app.Store.IsMinimalMode())
	})

	t.Run("ambient toggle", func(t *testing.T) {
		v = press(v, "a")
		assert.True(t, f.app.Store.IsAmbientMode())
		assert.Contains(t, v.View(), "non-clinical segments hidden")
		v = press(v, "a")
		assert.False(t, f.app.Store.IsAmbientMode())
	})

	press(v, "enter")
	assert.Equal(t, capture.StateStopped, f.app.Capture.State())
	assert.Equal(t, workflow.StepReview, f.app.Store.CurrentStep())
	require.NotNil(t, f.app.Store.CurrentTranscript())
	assert.Equal(t, "p1", f.app.Store.CurrentTranscript().PatientID)
}

func TestCaptureMinimalNeedsSession(t *testing.T) {
	f := newFixture(t)
	v := views.NewCapture(f.app, views.SampleAudio)
	v.Init()

	v = press(v, "m")
	assert.False(t, f.app.Store.IsMinimalMode())
	assert.NotContains(t, v.View(), "m to expand")
}

func TestCaptureUpload(t *testing.T) {
	f := newFixture(t)
	v := views.NewCapture(f.app, views.SampleAudio)
	v.Init()

	v = press(v, "u")
	require.Equal(t, capture.UploadUploading, f.app.Upload.State())
	assert.Contains(t, v.View(), "consultation.mp3")
	assert.Contains(t, v.View(), "0%")

	f.sched.Advance(4 * time.Second)
	assert.Equal(t, capture.UploadDone, f.app.Upload.State())
	assert.Contains(t, v.View(), "Upload complete")
	assert.Equal(t, workflow.StepReview, f.app.Store.CurrentStep())
	require.NotNil(t, f.app.Store.AudioFile())
	assert.Equal(t, "consultation.mp3", f.app.Store.AudioFile().Name)

	press(v, "x")
	assert.Equal(t, capture.UploadNoFile, f.app.Upload.State())
}

func TestCaptureUploadRejectsType(t *testing.T) {
	f := newFixture(t)
	v := views.NewCapture(f.app, clinical.AudioFile{Name: "notes.txt", MIMEType: "text/plain", Size: 120})
	v.Init()
	v = press(v, "u")

	assert.Equal(t, capture.UploadNoFile, f.app.Upload.State())
	assert.Contains(t, v.View(), "Unsupported file type")
}

func TestReview(t *testing.T) {
	f := newFixture(t)
	v := views.NewReview(f.app)
	v.Init()
	assert.Contains(t, v.View(), "Nothing captured yet")

	tr := fixtures.Transcript()
	f.app.Store.SetCurrentTranscript(&tr)
	v.Init()
	v, _ = v.Update(tea.WindowSizeMsg{Width: 160, Height: 400})

	out := v.View()
	assert.Contains(t, out, "Insights")
	assert.Contains(t, out, "Safety alerts")
	assert.Contains(t, out, "suppressed insights hidden")

	v = press(v, "s")
	assert.NotContains(t, v.View(), "suppressed insights hidden")
	assert.Contains(t, v.View(), "suppressed:")

	v = press(v, "c")
	assert.Contains(t, v.View(), "Transcript copied to clipboard")
	assert.Equal(t, f.app.Corrections.Apply(tr.ImprovedText), f.clip.Last())

	press(v, "enter")
	assert.Equal(t, workflow.StepSummarize, f.app.Store.CurrentStep())
	assert.Equal(t, workflow.StatusReviewed, f.app.Store.DocumentStatus())
}

func TestSummarize(t *testing.T) {
	f := newFixture(t)
	_, err := f.app.Linker.Link("p1")
	require.NoError(t, err)

	v := views.NewSummarize(f.app, nil)
	v.Init()
	assert.Contains(t, v.View(), "SOAP Note")
	assert.Contains(t, v.View(), "follow-up")
	assert.Contains(t, v.View(), "English")

	v = press(v, "enter")
	assert.Contains(t, v.View(), "Generate a summary before proceeding.")

	v = press(v, "t", "l")
	assert.Contains(t, v.View(), "Discharge Summary")
	assert.Contains(t, v.View(), "Spanish")

	v = press(v, "g")
	assert.Contains(t, v.View(), "Generated Discharge Summary - Sarah Johnson")
	require.NotNil(t, f.app.Note())

	v = press(v, "c")
	assert.Equal(t, f.app.Note().Content, f.clip.Last())

	before := len(f.app.Summaries.History("p1"))
	press(v, "enter")
	assert.Equal(t, workflow.StepPatientHub, f.app.Store.CurrentStep())
	assert.Equal(t, workflow.StatusFinal, f.app.Store.DocumentStatus())
	assert.Len(t, f.app.Summaries.History("p1"), before+1)
}

// appendingEditor stands in for $EDITOR by appending a line to the draft.
type appendingEditor struct {
	line string
}

func (e appendingEditor) Launch(path string) tea.Cmd {
	return func() tea.Msg {
		b, err := os.ReadFile(path)
		if err == nil {
			err = os.WriteFile(path, append(b, []byte(e.line)...), 0o600)
		}
		return views.EditorDoneMsg{Path: path, Err: err}
	}
}

func TestSummarizeEdit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	f := newFixture(t)
	v := views.NewSummarize(f.app, appendingEditor{line: "\nAddendum: recheck in two weeks."})
	v.Init()

	v = press(v, "e")
	assert.Contains(t, v.View(), "no summary generated")

	v = press(v, "g")
	require.NotNil(t, f.app.Note())

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	require.NotNil(t, cmd)

	done, ok := cmd().(views.EditorDoneMsg)
	require.True(t, ok)

	v, _ = v.Update(done)
	assert.Contains(t, v.View(), "Note updated")
	assert.Contains(t, f.app.Note().Content, "Addendum: recheck in two weeks.")

	_, err := os.Stat(done.Path)
	assert.True(t, os.IsNotExist(err), "draft is removed after editing")
}

func TestPatientHub(t *testing.T) {
	f := newFixture(t)
	v := views.NewPatientHub(f.app)
	v.Init()

	assert.Contains(t, v.View(), "Sarah Johnson")
	assert.Contains(t, v.View(), "Michael Chen")

	v = press(v, "/")
	assert.True(t, capturing(t, v))

	v = press(v, "c", "h", "e", "n")
	assert.NotContains(t, v.View(), "Sarah Johnson")
	assert.Contains(t, v.View(), "Michael Chen")

	v = press(v, "enter")
	assert.False(t, capturing(t, v))
	assert.Equal(t, workflow.StepCapture, f.app.Store.CurrentStep(), "leaving search does not open")

	v = press(v, "l")
	assert.Equal(t, "p2", f.app.Store.LinkedPatientID())
	assert.Contains(t, v.View(), "Linked: Michael Chen")

	v = press(v, "x")
	assert.Empty(t, f.app.Store.LinkedPatientID())

	v = press(v, "enter")
	assert.Equal(t, workflow.StepDemographics, f.app.Store.CurrentStep())
	require.NotNil(t, f.app.Store.SelectedPatient())
	assert.Equal(t, "p2", f.app.Store.SelectedPatient().ID)

	press(v, "t")
	assert.Equal(t, workflow.StepTranscriptions, f.app.Store.CurrentStep())
}

func TestDemographics(t *testing.T) {
	f := newFixture(t)
	v := views.NewDemographics(f.app)
	v.Init()
	assert.Contains(t, v.View(), "No patient selected")

	_, err := f.app.OpenPatient("p1")
	require.NoError(t, err)
	v.Init()

	out := v.View()
	assert.Contains(t, out, "Sarah Johnson")
	assert.Contains(t, out, "MRN-2024-001")
	assert.Contains(t, out, "Penicillin allergy")

	// Opening a record links it.
	assert.Equal(t, "p1", f.app.Store.LinkedPatientID())
	assert.Contains(t, out, "linked")

	v = press(v, "l")
	assert.Empty(t, f.app.Store.LinkedPatientID())
	assert.Contains(t, v.View(), "Patient unlinked")
	v = press(v, "l")
	assert.Equal(t, "p1", f.app.Store.LinkedPatientID())

	v = press(v, "esc")
	assert.Equal(t, workflow.StepPatientHub, f.app.Store.CurrentStep())

	press(v, "r")
	assert.Equal(t, "p1", f.app.Store.LinkedPatientID())
	assert.Equal(t, workflow.StepCapture, f.app.Store.CurrentStep())
}

func TestCorrections(t *testing.T) {
	f := newFixture(t)
	count := len(f.app.Corrections.List())

	v := views.NewCorrections(f.app)
	v.Init()
	assert.False(t, capturing(t, v))

	t.Run("add", func(t *testing.T) {
		v = press(v, "a")
		assert.True(t, capturing(t, v))

		v = press(v, "m", "e", "t", "a", "f", "o", "r", "m", "i", "n", "tab", "m", "e", "t", "f", "o", "r", "m", "i", "n", "enter")
		assert.False(t, capturing(t, v))

		list := f.app.Corrections.List()
		require.Len(t, list, count+1)
		assert.Equal(t, "metaformin", list[0].Original)
		assert.Equal(t, "metformin", list[0].Corrected)
		assert.Contains(t, v.View(), `Added "metaformin" → "metformin"`)
	})

	t.Run("empty fields are rejected", func(t *testing.T) {
		v = press(v, "a", "enter")
		assert.True(t, capturing(t, v))
		assert.Contains(t, v.View(), "Both fields are required.")

		v = press(v, "esc")
		assert.False(t, capturing(t, v))
		assert.Len(t, f.app.Corrections.List(), count+1)
	})

	t.Run("delete selected", func(t *testing.T) {
		v = press(v, "d")
		assert.Len(t, f.app.Corrections.List(), count)
		assert.Contains(t, v.View(), `Deleted "metaformin"`)
	})
}

func TestTranscriptions(t *testing.T) {
	f := newFixture(t)
	v := views.NewTranscriptions(f.app)
	v.Init()

	rows := fixtures.RecentTranscriptions()
	require.NotEmpty(t, rows)
	assert.Contains(t, v.View(), rows[0].PatientName)

	press(v, "enter")
	assert.Equal(t, workflow.StepReview, f.app.Store.CurrentStep())
	require.NotNil(t, f.app.Store.CurrentTranscript())
	assert.Equal(t, rows[0].Title, f.app.Store.CurrentTranscript().Title)
}
