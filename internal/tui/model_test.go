package tui_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/clock"
	"github.com/alkime/itranscript/internal/config"
	"github.com/alkime/itranscript/internal/tui"
	"github.com/alkime/itranscript/internal/workflow"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newApp(t *testing.T, gating string) (*app.App, *clock.Manual) {
	t.Helper()

	cfg := config.Default()
	cfg.IDStrategy = "counter"
	cfg.GatingMode = gating

	sched := clock.NewManual(time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	a, err := app.New(context.Background(), cfg, app.WithScheduler(sched), app.WithLogger(logger))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	return a, sched
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m tea.Model, msgs ...tea.Msg) tui.Model {
	t.Helper()

	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}

	root, ok := m.(tui.Model)
	require.True(t, ok)

	return root
}

func TestNumberKeysFollowGating(t *testing.T) {
	a, _ := newApp(t, workflow.PolicyStrict)
	m := tui.New(a, nil)
	require.Equal(t, workflow.StepCapture, m.CurrentStep())

	m = update(t, m, runes("3"))
	assert.Equal(t, workflow.StepCapture, m.CurrentStep(), "summarize is locked")

	m = update(t, m, runes("5"))
	assert.Equal(t, workflow.StepCorrections, m.CurrentStep())
	assert.Equal(t, workflow.StepCorrections, a.Store.CurrentStep())

	m = update(t, m, runes("1"))
	assert.Equal(t, workflow.StepCorrections, m.CurrentStep(), "capture left without material is locked")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, workflow.StepPatientHub, m.CurrentStep())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, workflow.StepCorrections, m.CurrentStep())
}

func TestLenientStillNeedsCapture(t *testing.T) {
	a, _ := newApp(t, workflow.PolicyLenient)
	m := tui.New(a, nil)

	m = update(t, m, runes("2"))
	assert.Equal(t, workflow.StepCapture, m.CurrentStep(), "review needs a transcript")

	m = update(t, m, runes("5"), runes("1"))
	assert.Equal(t, workflow.StepCapture, m.CurrentStep(), "capture is always open when lenient")
}

func TestTypingIsNotNavigation(t *testing.T) {
	a, _ := newApp(t, workflow.PolicyStrict)
	m := tui.New(a, nil)

	m = update(t, m, runes("5"), runes("a"), runes("4"), runes("q"))
	assert.Equal(t, workflow.StepCorrections, m.CurrentStep())
	assert.Contains(t, m.View(), "4q")
}

func TestViewFollowsStore(t *testing.T) {
	a, _ := newApp(t, workflow.PolicyStrict)
	m := tui.New(a, nil)

	_, err := a.OpenPatient("p1")
	require.NoError(t, err)

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, workflow.StepDemographics, m.CurrentStep())
	assert.Contains(t, m.View(), "Sarah Johnson")
	assert.Contains(t, m.View(), "✓ 4 Patient Hub")
}

func TestQuitCancels(t *testing.T) {
	a, _ := newApp(t, workflow.PolicyStrict)

	cancelled := false
	m := tui.New(a, func() { cancelled = true })

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, cancelled)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRecordToSummaryFlow(t *testing.T) {
	checker := outputChecker{
		intervl: 50 * time.Millisecond,
		timeout: 3 * time.Second,
	}

	a, sched := newApp(t, workflow.PolicyStrict)
	tm := teatest.NewTestModel(t, tui.New(a, nil), teatest.WithInitialTermSize(160, 60))

	checker.CheckString(t, tm, "● 1 Capture")

	t.Run("recording needs a linked patient", func(t *testing.T) {
		tm.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		checker.CheckString(t, tm, "Please link a patient")
	})

	t.Run("link from the hub and start a visit", func(t *testing.T) {
		tm.Send(runes("4"))
		checker.CheckString(t, tm, "Patient Hub")

		tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
		checker.CheckString(t, tm, "Penicillin allergy")

		tm.Send(runes("r"))
		checker.CheckString(t, tm, "MRN-2024-001")
	})

	t.Run("record and stop", func(t *testing.T) {
		tm.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		checker.CheckString(t, tm, "Recording")

		sched.Advance(3 * time.Second)
		checker.CheckString(t, tm, "0:03")

		tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
		checker.CheckString(t, tm, "● 2 Review")
	})

	t.Run("review and summarize", func(t *testing.T) {
		tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
		checker.CheckString(t, tm, "● 3 Summarize")

		tm.Send(runes("g"))
		checker.CheckString(t, tm, "Generated SOAP Note - Sarah Johnson")

		tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
		checker.CheckString(t, tm, "Final")
	})

	tm.Send(runes("q"))
	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(time.Second)).(tui.Model)
	require.True(t, ok)
	assert.Equal(t, workflow.StepPatientHub, final.CurrentStep())
	assert.Equal(t, workflow.StatusFinal, a.Store.DocumentStatus())
	assert.Equal(t, []workflow.Step{
		workflow.StepCapture, workflow.StepReview, workflow.StepSummarize, workflow.StepPatientHub,
	}, a.Store.CompletedSteps())
}

type outputChecker struct {
	intervl, timeout time.Duration
}

func (o outputChecker) Check(t *testing.T, tm *teatest.TestModel, check func(buf []byte) bool) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), check,
		teatest.WithCheckInterval(o.intervl),
		teatest.WithDuration(o.timeout))
}

func (o outputChecker) CheckString(t *testing.T, tm *teatest.TestModel, substr string) {
	t.Helper()
	o.Check(t, tm, func(buf []byte) bool {
		return bytes.Contains(buf, []byte(substr))
	})
}
