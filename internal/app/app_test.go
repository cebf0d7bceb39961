package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/clipboard"
	"github.com/alkime/itranscript/internal/clock"
	"github.com/alkime/itranscript/internal/config"
	"github.com/alkime/itranscript/internal/fixtures"
	"github.com/alkime/itranscript/internal/summary"
	"github.com/alkime/itranscript/internal/validation"
	"github.com/alkime/itranscript/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) (*app.App, *clock.Manual, *clipboard.Memory) {
	t.Helper()

	cfg := config.Default()
	cfg.IDStrategy = "counter"

	sched := clock.NewManual(time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC))
	clip := &clipboard.Memory{}

	a, err := app.New(context.Background(), cfg, app.WithScheduler(sched), app.WithClipboard(clip))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	return a, sched, clip
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.GatingMode = "anything-goes"

	_, err := app.New(context.Background(), cfg)
	require.Error(t, err)
}

func TestFullSession(t *testing.T) {
	t.Parallel()

	a, sched, clip := newApp(t)

	require.Error(t, a.Capture.Start())
	_, err := a.Linker.Link("p1")
	require.NoError(t, err)

	require.NoError(t, a.Capture.Start())
	sched.Advance(30 * time.Second)
	_, err = a.Capture.Stop()
	require.NoError(t, err)
	assert.Equal(t, workflow.StepReview, a.Store.CurrentStep())

	review, err := a.Review(false)
	require.NoError(t, err)
	assert.Equal(t, len(fixtures.Insights()), len(review.Insights))
	assert.Equal(t, len(fixtures.SuppressedInsights()), review.SuppressedHidden)

	withSuppressed, err := a.Review(true)
	require.NoError(t, err)
	assert.Len(t, withSuppressed.Insights, len(fixtures.Insights())+len(fixtures.SuppressedInsights()))

	text, err := a.CopyTranscript()
	require.NoError(t, err)
	assert.Equal(t, text, clip.Last())

	require.NoError(t, a.CompleteReview())
	assert.Equal(t, workflow.StepSummarize, a.Store.CurrentStep())
	assert.Equal(t, workflow.StatusReviewed, a.Store.DocumentStatus())

	err = a.FinalizeSummary()
	_, ok := validation.As(err)
	require.True(t, ok)

	note, err := a.GenerateSummary(summary.Request{Type: clinical.SummarySOAP})
	require.NoError(t, err)
	assert.Equal(t, "SOAP Note - Sarah Johnson", note.Title)

	copied, err := a.CopySummary()
	require.NoError(t, err)
	assert.Equal(t, note.Content, copied)

	before := len(a.Summaries.History("p1"))
	require.NoError(t, a.FinalizeSummary())
	assert.Equal(t, workflow.StepPatientHub, a.Store.CurrentStep())
	assert.Equal(t, workflow.StatusFinal, a.Store.DocumentStatus())
	assert.Len(t, a.Summaries.History("p1"), before+1)
}

func TestReview_RequiresTranscript(t *testing.T) {
	t.Parallel()

	a, _, _ := newApp(t)

	_, err := a.Review(false)
	require.ErrorIs(t, err, app.ErrNoTranscript)
	require.ErrorIs(t, a.CompleteReview(), app.ErrNoTranscript)

	_, err = a.CopySummary()
	require.ErrorIs(t, err, app.ErrNoSummary)
}

func TestNavigate_UsesPolicy(t *testing.T) {
	t.Parallel()

	a, _, _ := newApp(t)

	assert.False(t, a.Navigate(workflow.StepSummarize))
	assert.True(t, a.Navigate(workflow.StepCorrections))
	assert.Equal(t, workflow.StepCorrections, a.Store.CurrentStep())
}

func TestOpenPatientAndDemographics(t *testing.T) {
	t.Parallel()

	a, _, _ := newApp(t)

	p, err := a.OpenPatient("p2")
	require.NoError(t, err)
	assert.Equal(t, workflow.StepDemographics, a.Store.CurrentStep())
	assert.Equal(t, p.ID, a.Store.LinkedPatientID())

	d, err := a.Demographics("p2")
	require.NoError(t, err)
	assert.Equal(t, "Michael Chen", d.Patient.Name)
	assert.Equal(t, fixtures.VisitsFor("p2"), d.Visits)
	assert.NotEmpty(t, d.Summaries)

	_, err = a.OpenPatient("nobody")
	assert.True(t, app.IsNotFound(err))
}

func TestOpenTranscription(t *testing.T) {
	t.Parallel()

	a, _, _ := newApp(t)
	row := fixtures.RecentTranscriptions()[0]

	require.NoError(t, a.OpenTranscription(row.ID))
	assert.Equal(t, workflow.StepReview, a.Store.CurrentStep())
	assert.Equal(t, row.Title, a.Store.CurrentTranscript().Title)

	err := a.OpenTranscription("missing")
	assert.True(t, app.IsNotFound(err))
}

func TestEditNote(t *testing.T) {
	t.Parallel()

	a, _, _ := newApp(t)

	_, err := a.EditNote("anything")
	require.ErrorIs(t, err, app.ErrNoSummary)

	_, err = a.GenerateSummary(summary.Request{})
	require.NoError(t, err)

	_, err = a.EditNote("   ")
	_, ok := validation.As(err)
	assert.True(t, ok, "blank note is a validation error")

	note, err := a.EditNote("Pain is clearly neuropathic.")
	require.NoError(t, err)
	assert.Equal(t, "Pain is clearly neuropathic.", a.Note().Content)
	require.Len(t, note.Warnings, 1)
	assert.Equal(t, "clearly", note.Warnings[0].Phrase)
}
