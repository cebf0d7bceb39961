package stepper_test

import (
	"testing"

	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/tui/components/stepper"
	"github.com/alkime/itranscript/internal/workflow"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestSegmentsStrict(t *testing.T) {
	st := workflow.NewStore().State()
	segs := stepper.Segments(st, workflow.StrictPolicy())
	require.Len(t, segs, 5)

	assert.Equal(t, 1, segs[0].Key)
	assert.Equal(t, workflow.StepCapture, segs[0].Step)
	assert.Equal(t, workflow.StatusActive, segs[0].Status)

	clickable := make([]bool, len(segs))
	for i, s := range segs {
		clickable[i] = s.Clickable
	}
	assert.Equal(t, []bool{true, false, false, true, true}, clickable)
}

func TestView(t *testing.T) {
	s := workflow.NewStore()
	s.MarkStepComplete(workflow.StepCapture)
	s.SetCurrentStep(workflow.StepReview)
	s.SetDocumentStatus(workflow.StatusReviewed)

	v := stepper.View(s.State(), workflow.StrictPolicy())
	assert.Contains(t, v, "✓ 1 Capture")
	assert.Contains(t, v, "● 2 Review")
	assert.Contains(t, v, "○ 3 Summarize")
	assert.Contains(t, v, "Reviewed")
	assert.NotContains(t, v, "Demographics")

	s.SetCurrentStep(workflow.StepDemographics)
	v = stepper.View(s.State(), workflow.StrictPolicy())
	assert.Contains(t, v, "Demographics: Patient details and history")
}

func TestStepForKey(t *testing.T) {
	step, ok := stepper.StepForKey(4)
	assert.True(t, ok)
	assert.Equal(t, workflow.StepPatientHub, step)

	_, ok = stepper.StepForKey(0)
	assert.False(t, ok)
	_, ok = stepper.StepForKey(6)
	assert.False(t, ok)
}

func TestNeighbour(t *testing.T) {
	strict := workflow.StrictPolicy()

	t.Run("skips locked steps", func(t *testing.T) {
		st := workflow.NewStore().State()

		next, ok := stepper.Neighbour(st, strict, workflow.StepCapture, true)
		require.True(t, ok)
		assert.Equal(t, workflow.StepPatientHub, next)

		prev, ok := stepper.Neighbour(st, strict, workflow.StepCapture, false)
		require.True(t, ok)
		assert.Equal(t, workflow.StepCorrections, prev)
	})

	t.Run("wraps forward", func(t *testing.T) {
		s := workflow.NewStore()
		s.SetCurrentTranscript(&clinical.Transcript{ID: "t-1"})
		s.MarkStepComplete(workflow.StepCapture)
		s.SetCurrentStep(workflow.StepCorrections)

		next, ok := stepper.Neighbour(s.State(), strict, workflow.StepCorrections, true)
		require.True(t, ok)
		assert.Equal(t, workflow.StepCapture, next)
	})

	t.Run("detail steps start from the hub", func(t *testing.T) {
		s := workflow.NewStore()
		s.SetCurrentStep(workflow.StepTranscriptions)

		next, ok := stepper.Neighbour(s.State(), strict, workflow.StepTranscriptions, true)
		require.True(t, ok)
		assert.Equal(t, workflow.StepCorrections, next)
	})

	t.Run("lenient guards review without capture", func(t *testing.T) {
		st := workflow.NewStore().State()

		next, ok := stepper.Neighbour(st, workflow.LenientPolicy(), workflow.StepCapture, true)
		require.True(t, ok)
		assert.Equal(t, workflow.StepPatientHub, next)
	})
}
