package capture_test

import (
	"testing"
	"time"

	"github.com/alkime/itranscript/internal/capture"
	"github.com/alkime/itranscript/internal/clock"
	"github.com/alkime/itranscript/internal/fixtures"
	"github.com/alkime/itranscript/internal/validation"
	"github.com/alkime/itranscript/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC)

func newSession(t *testing.T, requirePatient bool) (*capture.Session, *workflow.Store, *clock.Manual) {
	t.Helper()

	store := workflow.NewStore()
	sched := clock.NewManual(epoch)
	cfg := capture.DefaultConfig()
	cfg.RequirePatient = requirePatient

	s := capture.NewSession(store, sched, cfg)
	t.Cleanup(s.Close)

	return s, store, sched
}

func linkFirstPatient(store *workflow.Store) {
	p := fixtures.Patients()[0]
	store.SetSelectedPatient(&p)
}

func TestStart_RequiresLinkedPatient(t *testing.T) {
	t.Parallel()

	s, store, sched := newSession(t, true)

	err := s.Start()
	require.Error(t, err)

	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Equal(t, "patient", verr.Field)

	assert.Equal(t, workflow.StepCapture, store.CurrentStep())
	assert.False(t, store.IsRecording())
	assert.Equal(t, capture.StateIdle, s.State())
	assert.Equal(t, 0, sched.Pending())
}

func TestStart_LenientWithoutPatient(t *testing.T) {
	t.Parallel()

	s, store, _ := newSession(t, false)

	require.NoError(t, s.Start())
	assert.True(t, store.IsRecording())
	require.ErrorIs(t, s.Start(), capture.ErrAlreadyRecording)
}

func TestElapsed_TicksOnlyWhileRecording(t *testing.T) {
	t.Parallel()

	s, store, sched := newSession(t, true)
	linkFirstPatient(store)
	require.NoError(t, s.Start())

	sched.Advance(3 * time.Second)
	assert.Equal(t, 3*time.Second, s.Elapsed())

	require.NoError(t, s.Pause())
	sched.Advance(10 * time.Second)
	assert.Equal(t, 3*time.Second, s.Elapsed())
	assert.True(t, store.IsRecording())

	require.NoError(t, s.Resume())
	sched.Advance(2 * time.Second)
	assert.Equal(t, 5*time.Second, s.Elapsed())
	assert.Equal(t, "0:05", capture.FormatElapsed(s.Elapsed()))
}

func TestStop_MovesToReview(t *testing.T) {
	t.Parallel()

	s, store, sched := newSession(t, true)
	linkFirstPatient(store)
	require.NoError(t, s.Start())
	require.NoError(t, s.SetMinimalMode(true))
	sched.Advance(65 * time.Second)

	tr, err := s.Stop()
	require.NoError(t, err)

	assert.Equal(t, 65, tr.Duration)
	assert.Equal(t, "p1", tr.PatientID)

	st := store.State()
	assert.Equal(t, workflow.StepReview, st.CurrentStep)
	assert.True(t, st.IsComplete(workflow.StepCapture))
	assert.False(t, st.IsRecording)
	assert.False(t, st.IsMinimalMode)
	require.NotNil(t, st.CurrentTranscript)
	assert.Equal(t, fixtures.Transcript().ID, st.CurrentTranscript.ID)

	assert.Equal(t, 0, sched.Pending())
	_, err = s.Stop()
	require.ErrorIs(t, err, capture.ErrNotRecording)
}

func TestStop_FromPaused(t *testing.T) {
	t.Parallel()

	s, store, _ := newSession(t, false)
	require.NoError(t, s.Start())
	require.NoError(t, s.Pause())

	_, err := s.Stop()
	require.NoError(t, err)
	assert.Equal(t, workflow.StepReview, store.CurrentStep())
}

func TestReveal_ProgressiveLines(t *testing.T) {
	t.Parallel()

	s, _, sched := newSession(t, false)
	require.NoError(t, s.Start())
	total := len(fixtures.Transcript().Lines())

	sched.Advance(2500 * time.Millisecond)
	assert.Len(t, s.Snapshot().Lines, 1)

	sched.Advance(time.Duration(total+5) * 2500 * time.Millisecond)
	snap := s.Snapshot()
	assert.Len(t, snap.Lines, total)
	assert.Equal(t, total, snap.TotalLines)
}

func TestReveal_AmbientSuppressesSmallTalk(t *testing.T) {
	t.Parallel()

	s, _, sched := newSession(t, false)
	s.SetAmbientMode(true)
	require.NoError(t, s.Start())

	sched.Advance(6 * 2500 * time.Millisecond)
	snap := s.Snapshot()

	assert.Empty(t, snap.Lines)
	assert.Equal(t, 2, snap.Suppressed)
	require.Len(t, snap.Ambient, 4)
	for _, seg := range snap.Ambient {
		assert.True(t, seg.IsClinical)
	}

	ids := make([]string, 0, len(snap.Moments))
	for _, m := range snap.Moments {
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, []string{"cm1", "cm2", "cm3"}, ids)
}

func TestSetMinimalMode_RequiresRecording(t *testing.T) {
	t.Parallel()

	s, store, _ := newSession(t, false)

	err := s.SetMinimalMode(true)
	_, ok := validation.As(err)
	require.True(t, ok)
	assert.False(t, store.IsMinimalMode())

	require.NoError(t, s.SetMinimalMode(false))
}

func TestClose_CancelsTimers(t *testing.T) {
	t.Parallel()

	s, _, sched := newSession(t, false)
	require.NoError(t, s.Start())
	s.Close()

	assert.Equal(t, 0, sched.Pending())
	sched.Advance(time.Minute)
	assert.Zero(t, s.Elapsed())
}

func TestKnob(t *testing.T) {
	t.Parallel()

	s, _, sched := newSession(t, false)

	assert.False(t, s.Read())
	s.Toggle()
	assert.True(t, s.Read())
	s.Toggle()
	assert.Equal(t, capture.StatePaused, s.State())
	s.On()
	sched.Advance(time.Second)
	assert.Equal(t, time.Second, s.Elapsed())
	s.Off()
	assert.False(t, s.Read())
}

func TestKnob_OnRejectedWithoutPatient(t *testing.T) {
	t.Parallel()

	s, store, _ := newSession(t, true)
	s.On()

	assert.False(t, s.Read())
	assert.False(t, store.IsRecording())
}

func TestFormatElapsed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0:00", capture.FormatElapsed(0))
	assert.Equal(t, "1:05", capture.FormatElapsed(65*time.Second))
	assert.Equal(t, "12:00", capture.FormatElapsed(12*time.Minute))
}
