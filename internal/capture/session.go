// Package capture simulates live recording and file upload. Both machines
// end the same way: a transcript is placed in the workflow store, capture is
// marked complete and the workflow moves on to review.
package capture

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/clock"
	"github.com/alkime/itranscript/internal/fixtures"
	"github.com/alkime/itranscript/internal/validation"
	"github.com/alkime/itranscript/internal/workflow"
	"github.com/alkime/itranscript/pkg/uictl"
)

var (
	ErrAlreadyRecording = errors.New("recording already in progress")
	ErrNotRecording     = errors.New("no recording in progress")
)

// State of a capture session.
type State string

const (
	StateIdle      State = "idle"
	StateRecording State = "recording"
	StatePaused    State = "paused"
	StateStopped   State = "stopped"
)

// Active reports whether a recording is in progress, paused or not.
func (s State) Active() bool {
	return s == StateRecording || s == StatePaused
}

// Config controls session timing and gating.
type Config struct {
	// RequirePatient rejects Start until a patient is linked.
	RequirePatient bool
	// TickInterval is how often elapsed time advances.
	TickInterval time.Duration
	// RevealInterval is how often another transcript line appears.
	RevealInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		RequirePatient: true,
		TickInterval:   time.Second,
		RevealInterval: 2500 * time.Millisecond,
	}
}

// Snapshot is what a view needs to render the session.
type Snapshot struct {
	State      State                        `json:"state"`
	Elapsed    time.Duration                `json:"elapsed"`
	Lines      []string                     `json:"lines"`
	TotalLines int                          `json:"totalLines"`
	Ambient    []clinical.TranscriptSegment `json:"ambientSegments,omitempty"`
	Suppressed int                          `json:"suppressed"`
	Moments    []clinical.ClinicalMoment    `json:"clinicalMoments,omitempty"`
}

// Session is the live-recording state machine:
// idle -> recording <-> paused -> stopped. A stopped session may be started
// again, which resets it.
//
// Timers run only while recording. Pause and Stop cancel them; Resume
// restarts them.
type Session struct {
	mu     sync.Mutex
	store  *workflow.Store
	sched  clock.Scheduler
	cfg    Config
	logger *slog.Logger

	source   clinical.Transcript
	lines    []string
	segments []clinical.TranscriptSegment
	moments  []clinical.ClinicalMoment

	state      State
	elapsed    time.Duration
	revealed   int
	ambientPos int
	ambient    []clinical.TranscriptSegment
	suppressed int
	surfaced   []clinical.ClinicalMoment

	cancelTick   clock.Cancel
	cancelReveal clock.Cancel
}

var _ uictl.Knob = (*Session)(nil)

type SessionOption func(*Session)

// WithTranscript replaces the transcript produced on Stop.
func WithTranscript(t clinical.Transcript) SessionOption {
	return func(s *Session) {
		s.source = t
	}
}

func WithSessionLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession creates an idle session bound to store.
func NewSession(store *workflow.Store, sched clock.Scheduler, cfg Config, opts ...SessionOption) *Session {
	s := &Session{
		store:    store,
		sched:    sched,
		cfg:      cfg,
		logger:   slog.Default(),
		source:   fixtures.Transcript(),
		segments: fixtures.AmbientSegments(),
		moments:  fixtures.ClinicalMoments(),
		state:    StateIdle,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.lines = s.source.Lines()

	return s
}

// Start begins a recording. In strict mode it fails with a validation
// error when no patient is linked, leaving the store untouched.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Active() {
		return ErrAlreadyRecording
	}

	if s.cfg.RequirePatient && s.store.LinkedPatientID() == "" {
		s.logger.Info("recording rejected", "reason", "no linked patient")

		return validation.New("patient", "Please link a patient before starting the recording.")
	}

	s.elapsed = 0
	s.revealed = 0
	s.ambientPos = 0
	s.ambient = nil
	s.suppressed = 0
	s.surfaced = nil

	s.state = StateRecording
	s.startTimers()
	s.store.SetRecording(true)
	s.logger.Debug("recording started", "patient", s.store.LinkedPatientID())

	return nil
}

// Pause freezes elapsed time and the transcript preview.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}

	s.stopTimers()
	s.state = StatePaused

	return nil
}

func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePaused {
		return fmt.Errorf("resume from %s: %w", s.state, ErrNotRecording)
	}

	s.state = StateRecording
	s.startTimers()

	return nil
}

// Stop finalises the recording and advances the workflow to review.
func (s *Session) Stop() (clinical.Transcript, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Active() {
		return clinical.Transcript{}, ErrNotRecording
	}

	s.stopTimers()
	s.state = StateStopped

	t := s.source
	t.Duration = int(s.elapsed / time.Second)
	t.CreatedAt = s.sched.Now()
	if p := s.store.SelectedPatient(); p != nil {
		t.PatientID = p.ID
		t.PatientName = p.Name
	}

	s.store.SetCurrentTranscript(&t)
	s.store.SetRecording(false)
	s.store.SetMinimalMode(false)
	s.store.MarkStepComplete(workflow.StepCapture)
	s.store.SetCurrentStep(workflow.StepReview)
	s.logger.Debug("recording stopped", "elapsed", s.elapsed, "transcript", t.ID)

	return t, nil
}

// Close cancels every pending timer. The session is unusable afterwards
// only in the sense that nothing ticks until Start or Resume.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimers()
	if s.state == StateRecording {
		s.state = StatePaused
	}
}

// SetAmbientMode toggles ambient capture. It may change at any time.
func (s *Session) SetAmbientMode(on bool) {
	s.store.SetAmbientMode(on)
}

// SetMinimalMode toggles the reduced view. Turning it on requires an
// active recording.
func (s *Session) SetMinimalMode(on bool) error {
	s.mu.Lock()
	active := s.state.Active()
	s.mu.Unlock()

	if on && !active {
		return validation.New("minimal", "Low-interaction mode is only available while recording.")
	}

	s.store.SetMinimalMode(on)

	return nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.elapsed
}

// Snapshot returns a copy of the session's visible state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		State:      s.state,
		Elapsed:    s.elapsed,
		Lines:      append([]string(nil), s.lines[:s.revealed]...),
		TotalLines: len(s.lines),
		Ambient:    append([]clinical.TranscriptSegment(nil), s.ambient...),
		Suppressed: s.suppressed,
		Moments:    append([]clinical.ClinicalMoment(nil), s.surfaced...),
	}
}

// Read implements uictl.Knob.
func (s *Session) Read() bool {
	return s.State() == StateRecording
}

// On starts or resumes. Rejections are logged; use Start to inspect them.
func (s *Session) On() {
	var err error
	switch s.State() {
	case StatePaused:
		err = s.Resume()
	case StateIdle, StateStopped:
		err = s.Start()
	case StateRecording:
	}

	if err != nil {
		s.logger.Info("cannot start recording", "error", err)
	}
}

func (s *Session) Off() {
	if s.State() == StateRecording {
		_ = s.Pause()
	}
}

func (s *Session) Toggle() {
	if s.Read() {
		s.Off()
	} else {
		s.On()
	}
}

// startTimers must be called with mu held.
func (s *Session) startTimers() {
	s.cancelTick = s.sched.Every(s.cfg.TickInterval, s.tick)
	s.cancelReveal = s.sched.Every(s.cfg.RevealInterval, s.reveal)
}

// stopTimers must be called with mu held.
func (s *Session) stopTimers() {
	if s.cancelTick != nil {
		s.cancelTick()
		s.cancelTick = nil
	}

	if s.cancelReveal != nil {
		s.cancelReveal()
		s.cancelReveal = nil
	}
}

func (s *Session) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		s.elapsed += s.cfg.TickInterval
	}
}

func (s *Session) reveal() {
	ambient := s.store.IsAmbientMode()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return
	}

	if ambient {
		s.revealAmbient()

		return
	}

	if s.revealed < len(s.lines) {
		s.revealed++
	}
}

// revealAmbient must be called with mu held. Non-clinical segments are
// counted but never shown.
func (s *Session) revealAmbient() {
	if s.ambientPos >= len(s.segments) {
		return
	}

	seg := s.segments[s.ambientPos]
	s.ambientPos++

	if !seg.IsClinical {
		s.suppressed++

		return
	}

	s.ambient = append(s.ambient, seg)
	for _, m := range s.moments {
		if m.SegmentID == seg.ID {
			s.surfaced = append(s.surfaced, m)
		}
	}
}

// FormatElapsed renders d as m:ss.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)

	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
