package workflow

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/pkg/channels"
)

// EventKind names the field a mutation touched.
type EventKind string

const (
	EventStep           EventKind = "step"
	EventStepCompleted  EventKind = "step-completed"
	EventDocumentStatus EventKind = "document-status"
	EventPatient        EventKind = "patient"
	EventTranscript     EventKind = "transcript"
	EventAudioFile      EventKind = "audio-file"
	EventRecording      EventKind = "recording"
	EventAmbientMode    EventKind = "ambient-mode"
	EventMinimalMode    EventKind = "minimal-mode"
)

// Event is published after every mutation with the resulting snapshot.
type Event struct {
	Kind  EventKind `json:"kind"`
	State State     `json:"state"`
}

// State is a snapshot of the store. It shares no memory with the store or
// with the values passed to its setters.
type State struct {
	CurrentStep       Step                 `json:"currentStep"`
	CompletedSteps    []Step               `json:"completedSteps"`
	DocumentStatus    DocumentStatus       `json:"documentStatus"`
	SelectedPatient   *clinical.Patient    `json:"selectedPatient,omitempty"`
	LinkedPatientID   string               `json:"linkedPatientId,omitempty"`
	CurrentTranscript *clinical.Transcript `json:"currentTranscript,omitempty"`
	AudioFile         *clinical.AudioFile  `json:"audioFile,omitempty"`
	IsRecording       bool                 `json:"isRecording"`
	IsAmbientMode     bool                 `json:"isAmbientMode"`
	IsMinimalMode     bool                 `json:"isMinimalMode"`
}

// IsComplete reports whether step has been marked complete.
func (s State) IsComplete(step Step) bool {
	return slices.Contains(s.CompletedSteps, step)
}

// HasCapture reports whether a transcript or an audio file is held.
func (s State) HasCapture() bool {
	return s.CurrentTranscript != nil || s.AudioFile != nil
}

type state struct {
	step       Step
	completed  map[Step]struct{}
	status     DocumentStatus
	patient    *clinical.Patient
	transcript *clinical.Transcript
	audio      *clinical.AudioFile
	recording  bool
	ambient    bool
	minimal    bool
}

// Store is the single source of truth for navigation and session flags.
// All mutations go through update, which serialises writers and publishes
// an Event per change.
type Store struct {
	mu     sync.RWMutex
	st     state
	events *channels.Broadcaster[Event]
	logger *slog.Logger
}

type Option func(*Store)

// WithLogger sets the logger used for transition debugging.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// NewStore creates a store positioned at the capture step with a draft note.
func NewStore(opts ...Option) *Store {
	s := &Store{
		st: state{
			step:      StepCapture,
			completed: make(map[Step]struct{}),
			status:    StatusDraft,
		},
		events: channels.NewBroadcaster[Event](),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// update applies fn under the write lock. fn reports whether it changed
// anything; only changes are published.
func (s *Store) update(kind EventKind, fn func(st *state) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !fn(&s.st) {
		return false
	}

	snap := s.snapshot()
	s.logger.Debug("workflow state changed", "kind", kind, "step", snap.CurrentStep)
	s.events.Publish(Event{Kind: kind, State: snap})

	return true
}

// snapshot must be called with mu held.
func (s *Store) snapshot() State {
	out := State{
		CurrentStep:    s.st.step,
		DocumentStatus: s.st.status,
		IsRecording:    s.st.recording,
		IsAmbientMode:  s.st.ambient,
		IsMinimalMode:  s.st.minimal,
		CompletedSteps: make([]Step, 0, len(s.st.completed)),
	}

	for _, step := range Steps() {
		if _, ok := s.st.completed[step]; ok {
			out.CompletedSteps = append(out.CompletedSteps, step)
		}
	}

	out.SelectedPatient = clonePtr(s.st.patient)
	if out.SelectedPatient != nil {
		out.LinkedPatientID = out.SelectedPatient.ID
	}
	out.CurrentTranscript = clonePtr(s.st.transcript)
	out.AudioFile = clonePtr(s.st.audio)

	return out
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot()
}

// Subscribe returns a channel of change events. Slow readers lose events
// once buffer is full. Call the returned function to unsubscribe.
func (s *Store) Subscribe(buffer int) (<-chan Event, func()) {
	return s.events.Subscribe(buffer)
}

// Subscribers returns the number of live subscriptions.
func (s *Store) Subscribers() int {
	return s.events.Len()
}

// DroppedEvents counts events lost to full buffers across current
// subscribers.
func (s *Store) DroppedEvents() int {
	n := 0
	for _, st := range s.events.Stats() {
		n += st.Dropped
	}

	return n
}

// Close closes every subscriber channel.
func (s *Store) Close() {
	s.events.Close()
}

// SetCurrentStep sets the current step unconditionally. Gating is the
// caller's job; see Policy.Navigate. Unknown steps are ignored.
func (s *Store) SetCurrentStep(step Step) {
	if !step.Valid() {
		s.logger.Error("ignoring unknown step", "step", step)

		return
	}

	s.update(EventStep, func(st *state) bool {
		st.step = step

		return true
	})
}

// setStepIf sets the step when allow approves the current snapshot. The
// check and the assignment happen under the same lock.
func (s *Store) setStepIf(step Step, allow func(State) bool) bool {
	var ok bool

	s.update(EventStep, func(st *state) bool {
		ok = allow(s.snapshot())
		if ok {
			st.step = step
		}

		return ok
	})

	return ok
}

// MarkStepComplete adds step to the completed set. Repeated calls are no-ops.
func (s *Store) MarkStepComplete(step Step) {
	if !step.Valid() {
		return
	}

	s.update(EventStepCompleted, func(st *state) bool {
		if _, ok := st.completed[step]; ok {
			return false
		}
		st.completed[step] = struct{}{}

		return true
	})
}

// SetDocumentStatus sets the status unconditionally, backwards included.
// Use AdvanceDocumentStatus for forward-only moves.
func (s *Store) SetDocumentStatus(status DocumentStatus) {
	s.update(EventDocumentStatus, func(st *state) bool {
		st.status = status

		return true
	})
}

func (s *Store) advanceStatus(status DocumentStatus) bool {
	return s.update(EventDocumentStatus, func(st *state) bool {
		if !st.status.Before(status) {
			return false
		}
		st.status = status

		return true
	})
}

// SetSelectedPatient replaces the active patient. nil clears it.
func (s *Store) SetSelectedPatient(p *clinical.Patient) {
	s.update(EventPatient, func(st *state) bool {
		st.patient = clonePtr(p)

		return true
	})
}

// SetCurrentTranscript replaces the held transcript. nil clears it.
func (s *Store) SetCurrentTranscript(t *clinical.Transcript) {
	s.update(EventTranscript, func(st *state) bool {
		st.transcript = clonePtr(t)

		return true
	})
}

// SetAudioFile replaces the held audio file. nil clears it.
func (s *Store) SetAudioFile(f *clinical.AudioFile) {
	s.update(EventAudioFile, func(st *state) bool {
		st.audio = clonePtr(f)

		return true
	})
}

func (s *Store) SetRecording(v bool) {
	s.update(EventRecording, func(st *state) bool {
		st.recording = v

		return true
	})
}

func (s *Store) SetAmbientMode(v bool) {
	s.update(EventAmbientMode, func(st *state) bool {
		st.ambient = v

		return true
	})
}

func (s *Store) SetMinimalMode(v bool) {
	s.update(EventMinimalMode, func(st *state) bool {
		st.minimal = v

		return true
	})
}

func (s *Store) CurrentStep() Step {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.step
}

// CompletedSteps returns the completed set in canonical step order.
func (s *Store) CompletedSteps() []Step {
	return s.State().CompletedSteps
}

func (s *Store) IsComplete(step Step) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.st.completed[step]

	return ok
}

func (s *Store) DocumentStatus() DocumentStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.status
}

// SelectedPatient returns a copy of the active patient, or nil.
func (s *Store) SelectedPatient() *clinical.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return clonePtr(s.st.patient)
}

// LinkedPatientID is the id of the selected patient, or "".
func (s *Store) LinkedPatientID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.st.patient == nil {
		return ""
	}

	return s.st.patient.ID
}

func (s *Store) CurrentTranscript() *clinical.Transcript {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return clonePtr(s.st.transcript)
}

func (s *Store) AudioFile() *clinical.AudioFile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return clonePtr(s.st.audio)
}

func (s *Store) IsRecording() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.recording
}

func (s *Store) IsAmbientMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.ambient
}

func (s *Store) IsMinimalMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.minimal
}

// clonePtr deep-copies *v so the store shares no memory with callers.
func clonePtr[T interface{ Clone() T }](v *T) *T {
	if v == nil {
		return nil
	}
	c := (*v).Clone()

	return &c
}
