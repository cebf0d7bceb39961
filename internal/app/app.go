// Package app wires the workflow store and its collaborators into one
// session. The HTTP server and the terminal UI both drive an App.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/alkime/itranscript/internal/capture"
	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/clipboard"
	"github.com/alkime/itranscript/internal/clock"
	"github.com/alkime/itranscript/internal/config"
	"github.com/alkime/itranscript/internal/corrections"
	"github.com/alkime/itranscript/internal/fixtures"
	"github.com/alkime/itranscript/internal/idgen"
	"github.com/alkime/itranscript/internal/patient"
	"github.com/alkime/itranscript/internal/summary"
	"github.com/alkime/itranscript/internal/validation"
	"github.com/alkime/itranscript/internal/workflow"
	"github.com/alkime/itranscript/pkg/collections"
)

var (
	ErrNoTranscript = errors.New("no transcript captured")
	ErrNoSummary    = errors.New("no summary generated")
)

// App is one clinician session.
type App struct {
	Config      *config.Config
	Logger      *slog.Logger
	Store       *workflow.Store
	Policy      workflow.Policy
	Clock       clock.Scheduler
	Patients    *patient.Directory
	Linker      *patient.Linker
	Corrections *corrections.Dictionary
	Capture     *capture.Session
	Upload      *capture.Upload
	Summaries   *summary.Generator
	Clipboard   clipboard.Clipboard

	mu   sync.Mutex
	note *summary.Note
}

type options struct {
	sched     clock.Scheduler
	clipboard clipboard.Clipboard
	logger    *slog.Logger
}

type Option func(*options)

// WithScheduler replaces the wall-clock scheduler, typically with a
// clock.Manual in tests.
func WithScheduler(s clock.Scheduler) Option {
	return func(o *options) {
		o.sched = s
	}
}

func WithClipboard(c clipboard.Clipboard) Option {
	return func(o *options) {
		o.clipboard = c
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New builds an App from cfg. Timers started by the App stop when ctx is
// done.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	o := options{
		sched:     clock.NewReal(ctx),
		clipboard: &clipboard.Memory{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	policy, err := workflow.ParsePolicy(cfg.GatingMode)
	if err != nil {
		return nil, err
	}

	ids := func(prefix string) idgen.Generator {
		// Strategy was validated above.
		g, _ := idgen.New(cfg.IDStrategy, prefix)

		return g
	}

	store := workflow.NewStore(workflow.WithLogger(o.logger))
	dir := patient.NewDirectory(fixtures.Patients(), ids("p-"),
		patient.WithClock(o.sched.Now), patient.WithLogger(o.logger))

	a := &App{
		Config:      cfg,
		Logger:      o.logger,
		Store:       store,
		Policy:      policy,
		Clock:       o.sched,
		Patients:    dir,
		Linker:      patient.NewLinker(dir, store, o.logger),
		Corrections: corrections.NewDictionary(fixtures.Corrections(), ids("c-"), o.sched.Now, o.logger),
		Capture: capture.NewSession(store, o.sched, capture.Config{
			RequirePatient: cfg.RequirePatientLink,
			TickInterval:   cfg.TickInterval,
			RevealInterval: cfg.RevealInterval,
		}, capture.WithSessionLogger(o.logger)),
		Upload:    capture.NewUpload(store, o.sched, cfg.UploadStepInterval, o.logger),
		Summaries: summary.NewGenerator(ids("sum-"), o.sched.Now, o.logger),
		Clipboard: o.clipboard,
	}

	return a, nil
}

// Close stops timers and releases store subscribers.
func (a *App) Close() {
	a.Capture.Close()
	a.Upload.Clear()
	a.Store.Close()
}

// Navigate moves to step through the gating policy.
func (a *App) Navigate(step workflow.Step) bool {
	return a.Policy.Navigate(a.Store, step)
}

// Review is everything the review screen shows.
type Review struct {
	Transcript       clinical.Transcript              `json:"transcript"`
	Insights         []clinical.ClinicalInsight       `json:"insights"`
	Differentials    []clinical.DifferentialDiagnosis `json:"differentials"`
	SafetyAlerts     []clinical.SafetyAlert           `json:"safetyAlerts"`
	Tasks            []clinical.ClinicalTask          `json:"tasks"`
	QualityWarnings  []clinical.QualityWarning        `json:"qualityWarnings"`
	DocumentStatus   workflow.DocumentStatus          `json:"documentStatus"`
	SuppressedHidden int                              `json:"suppressedHidden"`
}

// Review returns the current transcript, corrected, with its insights.
func (a *App) Review(showSuppressed bool) (Review, error) {
	t := a.Store.CurrentTranscript()
	if t == nil {
		return Review{}, ErrNoTranscript
	}

	all := append(fixtures.Insights(), fixtures.SuppressedInsights()...)
	visible := clinical.VisibleInsights(all, showSuppressed)

	return Review{
		Transcript:       a.Corrections.ApplyTranscript(*t),
		Insights:         visible,
		Differentials:    fixtures.Differentials(),
		SafetyAlerts:     fixtures.SafetyAlerts(),
		Tasks:            fixtures.Tasks(),
		QualityWarnings:  fixtures.QualityWarnings(),
		DocumentStatus:   a.Store.DocumentStatus(),
		SuppressedHidden: len(all) - len(visible),
	}, nil
}

// CompleteReview marks the transcript reviewed and moves to summarize.
func (a *App) CompleteReview() error {
	if a.Store.CurrentTranscript() == nil && a.Store.AudioFile() == nil {
		return ErrNoTranscript
	}

	workflow.CompleteReview(a.Store)

	return nil
}

// GenerateSummary creates a note from the current transcript and patient
// and keeps it as the session's working note.
func (a *App) GenerateSummary(req summary.Request) (summary.Note, error) {
	req.Transcript = a.Store.CurrentTranscript()
	req.Patient = a.Store.SelectedPatient()

	note, err := a.Summaries.Generate(req)
	if err != nil {
		return summary.Note{}, err
	}

	if req.Transcript != nil {
		note.Content = a.Corrections.Apply(note.Content)
	}

	a.mu.Lock()
	a.note = &note
	a.mu.Unlock()

	return note, nil
}

// Note returns the working note, or nil.
func (a *App) Note() *summary.Note {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.note == nil {
		return nil
	}
	n := *a.note

	return &n
}

// EditNote replaces the working note's body, as after editing it by
// hand, and re-runs the language check.
func (a *App) EditNote(content string) (summary.Note, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.note == nil {
		return summary.Note{}, ErrNoSummary
	}
	if strings.TrimSpace(content) == "" {
		return summary.Note{}, validation.New("summary", "The note cannot be empty.")
	}

	a.note.Content = content
	a.note.Warnings = a.Summaries.LanguageWarnings(content)

	return *a.note, nil
}

// CopySummary copies the working note's body.
func (a *App) CopySummary() (string, error) {
	n := a.Note()
	if n == nil {
		return "", ErrNoSummary
	}

	if err := a.Clipboard.Copy(n.Content); err != nil {
		return "", fmt.Errorf("copy summary: %w", err)
	}

	return n.Content, nil
}

// CopyTranscript copies the corrected transcript text.
func (a *App) CopyTranscript() (string, error) {
	t := a.Store.CurrentTranscript()
	if t == nil {
		return "", ErrNoTranscript
	}

	text := a.Corrections.Apply(t.ImprovedText)
	if err := a.Clipboard.Copy(text); err != nil {
		return "", fmt.Errorf("copy transcript: %w", err)
	}

	return text, nil
}

// FinalizeSummary finalises the working note, records it against the
// linked patient and returns to the patient hub.
func (a *App) FinalizeSummary() error {
	n := a.Note()
	if n == nil {
		return validation.New("summary", "Generate a summary before proceeding.")
	}

	if p := a.Store.SelectedPatient(); p != nil {
		a.Summaries.Save(*n, *p)
	}

	workflow.FinalizeSummary(a.Store)

	return nil
}

// OpenPatient selects a patient by id and shows their demographics.
func (a *App) OpenPatient(id string) (clinical.Patient, error) {
	p, err := a.Patients.Get(id)
	if err != nil {
		return clinical.Patient{}, err
	}

	workflow.OpenPatient(a.Store, p)

	return p, nil
}

// OpenTranscription loads a past transcription for review. Every history
// row opens the built-in transcript, relabelled for the row.
func (a *App) OpenTranscription(id string) error {
	r, ok := collections.Find(fixtures.RecentTranscriptions(), func(r clinical.RecentTranscription) bool {
		return r.ID == id
	})
	if !ok {
		return fmt.Errorf("transcription %s: %w", id, errNotFound)
	}

	t := fixtures.Transcript()
	t.Title = r.Title
	t.PatientID = r.PatientID
	t.PatientName = r.PatientName
	t.VisitType = r.VisitType
	workflow.OpenTranscription(a.Store, t)

	return nil
}

var errNotFound = errors.New("not found")

// IsNotFound reports whether err means a lookup missed.
func IsNotFound(err error) bool {
	return errors.Is(err, errNotFound) ||
		errors.Is(err, patient.ErrPatientNotFound) ||
		errors.Is(err, corrections.ErrCorrectionNotFound)
}

// Demographics is the patient detail view.
type Demographics struct {
	Patient     clinical.Patient           `json:"patient"`
	Visits      []clinical.Visit           `json:"visits"`
	Medications []clinical.Medication      `json:"medications"`
	Vitals      []clinical.VitalSign       `json:"vitals"`
	Summaries   []clinical.PreviousSummary `json:"summaries"`
}

// Demographics returns the record for id. The medication and vitals series
// are shared sample data.
func (a *App) Demographics(id string) (Demographics, error) {
	p, err := a.Patients.Get(id)
	if err != nil {
		return Demographics{}, err
	}

	return Demographics{
		Patient:     p,
		Visits:      fixtures.VisitsFor(id),
		Medications: fixtures.Medications(),
		Vitals:      fixtures.Vitals(),
		Summaries:   a.Summaries.History(id),
	}, nil
}
