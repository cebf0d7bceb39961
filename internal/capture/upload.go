package capture

import (
	"errors"
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
	ErrUploadInProgress = errors.New("upload in progress")
	ErrNoFileSelected   = errors.New("no file selected")
)

type UploadState string

const (
	UploadNoFile       UploadState = "no-file"
	UploadFileSelected UploadState = "file-selected"
	UploadUploading    UploadState = "uploading"
	UploadDone         UploadState = "done"
)

const progressStep = 10

// Upload is the file upload machine:
// no-file -> file-selected -> uploading(0..100) -> done.
type Upload struct {
	mu       sync.Mutex
	store    *workflow.Store
	sched    clock.Scheduler
	interval time.Duration
	logger   *slog.Logger
	source   clinical.Transcript

	state    UploadState
	file     *clinical.AudioFile
	progress int
	cancel   clock.Cancel
}

// NewUpload creates an upload whose progress moves by 10 every interval.
func NewUpload(store *workflow.Store, sched clock.Scheduler, interval time.Duration, logger *slog.Logger) *Upload {
	if logger == nil {
		logger = slog.Default()
	}

	return &Upload{
		store:    store,
		sched:    sched,
		interval: interval,
		logger:   logger,
		source:   fixtures.Transcript(),
		state:    UploadNoFile,
	}
}

// Select validates and holds f. Unsupported types are rejected before the
// machine leaves its current state.
func (u *Upload) Select(f clinical.AudioFile) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state == UploadUploading {
		return ErrUploadInProgress
	}

	if !IsAcceptedAudio(f.MIMEType) {
		u.logger.Info("upload rejected", "name", f.Name, "type", f.MIMEType)

		return validation.Newf("file", "Unsupported file type %q. Choose an MP3, WAV, M4A or OGG file.", f.MIMEType)
	}

	u.file = &f
	u.progress = 0
	u.state = UploadFileSelected

	return nil
}

// Clear discards the selected file and cancels any upload.
func (u *Upload) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.stop()
	u.file = nil
	u.progress = 0
	u.state = UploadNoFile
}

// Begin starts the simulated upload and transcription.
func (u *Upload) Begin() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	switch u.state {
	case UploadUploading:
		return ErrUploadInProgress
	case UploadNoFile, UploadDone:
		return ErrNoFileSelected
	case UploadFileSelected:
	}

	u.state = UploadUploading
	u.progress = 0
	u.cancel = u.sched.Every(u.interval, u.step)

	return nil
}

func (u *Upload) step() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state != UploadUploading {
		return
	}

	u.progress = min(u.progress+progressStep, 100)
	if u.progress < 100 {
		return
	}

	u.stop()
	u.state = UploadDone

	t := u.source
	t.CreatedAt = u.sched.Now()
	if p := u.store.SelectedPatient(); p != nil {
		t.PatientID = p.ID
		t.PatientName = p.Name
	}

	u.store.SetAudioFile(u.file)
	u.store.SetCurrentTranscript(&t)
	u.store.MarkStepComplete(workflow.StepCapture)
	u.store.SetCurrentStep(workflow.StepReview)
	u.logger.Debug("upload complete", "name", u.file.Name)
}

// stop must be called with mu held.
func (u *Upload) stop() {
	if u.cancel != nil {
		u.cancel()
		u.cancel = nil
	}
}

func (u *Upload) State() UploadState {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.state
}

func (u *Upload) Progress() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.progress
}

func (u *Upload) File() *clinical.AudioFile {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.file == nil {
		return nil
	}
	f := *u.file

	return &f
}

// ProgressDial exposes progress as a control capped at 100.
func (u *Upload) ProgressDial() uictl.CappedDial[int] {
	return uictl.Capped[int](uictl.DialFunc[int](u.Progress), 100)
}
