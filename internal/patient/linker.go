package patient

import (
	"log/slog"

	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/workflow"
)

// Linker associates the session with one patient by reference. The link
// lives in the workflow store as the selected patient, so there is never
// more than one.
type Linker struct {
	dir    *Directory
	store  *workflow.Store
	logger *slog.Logger
}

func NewLinker(dir *Directory, store *workflow.Store, logger *slog.Logger) *Linker {
	if logger == nil {
		logger = slog.Default()
	}

	return &Linker{dir: dir, store: store, logger: logger}
}

// Link replaces any existing link with the patient identified by id.
func (l *Linker) Link(id string) (clinical.Patient, error) {
	p, err := l.dir.Get(id)
	if err != nil {
		return clinical.Patient{}, err
	}

	l.store.SetSelectedPatient(&p)
	l.logger.Debug("patient linked", "id", id)

	return p, nil
}

// Unlink clears the link. It is a no-op when nothing is linked.
func (l *Linker) Unlink() {
	if l.store.LinkedPatientID() == "" {
		return
	}

	l.store.SetSelectedPatient(nil)
}

// Linked returns the linked patient, or nil.
func (l *Linker) Linked() *clinical.Patient {
	return l.store.SelectedPatient()
}

// CreateAndLink creates a patient and links it immediately.
func (l *Linker) CreateAndLink(in NewPatient) (clinical.Patient, error) {
	p, err := l.dir.Create(in)
	if err != nil {
		return clinical.Patient{}, err
	}

	l.store.SetSelectedPatient(&p)

	return p, nil
}
