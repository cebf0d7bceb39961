// Package patient holds the in-session patient list and the link between
// the capture session and exactly one patient.
package patient

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/idgen"
	"github.com/alkime/itranscript/internal/validation"
	"github.com/alkime/itranscript/pkg/collections"
)

var ErrPatientNotFound = errors.New("patient not found")

// NewPatient is the input for creating a patient. Age is kept as entered so
// a blank field can be told apart from zero.
type NewPatient struct {
	Name             string          `json:"name"`
	Age              string          `json:"age"`
	Gender           clinical.Gender `json:"gender"`
	MedicalID        string          `json:"medicalId"`
	Contact          string          `json:"contact"`
	PrimaryCondition string          `json:"primaryCondition"`
}

// Directory is the patient list. Reads return copies.
type Directory struct {
	mu       sync.RWMutex
	patients []clinical.Patient
	ids      idgen.Generator
	now      func() time.Time
	logger   *slog.Logger
}

type DirectoryOption func(*Directory)

// WithClock sets the time source for new patients' last visit and MRNs.
func WithClock(now func() time.Time) DirectoryOption {
	return func(d *Directory) {
		d.now = now
	}
}

func WithLogger(l *slog.Logger) DirectoryOption {
	return func(d *Directory) {
		d.logger = l
	}
}

// NewDirectory creates a directory seeded with patients.
func NewDirectory(seed []clinical.Patient, ids idgen.Generator, opts ...DirectoryOption) *Directory {
	d := &Directory{
		patients: slices.Clone(seed),
		ids:      ids,
		now:      time.Now,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// List returns every patient in directory order.
func (d *Directory) List() []clinical.Patient {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Clone(d.patients)
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.patients)
}

// Get looks a patient up by id.
func (d *Directory) Get(id string) (clinical.Patient, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i := slices.IndexFunc(d.patients, func(p clinical.Patient) bool { return p.ID == id })
	if i < 0 {
		return clinical.Patient{}, fmt.Errorf("%w: %s", ErrPatientNotFound, id)
	}

	return d.patients[i], nil
}

// Search returns the patients whose name or medical ID contains query,
// ignoring case. An empty query matches everyone.
func (d *Directory) Search(query string) []clinical.Patient {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return Filter(d.patients, query)
}

// Filter is the pure matching behind Search.
func Filter(patients []clinical.Patient, query string) []clinical.Patient {
	q := strings.ToLower(strings.TrimSpace(query))

	return collections.Filter(patients, func(p clinical.Patient) bool {
		return q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.MedicalID), q)
	})
}

// Create validates in, assigns a fresh id and appends the patient.
func (d *Directory) Create(in NewPatient) (clinical.Patient, error) {
	p, err := d.build(in)
	if err != nil {
		d.logger.Info("patient rejected", "error", err)

		return clinical.Patient{}, err
	}

	d.mu.Lock()
	d.patients = append(d.patients, p)
	d.mu.Unlock()

	d.logger.Debug("patient created", "id", p.ID, "medical_id", p.MedicalID)

	return p, nil
}

func (d *Directory) build(in NewPatient) (clinical.Patient, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return clinical.Patient{}, validation.New("name", "Patient name is required")
	}

	mrn := strings.TrimSpace(in.MedicalID)
	if mrn == "" {
		return clinical.Patient{}, validation.New("medicalId", "Medical ID is required")
	}

	ageText := strings.TrimSpace(in.Age)
	if ageText == "" {
		return clinical.Patient{}, validation.New("age", "Age is required")
	}

	age, err := strconv.Atoi(ageText)
	if err != nil || age < 0 || age > 150 {
		return clinical.Patient{}, validation.Newf("age", "Age must be a whole number between 0 and 150, got %q", ageText)
	}

	gender := in.Gender
	if gender == "" {
		gender = clinical.GenderOther
	}

	if !gender.Valid() {
		return clinical.Patient{}, validation.Newf("gender", "Unknown gender %q", gender)
	}

	now := d.now()

	return clinical.Patient{
		ID:               d.ids.Next(),
		Name:             name,
		Age:              age,
		Gender:           gender,
		MedicalID:        mrn,
		Contact:          strings.TrimSpace(in.Contact),
		PrimaryCondition: strings.TrimSpace(in.PrimaryCondition),
		LastVisit:        &now,
	}, nil
}

// GenerateMRN suggests a medical record number built from the clock.
func (d *Directory) GenerateMRN() string {
	return fmt.Sprintf("MRN-%06d", d.now().UnixMilli()%1_000_000)
}
