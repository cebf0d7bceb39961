// Package clinical defines the entities the transcription workflow operates on.
package clinical

import (
	"slices"
	"time"
)

// Patient is a patient record. Clinical context fields are optional.
type Patient struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Age                int            `json:"age"`
	Gender             Gender         `json:"gender"`
	MedicalID          string         `json:"medicalId"`
	Contact            string         `json:"contact,omitempty"`
	PrimaryCondition   string         `json:"primaryCondition,omitempty"`
	LastVisit          *time.Time     `json:"lastVisit,omitempty"`
	AISummary          string         `json:"aiSummary,omitempty"`
	Alerts             []PatientAlert `json:"alerts,omitempty"`
	Allergies          string         `json:"allergies,omitempty"`
	CurrentMedications string         `json:"currentMedications,omitempty"`
	Vitals             *Vitals        `json:"vitals,omitempty"`
}

// PatientAlert is a standing warning attached to a patient.
type PatientAlert struct {
	ID       string    `json:"id"`
	Type     AlertType `json:"type"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
}

// Vitals is the most recent snapshot shown on the patient card.
type Vitals struct {
	BloodPressure   string  `json:"bloodPressure,omitempty"`
	HeartRate       int     `json:"heartRate,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
	RespiratoryRate int     `json:"respiratoryRate,omitempty"`
}

// Clone returns a deep copy of p.
func (p Patient) Clone() Patient {
	p.Alerts = slices.Clone(p.Alerts)
	if p.LastVisit != nil {
		v := *p.LastVisit
		p.LastVisit = &v
	}
	if p.Vitals != nil {
		v := *p.Vitals
		p.Vitals = &v
	}

	return p
}

// HighestAlertSeverity returns the most severe alert level, or "" when the
// patient has no alerts.
func (p Patient) HighestAlertSeverity() Severity {
	var highest Severity
	for _, a := range p.Alerts {
		if a.Severity.Rank() > highest.Rank() {
			highest = a.Severity
		}
	}

	return highest
}

// Visit is a past encounter.
type Visit struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patientId"`
	Date         time.Time `json:"date"`
	Type         string    `json:"type"`
	Diagnosis    string    `json:"diagnosis,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	TranscriptID string    `json:"transcriptId,omitempty"`
}

type Medication struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage"`
	Frequency string     `json:"frequency"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Active    bool       `json:"active"`
}

type VitalSign struct {
	Date                   time.Time `json:"date"`
	BloodPressureSystolic  int       `json:"bloodPressureSystolic,omitempty"`
	BloodPressureDiastolic int       `json:"bloodPressureDiastolic,omitempty"`
	HeartRate              int       `json:"heartRate,omitempty"`
	Temperature            float64   `json:"temperature,omitempty"`
	OxygenSaturation       int       `json:"oxygenSaturation,omitempty"`
	Weight                 float64   `json:"weight,omitempty"`
}
