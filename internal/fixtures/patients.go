// Package fixtures is the in-memory stand-in for a backend.
//
// Every function returns a fresh copy so callers may mutate the result
// without affecting other sessions.
package fixtures

import (
	"slices"
	"time"

	"github.com/alkime/itranscript/internal/clinical"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return t
}

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		panic(err)
	}

	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)

	return &t
}

// Patients returns the seeded patient list.
func Patients() []clinical.Patient {
	return []clinical.Patient{
		{
			ID:               "p1",
			Name:             "Sarah Johnson",
			Age:              45,
			Gender:           clinical.GenderFemale,
			MedicalID:        "MRN-2024-001",
			Contact:          "+1 (555) 123-4567",
			PrimaryCondition: "Type 2 Diabetes",
			LastVisit:        dayPtr("2024-01-15"),
			AISummary: "Long-term diabetic patient with well-controlled HbA1c. " +
				"Recent concerns about peripheral neuropathy symptoms.",
			Alerts: []clinical.PatientAlert{
				{ID: "a1", Type: clinical.AlertAllergy, Message: "Penicillin allergy", Severity: clinical.SeverityHigh},
				{ID: "a2", Type: clinical.AlertMedication, Message: "On Metformin 1000mg BID", Severity: clinical.SeverityLow},
			},
		},
		{
			ID:               "p2",
			Name:             "Michael Chen",
			Age:              62,
			Gender:           clinical.GenderMale,
			MedicalID:        "MRN-2024-002",
			Contact:          "+1 (555) 234-5678",
			PrimaryCondition: "Hypertension, CAD",
			LastVisit:        dayPtr("2024-01-10"),
			AISummary: "Cardiovascular patient with stable angina. " +
				"Recently adjusted medication regimen showing improvement.",
			Alerts: []clinical.PatientAlert{
				{ID: "a3", Type: clinical.AlertRisk, Message: "High cardiovascular risk", Severity: clinical.SeverityHigh},
			},
		},
		{
			ID:               "p3",
			Name:             "Emily Rodriguez",
			Age:              34,
			Gender:           clinical.GenderFemale,
			MedicalID:        "MRN-2024-003",
			PrimaryCondition: "Anxiety Disorder",
			LastVisit:        dayPtr("2024-01-18"),
			AISummary:        "Managing generalized anxiety with CBT and low-dose SSRI. Good therapeutic response.",
		},
		{
			ID:               "p4",
			Name:             "James Thompson",
			Age:              78,
			Gender:           clinical.GenderMale,
			MedicalID:        "MRN-2024-004",
			PrimaryCondition: "COPD, Heart Failure",
			LastVisit:        dayPtr("2024-01-12"),
			AISummary: "Elderly patient with multiple comorbidities. " +
				"Stable on current regimen but requires close monitoring.",
			Alerts: []clinical.PatientAlert{
				{ID: "a4", Type: clinical.AlertCondition, Message: "Fall risk - use caution", Severity: clinical.SeverityMedium},
				{ID: "a5", Type: clinical.AlertMedication, Message: "Multiple drug interactions possible", Severity: clinical.SeverityMedium},
			},
		},
		{
			ID:               "p5",
			Name:             "Lisa Park",
			Age:              28,
			Gender:           clinical.GenderFemale,
			MedicalID:        "MRN-2024-005",
			PrimaryCondition: "Migraine",
			LastVisit:        dayPtr("2024-01-20"),
			AISummary:        "Chronic migraine patient, exploring preventive options after triptans showed limited efficacy.",
		},
		{
			ID:               "p6",
			Name:             "Robert Williams",
			Age:              55,
			Gender:           clinical.GenderMale,
			MedicalID:        "MRN-2024-006",
			PrimaryCondition: "Osteoarthritis",
			LastVisit:        dayPtr("2024-01-08"),
			AISummary:        "Bilateral knee OA with moderate pain. Considering referral to orthopedics for evaluation.",
		},
	}
}

// Visits returns every past visit, newest first per patient.
func Visits() []clinical.Visit {
	return []clinical.Visit{
		{ID: "v1", PatientID: "p1", Date: day("2024-01-15"), Type: "follow-up",
			Diagnosis: "Type 2 Diabetes - stable", Notes: "Regular follow-up, HbA1c reviewed"},
		{ID: "v2", PatientID: "p1", Date: day("2023-10-20"), Type: "consultation",
			Diagnosis: "Peripheral neuropathy symptoms", Notes: "New symptom presentation, ordered nerve conduction study"},
		{ID: "v3", PatientID: "p1", Date: day("2023-07-12"), Type: "routine",
			Diagnosis: "Annual diabetic review"},
		{ID: "v4", PatientID: "p1", Date: day("2023-04-05"), Type: "follow-up",
			Diagnosis: "Diabetes control check", Notes: "HbA1c 7.3%, discussed medication compliance"},
		{ID: "v5", PatientID: "p1", Date: day("2023-01-10"), Type: "routine",
			Diagnosis: "Annual physical examination", Notes: "Routine labs ordered, all within normal limits"},
		{ID: "v6", PatientID: "p2", Date: day("2024-01-10"), Type: "follow-up",
			Diagnosis: "Stable angina, medication adjustment"},
		{ID: "v7", PatientID: "p2", Date: day("2023-12-28"), Type: "consultation",
			Diagnosis: "Chest pain evaluation", Notes: "EKG performed, no acute changes"},
		{ID: "v8", PatientID: "p2", Date: day("2023-10-15"), Type: "follow-up",
			Diagnosis: "Hypertension management", Notes: "BP controlled on current regimen"},
		{ID: "v9", PatientID: "p3", Date: day("2024-01-18"), Type: "follow-up",
			Diagnosis: "Anxiety disorder - well controlled", Notes: "Patient reports good response to therapy and medication"},
		{ID: "v10", PatientID: "p3", Date: day("2023-12-15"), Type: "consultation",
			Diagnosis: "Anxiety disorder assessment", Notes: "Started on SSRI therapy"},
		{ID: "v11", PatientID: "p4", Date: day("2024-01-12"), Type: "post-op",
			Diagnosis: "COPD exacerbation hospitalization", Notes: "Discharged with oral steroid taper"},
		{ID: "v12", PatientID: "p4", Date: day("2024-01-05"), Type: "follow-up",
			Diagnosis: "Post-hospitalization assessment", Notes: "Recovery progressing well"},
		{ID: "v13", PatientID: "p5", Date: day("2024-01-20"), Type: "consultation",
			Diagnosis: "Chronic migraine inadequately controlled", Notes: "Started preventive therapy"},
		{ID: "v14", PatientID: "p5", Date: day("2024-01-17"), Type: "follow-up",
			Diagnosis: "Preventive migraine therapy assessment", Notes: "Good tolerance, early signs of efficacy"},
		{ID: "v15", PatientID: "p6", Date: day("2024-01-08"), Type: "consultation",
			Diagnosis: "Bilateral knee osteoarthritis", Notes: "Referred to orthopedics for surgical evaluation"},
		{ID: "v16", PatientID: "p6", Date: day("2023-12-20"), Type: "follow-up",
			Diagnosis: "Physical therapy progress assessment", Notes: "Slight improvement in ROM"},
	}
}

// VisitsFor returns the visits of one patient.
func VisitsFor(patientID string) []clinical.Visit {
	return slices.DeleteFunc(Visits(), func(v clinical.Visit) bool {
		return v.PatientID != patientID
	})
}

// Medications returns the medication history of the demo patient (p1).
func Medications() []clinical.Medication {
	return []clinical.Medication{
		{ID: "m1", Name: "Metformin", Dosage: "1000mg", Frequency: "Twice daily", StartDate: day("2020-03-15"), Active: true},
		{ID: "m2", Name: "Lisinopril", Dosage: "10mg", Frequency: "Once daily", StartDate: day("2021-06-20"), Active: true},
		{ID: "m3", Name: "Atorvastatin", Dosage: "20mg", Frequency: "Once daily at bedtime", StartDate: day("2022-01-10"), Active: true},
		{ID: "m4", Name: "Aspirin", Dosage: "81mg", Frequency: "Once daily", StartDate: day("2021-06-20"), Active: true},
		{ID: "m5", Name: "Glipizide", Dosage: "5mg", Frequency: "Once daily", StartDate: day("2019-08-01"),
			EndDate: dayPtr("2020-03-15"), Active: false},
	}
}

// Vitals returns the vital sign history of the demo patient (p1), newest first.
func Vitals() []clinical.VitalSign {
	return []clinical.VitalSign{
		{Date: day("2024-01-15"), BloodPressureSystolic: 128, BloodPressureDiastolic: 82, HeartRate: 72,
			Temperature: 36.8, OxygenSaturation: 98, Weight: 74},
		{Date: day("2023-10-20"), BloodPressureSystolic: 132, BloodPressureDiastolic: 85, HeartRate: 78,
			Temperature: 36.7, OxygenSaturation: 97, Weight: 75},
		{Date: day("2023-07-12"), BloodPressureSystolic: 130, BloodPressureDiastolic: 84, HeartRate: 74,
			Temperature: 36.6, OxygenSaturation: 98, Weight: 76},
		{Date: day("2023-04-05"), BloodPressureSystolic: 135, BloodPressureDiastolic: 88, HeartRate: 80,
			Temperature: 36.8, OxygenSaturation: 97, Weight: 78},
		{Date: day("2023-01-10"), BloodPressureSystolic: 140, BloodPressureDiastolic: 90, HeartRate: 82,
			Temperature: 36.7, OxygenSaturation: 96, Weight: 80},
		{Date: day("2022-10-15"), BloodPressureSystolic: 138, BloodPressureDiastolic: 88, HeartRate: 76,
			Temperature: 36.8, OxygenSaturation: 98, Weight: 79},
	}
}

// Corrections returns the seeded correction dictionary, newest first.
func Corrections() []clinical.CorrectionEntry {
	return []clinical.CorrectionEntry{
		{ID: "c1", Original: "metforman", Corrected: "Metformin", CreatedAt: day("2024-01-10")},
		{ID: "c2", Original: "diabeties", Corrected: "diabetes", CreatedAt: day("2024-01-08")},
		{ID: "c3", Original: "HBA1C", Corrected: "HbA1c", CreatedAt: day("2024-01-05")},
		{ID: "c4", Original: "nuropathy", Corrected: "neuropathy", CreatedAt: day("2024-01-03")},
	}
}
