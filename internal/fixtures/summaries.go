package fixtures

import "github.com/alkime/itranscript/internal/clinical"

// SOAPNote is the note produced when a SOAP summary is generated.
const SOAPNote = `SUBJECTIVE:
Mrs. Sarah Johnson, a 45-year-old female with a history of Type 2 Diabetes Mellitus, presents for follow-up. She reports new-onset tingling sensation in bilateral feet for approximately 2 weeks, described as "pins and needles" primarily affecting the toes with occasional extension to the ankles. Symptoms appear to be worse at night. She also notes intermittent numbness and a subjective cold sensation in the feet. The patient confirms good medication compliance with Metformin 1000mg twice daily with meals.

OBJECTIVE:
(To be completed after examination)
- Vital signs: Pending
- Foot examination: Pending
- Monofilament test: Pending

ASSESSMENT:
1. Type 2 Diabetes Mellitus - on Metformin
2. New-onset bilateral lower extremity paresthesias - findings are consistent with diabetic peripheral neuropathy

Differential Diagnosis:
- Diabetic peripheral neuropathy (most likely given presentation)
- Peripheral vascular disease (consider given cold sensation)
- B12 deficiency secondary to Metformin use (should be excluded)

PLAN:
1. Order HbA1c to assess glycemic control
2. Perform comprehensive foot examination including monofilament testing
3. Order serum B12 level given long-term Metformin use
4. Consider nerve conduction studies if symptoms persist
5. Diabetes foot care education
6. Refer to diabetic foot clinic for preventive care
7. Follow-up in 4 weeks to review results and symptom progression`

// PreviousSummaries returns notes from earlier sessions.
func PreviousSummaries() []clinical.PreviousSummary {
	return []clinical.PreviousSummary{
		{
			ID: "sum1", PatientID: "p1", PatientName: "Sarah Johnson", Type: clinical.SummarySOAP,
			Title: "SOAP Note - Diabetic Follow-up", VisitType: clinical.VisitFollowUp, CreatedAt: day("2024-01-15"),
			Content: `SUBJECTIVE:
Mrs. Sarah Johnson, a 45-year-old female with a history of Type 2 Diabetes Mellitus, presents for follow-up. She reports new-onset tingling sensation in bilateral feet for approximately 2 weeks, especially at night.

OBJECTIVE:
Vital signs: BP 128/82, HR 72, Temp 36.8°C, Weight 74 kg
Foot examination: Decreased sensation to monofilament testing bilaterally in distal feet
Labs: HbA1c 7.2%, glucose 145 mg/dL

ASSESSMENT:
1. Type 2 Diabetes Mellitus - on Metformin, reasonably controlled
2. New-onset diabetic peripheral neuropathy
3. Hypertension - well controlled on Lisinopril
4. Hyperlipidemia - on Atorvastatin

PLAN:
1. Order serum B12 level to rule out B12 deficiency contributing to neuropathy
2. Order nerve conduction studies to confirm neuropathy
3. Start Gabapentin 100mg TID for symptom management
4. Discussed lifestyle modifications including foot care and glucose monitoring
5. Follow-up in 4 weeks to review NCS results and assess symptom response`,
		},
		{
			ID: "sum2", PatientID: "p1", PatientName: "Sarah Johnson", Type: clinical.SummaryProgress,
			Title: "Progress Note - Neuropathy Assessment", VisitType: clinical.VisitFollowUp, CreatedAt: day("2023-10-20"),
			Content: `Patient continues to experience bilateral foot tingling but reports 30% reduction in symptoms since starting Gabapentin. Nerve conduction study shows mild-moderate demyelinating neuropathy consistent with diabetes. HbA1c result: 7.2% - fair control.

Will continue current diabetes regimen and Gabapentin. Referred to endocrinology for optimization of glycemic control. Reassess in 6 weeks.`,
		},
		{
			ID: "sum3", PatientID: "p1", PatientName: "Sarah Johnson", Type: clinical.SummaryProgress,
			Title: "Progress Note - Annual Diabetic Review", CreatedAt: day("2023-07-12"),
			Content: `Annual diabetic comprehensive review completed. Retinal screening: no diabetic retinopathy noted. Microalbumin level normal. Current HbA1c 7.3%.

Continue current regimen. Next annual exam in 12 months.`,
		},
		{
			ID: "sum6", PatientID: "p2", PatientName: "Michael Chen", Type: clinical.SummarySOAP,
			Title: "SOAP Note - Cardiology Follow-up", VisitType: clinical.VisitFollowUp, CreatedAt: day("2024-01-10"),
			Content: `SUBJECTIVE:
Mr. Chen reports stable angina with occasional chest tightness during exertion, relieved by rest and nitroglycerin. Denies rest pain, shortness of breath, or palpitations. Compliance with medications good.

OBJECTIVE:
BP 138/86, HR 68, regular rhythm. Heart sounds normal, no murmurs. Lungs clear bilaterally.

ASSESSMENT:
1. Stable coronary artery disease with well-controlled angina
2. Hypertension - controlled

PLAN:
1. Continue current cardiac medications
2. Stress test in 3 months
3. Follow-up in 4 weeks`,
		},
		{
			ID: "sum7", PatientID: "p2", PatientName: "Michael Chen", Type: clinical.SummaryProgress,
			Title: "Progress Note - Medication Adjustment", CreatedAt: day("2023-12-28"),
			Content: `Patient tolerated medication adjustment well. Beta-blocker dose increased, Amlodipine added for additional blood pressure and cardiac protection. Chest pain episodes reduced by approximately 50% over past 4 weeks.

Follow-up in 4 weeks.`,
		},
		{
			ID: "sum9", PatientID: "p3", PatientName: "Emily Rodriguez", Type: clinical.SummaryProgress,
			Title: "Progress Note - Anxiety Management", VisitType: clinical.VisitMentalHealth, CreatedAt: day("2024-01-18"),
			Content: `Patient reports significantly improved anxiety symptoms with current SSRI regimen (Sertraline 50mg daily). Anxiety self-rated 4/10 compared to baseline 8/10.

Continue Sertraline 50mg daily. Continue weekly therapy sessions. Next follow-up in 8 weeks.`,
		},
	}
}

// VisitTemplates returns the note layout for every visit type.
func VisitTemplates() map[clinical.VisitType]clinical.VisitTemplate {
	return map[clinical.VisitType]clinical.VisitTemplate{
		clinical.VisitNewPatient: {
			Sections: []string{
				"Chief Complaint", "History of Present Illness", "Past Medical History", "Social History",
				"Family History", "Review of Systems", "Physical Examination", "Assessment", "Plan",
			},
			FocusAreas: []string{"Complete history", "Baseline vitals", "Allergies", "Medications"},
		},
		clinical.VisitFollowUp: {
			Sections: []string{
				"Interval History", "Current Medications", "Vital Signs", "Focused Examination", "Assessment", "Plan",
			},
			FocusAreas: []string{"Symptom changes", "Medication adherence", "Lab results"},
		},
		clinical.VisitPostOp: {
			Sections:   []string{"Procedure Review", "Post-operative Course", "Current Status", "Wound Assessment", "Plan"},
			FocusAreas: []string{"Complications", "Pain management", "Recovery progress"},
		},
		clinical.VisitMentalHealth: {
			Sections: []string{
				"Mood Assessment", "Sleep/Appetite", "Medication Review", "Safety Assessment", "Therapeutic Progress", "Plan",
			},
			FocusAreas: []string{"Suicidal ideation", "Medication side effects", "Functional status"},
		},
		clinical.VisitUrgent: {
			Sections: []string{
				"Chief Complaint", "History of Present Illness", "Vital Signs", "Focused Examination",
				"Immediate Assessment", "Urgent Plan",
			},
			FocusAreas: []string{"Red flags", "Immediate interventions", "Disposition"},
		},
		clinical.VisitRoutine: {
			Sections:   []string{"Health Maintenance", "Vital Signs", "Screening Review", "Assessment", "Preventive Care Plan"},
			FocusAreas: []string{"Screenings due", "Immunizations", "Lifestyle counseling"},
		},
		clinical.VisitTelehealth: {
			Sections: []string{
				"Chief Complaint", "Interval History", "Patient-Reported Vitals", "Visual Assessment", "Assessment", "Plan",
			},
			FocusAreas: []string{"Limitations noted", "In-person follow-up needs"},
		},
	}
}

// TrustLanguage returns the conservative phrasing rules for generated notes.
func TrustLanguage() clinical.TrustLanguage {
	return clinical.TrustLanguage{
		AvoidPhrases: []string{"definitely", "certainly", "clearly", "obviously", "must be", "is definitely"},
		PreferredPhrases: []string{
			"may suggest", "is consistent with", "could indicate", "appears to be", "likely represents", "consider",
		},
		Probabilistic: map[clinical.Confidence]string{
			clinical.ConfidenceHigh:   "findings strongly suggest",
			clinical.ConfidenceMedium: "findings are consistent with",
			clinical.ConfidenceLow:    "consider the possibility of",
		},
	}
}
