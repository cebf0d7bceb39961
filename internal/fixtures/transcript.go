package fixtures

import "github.com/alkime/itranscript/internal/clinical"

const rawTranscript = `Doctor: Good morning Mrs Johnson. How are you feeling today?

Patient: Morning doctor. I've been doing okay mostly, but I've noticed some tingling in my feet lately, especially at night.

Doctor: I see. Tell me more about this tingling sensation. When did it start?

Patient: Maybe about two weeks ago. It's like pins and needles, mostly in my toes but sometimes up to my ankles.

Doctor: That's helpful to know. Are you experiencing any numbness along with the tingling?

Patient: Yes, sometimes. And my feet feel cold even when they're not.

Doctor: Let's check your latest blood sugar readings and examine your feet. Have you been taking your Metformin regularly?

Patient: Yes, twice a day with meals, just like you prescribed.`

const improvedTranscript = `Doctor: Good morning, Mrs. Johnson. How are you feeling today?

Patient: Good morning, Doctor. I've been doing okay mostly, but I've noticed some tingling in my feet lately, especially at night.

Doctor: I see. Tell me more about this tingling sensation. When did it start?

Patient: Approximately two weeks ago. It feels like pins and needles, primarily in my toes but sometimes extending up to my ankles.

Doctor: That's helpful information. Are you experiencing any numbness along with the tingling?

Patient: Yes, sometimes. And my feet feel cold even when they're objectively warm.

Doctor: Let's review your latest blood glucose readings and examine your feet. Have you been taking your Metformin regularly?

Patient: Yes, twice daily with meals, exactly as prescribed.`

// Transcript returns the transcript produced by every capture.
func Transcript() clinical.Transcript {
	return clinical.Transcript{
		ID:           "t1",
		VisitID:      "v1",
		PatientID:    "p1",
		PatientName:  "Sarah Johnson",
		VisitType:    clinical.VisitFollowUp,
		Title:        "Diabetic Follow-up - Neuropathy Symptoms",
		AudioQuality: clinical.AudioGood,
		RawText:      rawTranscript,
		ImprovedText: improvedTranscript,
		Segments:     transcriptSegments(),
		Duration:     70,
		CreatedAt:    day("2024-01-15"),
	}
}

func transcriptSegments() []clinical.TranscriptSegment {
	doctor := func(id string, start, end float64, text string, conf float64) clinical.TranscriptSegment {
		return clinical.TranscriptSegment{
			ID: id, StartTime: start, EndTime: end, Text: text,
			Speaker: "Doctor", SpeakerRole: clinical.SpeakerClinician,
			IsClinical: true, ConfidenceScore: conf,
		}
	}
	patient := func(id string, start, end float64, text string, conf float64) clinical.TranscriptSegment {
		return clinical.TranscriptSegment{
			ID: id, StartTime: start, EndTime: end, Text: text,
			Speaker: "Patient", SpeakerRole: clinical.SpeakerPatient,
			IsClinical: true, ConfidenceScore: conf,
		}
	}
	improved := func(seg clinical.TranscriptSegment) clinical.TranscriptSegment {
		seg.IsAIImproved = true
		seg.OriginalText = seg.Text

		return seg
	}

	return []clinical.TranscriptSegment{
		doctor("s1", 0, 5, "Good morning Mrs Johnson. How are you feeling today?", 0.95),
		patient("s2", 5, 15, "Morning doctor. I've been doing okay mostly, but I've noticed some tingling "+
			"in my feet lately, especially at night.", 0.92),
		doctor("s3", 15, 22, "I see. Tell me more about this tingling sensation. When did it start?", 0.97),
		improved(patient("s4", 22, 35, "Maybe about two weeks ago. It's like pins and needles, mostly in my toes "+
			"but sometimes up to my ankles.", 0.89)),
		doctor("s5", 35, 42, "That's helpful to know. Are you experiencing any numbness along with the tingling?", 0.96),
		improved(patient("s6", 42, 50, "Yes, sometimes. And my feet feel cold even when they're not.", 0.88)),
		doctor("s7", 50, 62, "Let's check your latest blood sugar readings and examine your feet. "+
			"Have you been taking your Metformin regularly?", 0.94),
		patient("s8", 62, 70, "Yes, twice a day with meals, just like you prescribed.", 0.91),
	}
}

func ts(v float64) *float64 { return &v }

// QualityWarnings returns the warnings for the standard capture.
func QualityWarnings() []clinical.QualityWarning {
	return []clinical.QualityWarning{
		{ID: "qw1", Type: clinical.QualityOverlappingSpeech,
			Message:  "Overlapping speech detected - transcript may be incomplete",
			Severity: clinical.SeverityMedium, AffectedSegmentIDs: []string{"s4"}, Timestamp: ts(25)},
		{ID: "qw2", Type: clinical.QualityBackgroundNoise,
			Message:  "Background noise affected transcription quality",
			Severity: clinical.SeverityLow, AffectedSegmentIDs: []string{"s6"}, Timestamp: ts(45)},
	}
}

// AmbientSegments returns the conversation streamed during ambient capture,
// including the small talk that ambient mode suppresses.
func AmbientSegments() []clinical.TranscriptSegment {
	return []clinical.TranscriptSegment{
		{ID: "as1", StartTime: 0, EndTime: 5, Text: "Good morning Mrs Johnson. How are you feeling today?",
			Speaker: "Doctor", SpeakerRole: clinical.SpeakerClinician, IsClinical: true, ConfidenceScore: 0.95},
		{ID: "as2", StartTime: 5, EndTime: 10, Text: "Oh the weather is lovely today isn't it?",
			Speaker: "Patient", SpeakerRole: clinical.SpeakerPatient, ConfidenceScore: 0.88,
			IsRedacted: true, RedactedReason: "Small talk detected"},
		{ID: "as3", StartTime: 10, EndTime: 18, Text: "I've been having this tingling in my feet for about two weeks now.",
			Speaker: "Patient", SpeakerRole: clinical.SpeakerPatient, IsClinical: true, ConfidenceScore: 0.94},
		{ID: "as4", StartTime: 18, EndTime: 25, Text: "Tell me more about that. Is it constant or does it come and go?",
			Speaker: "Doctor", SpeakerRole: clinical.SpeakerClinician, IsClinical: true, ConfidenceScore: 0.97},
		{ID: "as5", StartTime: 25, EndTime: 33, Text: "It's worse at night, especially when I'm trying to sleep.",
			Speaker: "Patient", SpeakerRole: clinical.SpeakerPatient, IsClinical: true, ConfidenceScore: 0.91},
		{ID: "as6", StartTime: 33, EndTime: 38, Text: "My daughter says I should try those special socks she saw online.",
			Speaker: "Patient", SpeakerRole: clinical.SpeakerPatient, ConfidenceScore: 0.72,
			IsRedacted: true, RedactedReason: "Non-clinical reference"},
	}
}

// ClinicalMoments returns the moments detected in the ambient segments.
func ClinicalMoments() []clinical.ClinicalMoment {
	return []clinical.ClinicalMoment{
		{ID: "cm1", Timestamp: 10, Type: clinical.MomentSymptom, Content: "Tingling in feet - 2 weeks duration",
			Confidence: 0.94, SegmentID: "as3"},
		{ID: "cm2", Timestamp: 25, Type: clinical.MomentSymptom, Content: "Symptoms worse at night",
			Confidence: 0.91, SegmentID: "as5"},
		{ID: "cm3", Timestamp: 18, Type: clinical.MomentQuestion, Content: "Clinician inquired about symptom pattern",
			Confidence: 0.97, SegmentID: "as4"},
	}
}

// RecentTranscriptions returns the transcription history.
func RecentTranscriptions() []clinical.RecentTranscription {
	return []clinical.RecentTranscription{
		{ID: "rt1", Title: "Sarah Johnson - Diabetic Follow-up - Neuropathy Symptoms", PatientID: "p1",
			PatientName: "Sarah Johnson", VisitType: clinical.VisitFollowUp, Timestamp: at("2024-01-15T09:30"),
			Duration: 420, Status: clinical.TranscriptionCompleted},
		{ID: "rt2", Title: "Michael Chen - Cardiology Check - Stable Angina Review", PatientID: "p2",
			PatientName: "Michael Chen", VisitType: clinical.VisitFollowUp, Timestamp: at("2024-01-14T14:15"),
			Duration: 540, Status: clinical.TranscriptionCompleted},
		{ID: "rt3", Title: "Emily Rodriguez - Mental Health Session - Anxiety Follow-up", PatientID: "p3",
			PatientName: "Emily Rodriguez", VisitType: clinical.VisitMentalHealth, Timestamp: at("2024-01-13T11:00"),
			Duration: 1800, Status: clinical.TranscriptionCompleted},
		{ID: "rt4", Title: "James Thompson - Post-Discharge - COPD Review", PatientID: "p4",
			PatientName: "James Thompson", VisitType: clinical.VisitPostOp, Timestamp: at("2024-01-12T16:45"),
			Duration: 360, Status: clinical.TranscriptionCompleted, HasQualityIssues: true},
		{ID: "rt5", Title: "Unlinked Session - Initial Consultation", VisitType: clinical.VisitNewPatient,
			Timestamp: at("2024-01-11T10:00"), Duration: 900, Status: clinical.TranscriptionCompleted},
	}
}
