package clinical

// Severity grades alerts and warnings.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}

	return false
}

// Rank orders severities; unknown values rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	}

	return 0
}

// Confidence is the coarse certainty attached to an insight.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return true
	}

	return false
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}

	return false
}

type AlertType string

const (
	AlertAllergy    AlertType = "allergy"
	AlertMedication AlertType = "medication"
	AlertCondition  AlertType = "condition"
	AlertRisk       AlertType = "risk"
)

func (a AlertType) Valid() bool {
	switch a {
	case AlertAllergy, AlertMedication, AlertCondition, AlertRisk:
		return true
	}

	return false
}

type SpeakerRole string

const (
	SpeakerClinician SpeakerRole = "clinician"
	SpeakerPatient   SpeakerRole = "patient"
	SpeakerCaregiver SpeakerRole = "caregiver"
	SpeakerUnknown   SpeakerRole = "unknown"
)

func (r SpeakerRole) Valid() bool {
	switch r {
	case SpeakerClinician, SpeakerPatient, SpeakerCaregiver, SpeakerUnknown:
		return true
	}

	return false
}

// VisitType drives which note template is used.
type VisitType string

const (
	VisitNewPatient   VisitType = "new-patient"
	VisitFollowUp     VisitType = "follow-up"
	VisitPostOp       VisitType = "post-op"
	VisitMentalHealth VisitType = "mental-health"
	VisitUrgent       VisitType = "urgent"
	VisitRoutine      VisitType = "routine"
	VisitTelehealth   VisitType = "telehealth"
)

// VisitTypes lists every visit type in display order.
func VisitTypes() []VisitType {
	return []VisitType{
		VisitNewPatient, VisitFollowUp, VisitPostOp, VisitMentalHealth,
		VisitUrgent, VisitRoutine, VisitTelehealth,
	}
}

func (v VisitType) Valid() bool {
	switch v {
	case VisitNewPatient, VisitFollowUp, VisitPostOp, VisitMentalHealth,
		VisitUrgent, VisitRoutine, VisitTelehealth:
		return true
	}

	return false
}

type AudioQuality string

const (
	AudioExcellent AudioQuality = "excellent"
	AudioGood      AudioQuality = "good"
	AudioFair      AudioQuality = "fair"
	AudioPoor      AudioQuality = "poor"
)

func (q AudioQuality) Valid() bool {
	switch q {
	case AudioExcellent, AudioGood, AudioFair, AudioPoor:
		return true
	}

	return false
}

type InsightType string

const (
	InsightFinding   InsightType = "finding"
	InsightDiagnosis InsightType = "diagnosis"
	InsightAlert     InsightType = "alert"
	InsightTask      InsightType = "task"
)

func (i InsightType) Valid() bool {
	switch i {
	case InsightFinding, InsightDiagnosis, InsightAlert, InsightTask:
		return true
	}

	return false
}

type Likelihood string

const (
	LikelihoodPossible Likelihood = "possible"
	LikelihoodProbable Likelihood = "probable"
	LikelihoodLikely   Likelihood = "likely"
)

func (l Likelihood) Valid() bool {
	switch l {
	case LikelihoodPossible, LikelihoodProbable, LikelihoodLikely:
		return true
	}

	return false
}

type SafetyAlertType string

const (
	SafetyDrugInteraction  SafetyAlertType = "drug-interaction"
	SafetyAllergy          SafetyAlertType = "allergy"
	SafetyRisk             SafetyAlertType = "risk"
	SafetyContraindication SafetyAlertType = "contraindication"
)

func (s SafetyAlertType) Valid() bool {
	switch s {
	case SafetyDrugInteraction, SafetyAllergy, SafetyRisk, SafetyContraindication:
		return true
	}

	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}

	return false
}

type TaskSource string

const (
	TaskExplicit TaskSource = "explicit"
	TaskInferred TaskSource = "inferred"
)

func (s TaskSource) Valid() bool {
	switch s {
	case TaskExplicit, TaskInferred:
		return true
	}

	return false
}

// MomentType classifies a clinical moment surfaced in ambient mode.
type MomentType string

const (
	MomentSymptom     MomentType = "symptom"
	MomentDiagnosis   MomentType = "diagnosis"
	MomentMedication  MomentType = "medication"
	MomentInstruction MomentType = "instruction"
	MomentQuestion    MomentType = "question"
	MomentHistory     MomentType = "history"
)

func (m MomentType) Valid() bool {
	switch m {
	case MomentSymptom, MomentDiagnosis, MomentMedication, MomentInstruction,
		MomentQuestion, MomentHistory:
		return true
	}

	return false
}

// Label is the display name of the moment type.
func (m MomentType) Label() string {
	switch m {
	case MomentSymptom:
		return "Symptom"
	case MomentDiagnosis:
		return "Diagnosis"
	case MomentMedication:
		return "Medication"
	case MomentInstruction:
		return "Instruction"
	case MomentQuestion:
		return "Question"
	case MomentHistory:
		return "History"
	}

	return string(m)
}

type SummaryType string

const (
	SummarySOAP      SummaryType = "soap"
	SummaryDischarge SummaryType = "discharge"
	SummaryReferral  SummaryType = "referral"
	SummaryProgress  SummaryType = "progress"
	SummaryCustom    SummaryType = "custom"
)

func (s SummaryType) Valid() bool {
	switch s {
	case SummarySOAP, SummaryDischarge, SummaryReferral, SummaryProgress, SummaryCustom:
		return true
	}

	return false
}

// Label is the display title prefix for a summary type.
func (s SummaryType) Label() string {
	switch s {
	case SummarySOAP:
		return "SOAP Note"
	case SummaryDischarge:
		return "Discharge Summary"
	case SummaryReferral:
		return "Referral Letter"
	case SummaryProgress:
		return "Progress Note"
	case SummaryCustom:
		return "Custom Note"
	}

	return string(s)
}

type TranscriptionStatus string

const (
	TranscriptionCompleted  TranscriptionStatus = "completed"
	TranscriptionProcessing TranscriptionStatus = "processing"
	TranscriptionError      TranscriptionStatus = "error"
)

func (s TranscriptionStatus) Valid() bool {
	switch s {
	case TranscriptionCompleted, TranscriptionProcessing, TranscriptionError:
		return true
	}

	return false
}

type QualityWarningType string

const (
	QualityPoorAudio         QualityWarningType = "poor-audio"
	QualityOverlappingSpeech QualityWarningType = "overlapping-speech"
	QualityBackgroundNoise   QualityWarningType = "background-noise"
	QualityUnclearSegment    QualityWarningType = "unclear-segment"
)

func (q QualityWarningType) Valid() bool {
	switch q {
	case QualityPoorAudio, QualityOverlappingSpeech, QualityBackgroundNoise, QualityUnclearSegment:
		return true
	}

	return false
}
