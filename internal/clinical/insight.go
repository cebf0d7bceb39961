package clinical

import "time"

// ClinicalInsight is a fixed AI insight. LinkedSegmentIDs are non-owning
// references into the transcript used only for traceability.
type ClinicalInsight struct {
	ID                string      `json:"id"`
	Type              InsightType `json:"type"`
	Title             string      `json:"title"`
	Content           []string    `json:"content"`
	Confidence        Confidence  `json:"confidence"`
	Severity          Severity    `json:"severity,omitempty"`
	Reasoning         string      `json:"reasoning,omitempty"`
	LinkedSegmentIDs  []string    `json:"linkedSegmentIds,omitempty"`
	LinkedTimestamps  []float64   `json:"linkedTimestamps,omitempty"`
	Explanation       string      `json:"explanation,omitempty"`
	IsSuppressed      bool        `json:"isSuppressed,omitempty"`
	SuppressionReason string      `json:"suppressionReason,omitempty"`
}

type DifferentialDiagnosis struct {
	ID               string     `json:"id"`
	Condition        string     `json:"condition"`
	Likelihood       Likelihood `json:"likelihood"`
	Reasoning        string     `json:"reasoning,omitempty"`
	LinkedSegmentIDs []string   `json:"linkedSegmentIds,omitempty"`
	Explanation      string     `json:"explanation,omitempty"`
}

type SafetyAlert struct {
	ID               string          `json:"id"`
	Type             SafetyAlertType `json:"type"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Severity         Severity        `json:"severity"`
	LinkedSegmentIDs []string        `json:"linkedSegmentIds,omitempty"`
}

type ClinicalTask struct {
	ID              string       `json:"id"`
	Task            string       `json:"task"`
	Priority        TaskPriority `json:"priority"`
	Completed       bool         `json:"completed"`
	IsImplicit      bool         `json:"isImplicit,omitempty"`
	Source          TaskSource   `json:"source,omitempty"`
	LinkedSegmentID string       `json:"linkedSegmentId,omitempty"`
}

// VisibleInsights drops suppressed insights unless showSuppressed is set.
func VisibleInsights(insights []ClinicalInsight, showSuppressed bool) []ClinicalInsight {
	out := make([]ClinicalInsight, 0, len(insights))
	for _, in := range insights {
		if in.IsSuppressed && !showSuppressed {
			continue
		}
		out = append(out, in)
	}

	return out
}

// CorrectionEntry maps a commonly mis-transcribed term to its correction.
type CorrectionEntry struct {
	ID        string    `json:"id"`
	Original  string    `json:"original"`
	Corrected string    `json:"corrected"`
	CreatedAt time.Time `json:"createdAt"`
}

// PreviousSummary is a note generated in an earlier session.
type PreviousSummary struct {
	ID          string      `json:"id"`
	PatientID   string      `json:"patientId"`
	PatientName string      `json:"patientName"`
	Type        SummaryType `json:"type"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	CreatedAt   time.Time   `json:"createdAt"`
	VisitType   VisitType   `json:"visitType,omitempty"`
}

// VisitTemplate lists the note sections and focus areas for a visit type.
type VisitTemplate struct {
	Sections   []string `json:"sections"`
	FocusAreas []string `json:"focusAreas"`
}

// TrustLanguage holds the phrasing rules for conservative clinical notes.
type TrustLanguage struct {
	AvoidPhrases     []string              `json:"avoidPhrases"`
	PreferredPhrases []string              `json:"preferredPhrases"`
	Probabilistic    map[Confidence]string `json:"probabilisticPhrasing"`
}
