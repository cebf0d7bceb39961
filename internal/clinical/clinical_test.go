package clinical_test

import (
	"testing"

	"github.com/alkime/itranscript/internal/clinical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptLines(t *testing.T) {
	tr := clinical.Transcript{RawText: "Doctor: Hello.\n\n  \nPatient: Hi.\n"}
	assert.Equal(t, []string{"Doctor: Hello.", "Patient: Hi."}, tr.Lines())

	assert.Empty(t, clinical.Transcript{}.Lines())
}

func TestTranscriptSegmentsByID(t *testing.T) {
	tr := clinical.Transcript{Segments: []clinical.TranscriptSegment{
		{ID: "s1", IsClinical: true},
		{ID: "s2"},
		{ID: "s3", IsClinical: true},
	}}

	got := tr.SegmentsByID([]string{"s3", "missing", "s1"})
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].ID, "transcript order is preserved")
	assert.Equal(t, "s3", got[1].ID)

	assert.Len(t, tr.ClinicalSegments(), 2)
}

func TestHighestAlertSeverity(t *testing.T) {
	p := clinical.Patient{Alerts: []clinical.PatientAlert{
		{Severity: clinical.SeverityLow},
		{Severity: clinical.SeverityHigh},
		{Severity: clinical.SeverityMedium},
	}}
	assert.Equal(t, clinical.SeverityHigh, p.HighestAlertSeverity())
	assert.Equal(t, clinical.Severity(""), clinical.Patient{}.HighestAlertSeverity())
}

func TestClone(t *testing.T) {
	ts := 4.5
	tr := clinical.Transcript{
		Segments:        []clinical.TranscriptSegment{{ID: "s1", Text: "before"}},
		QualityWarnings: []clinical.QualityWarning{{ID: "q1", AffectedSegmentIDs: []string{"s1"}, Timestamp: &ts}},
	}
	trCopy := tr.Clone()
	tr.Segments[0].Text = "after"
	tr.QualityWarnings[0].AffectedSegmentIDs[0] = "s9"
	*tr.QualityWarnings[0].Timestamp = 9

	assert.Equal(t, "before", trCopy.Segments[0].Text)
	assert.Equal(t, []string{"s1"}, trCopy.QualityWarnings[0].AffectedSegmentIDs)
	assert.InDelta(t, 4.5, *trCopy.QualityWarnings[0].Timestamp, 0)

	p := clinical.Patient{
		Alerts: []clinical.PatientAlert{{Message: "before"}},
		Vitals: &clinical.Vitals{HeartRate: 70},
	}
	pCopy := p.Clone()
	p.Alerts[0].Message = "after"
	p.Vitals.HeartRate = 120

	assert.Equal(t, "before", pCopy.Alerts[0].Message)
	assert.Equal(t, 70, pCopy.Vitals.HeartRate)
	assert.Nil(t, clinical.Patient{}.Clone().Alerts)
}

func TestVisibleInsights(t *testing.T) {
	insights := []clinical.ClinicalInsight{
		{ID: "i1"},
		{ID: "si1", IsSuppressed: true},
	}

	assert.Len(t, clinical.VisibleInsights(insights, false), 1)
	assert.Len(t, clinical.VisibleInsights(insights, true), 2)
}

func TestEnumsValid(t *testing.T) {
	for _, v := range clinical.VisitTypes() {
		assert.True(t, v.Valid(), v)
	}

	assert.False(t, clinical.VisitType("house-call").Valid())
	assert.False(t, clinical.Severity("critical").Valid())
	assert.True(t, clinical.SummarySOAP.Valid())
	assert.Equal(t, "SOAP Note", clinical.SummarySOAP.Label())
	assert.Equal(t, "Symptom", clinical.MomentSymptom.Label())
	assert.True(t, clinical.ClinicalMoment{Confidence: 0.9}.IsHighConfidence())
	assert.False(t, clinical.ClinicalMoment{Confidence: 0.89}.IsHighConfidence())
}
