package clinical

import (
	"slices"
	"strings"
	"time"
)

// Transcript is the output of a capture. It belongs to at most one patient.
type Transcript struct {
	ID              string              `json:"id"`
	VisitID         string              `json:"visitId,omitempty"`
	PatientID       string              `json:"patientId,omitempty"`
	PatientName     string              `json:"patientName,omitempty"`
	Title           string              `json:"title,omitempty"`
	VisitType       VisitType           `json:"visitType,omitempty"`
	AudioQuality    AudioQuality        `json:"audioQuality,omitempty"`
	RawText         string              `json:"rawText"`
	ImprovedText    string              `json:"improvedText"`
	Segments        []TranscriptSegment `json:"segments"`
	Duration        int                 `json:"duration,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	QualityWarnings []QualityWarning    `json:"qualityWarnings,omitempty"`
}

// Clone returns a deep copy of t.
func (t Transcript) Clone() Transcript {
	t.Segments = slices.Clone(t.Segments)
	t.QualityWarnings = slices.Clone(t.QualityWarnings)
	for i, w := range t.QualityWarnings {
		w.AffectedSegmentIDs = slices.Clone(w.AffectedSegmentIDs)
		if w.Timestamp != nil {
			ts := *w.Timestamp
			w.Timestamp = &ts
		}
		t.QualityWarnings[i] = w
	}

	return t
}

// TranscriptSegment is one utterance. Segments are immutable once created.
type TranscriptSegment struct {
	ID              string      `json:"id"`
	StartTime       float64     `json:"startTime"`
	EndTime         float64     `json:"endTime"`
	Text            string      `json:"text"`
	Speaker         string      `json:"speaker,omitempty"`
	SpeakerRole     SpeakerRole `json:"speakerRole,omitempty"`
	IsAIImproved    bool        `json:"isAiImproved,omitempty"`
	OriginalText    string      `json:"originalText,omitempty"`
	IsClinical      bool        `json:"isClinical"`
	ConfidenceScore float64     `json:"confidenceScore,omitempty"`
	IsRedacted      bool        `json:"isRedacted,omitempty"`
	RedactedReason  string      `json:"redactedReason,omitempty"`
}

// QualityWarning flags segments whose transcription may be unreliable.
type QualityWarning struct {
	ID                 string             `json:"id"`
	Type               QualityWarningType `json:"type"`
	Message            string             `json:"message"`
	Severity           Severity           `json:"severity"`
	AffectedSegmentIDs []string           `json:"affectedSegmentIds"`
	Timestamp          *float64           `json:"timestamp,omitempty"`
}

// Lines returns the non-empty lines of the raw text in order.
func (t Transcript) Lines() []string {
	var lines []string
	for line := range strings.SplitSeq(t.RawText, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// SegmentsByID resolves a set of back-references. Unknown ids are skipped and
// the result follows transcript order.
func (t Transcript) SegmentsByID(ids []string) []TranscriptSegment {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var out []TranscriptSegment
	for _, seg := range t.Segments {
		if want[seg.ID] {
			out = append(out, seg)
		}
	}

	return out
}

// ClinicalSegments returns the segments flagged as clinically relevant.
func (t Transcript) ClinicalSegments() []TranscriptSegment {
	var out []TranscriptSegment
	for _, seg := range t.Segments {
		if seg.IsClinical {
			out = append(out, seg)
		}
	}

	return out
}

// AudioFile describes a selected or uploaded audio file.
type AudioFile struct {
	Name     string `json:"name"`
	MIMEType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

func (f AudioFile) Clone() AudioFile { return f }

// ClinicalMoment is a short clinically relevant snippet surfaced during
// ambient capture.
type ClinicalMoment struct {
	ID         string     `json:"id"`
	Timestamp  float64    `json:"timestamp"`
	Type       MomentType `json:"type"`
	Content    string     `json:"content"`
	Confidence float64    `json:"confidence"`
	SegmentID  string     `json:"segmentId"`
}

// IsHighConfidence matches the ">= 0.9" badge threshold.
func (m ClinicalMoment) IsHighConfidence() bool {
	return m.Confidence >= 0.9
}

// RecentTranscription is a row in the transcription history.
type RecentTranscription struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	PatientID        string              `json:"patientId,omitempty"`
	PatientName      string              `json:"patientName,omitempty"`
	VisitType        VisitType           `json:"visitType,omitempty"`
	Timestamp        time.Time           `json:"timestamp"`
	Duration         int                 `json:"duration"`
	Status           TranscriptionStatus `json:"status"`
	HasQualityIssues bool                `json:"hasQualityIssues"`
}
