package workflow

import "github.com/alkime/itranscript/internal/clinical"

// AdvanceDocumentStatus moves the document status forward and reports
// whether it changed. Backward or repeated moves are ignored.
func AdvanceDocumentStatus(s *Store, status DocumentStatus) bool {
	if !status.Valid() {
		return false
	}

	return s.advanceStatus(status)
}

// CompleteReview marks the transcript reviewed and moves on to summarize.
func CompleteReview(s *Store) {
	AdvanceDocumentStatus(s, StatusReviewed)
	s.MarkStepComplete(StepReview)
	s.SetCurrentStep(StepSummarize)
}

// FinalizeSummary finalises the note and returns to the patient hub.
func FinalizeSummary(s *Store) {
	AdvanceDocumentStatus(s, StatusFinal)
	s.MarkStepComplete(StepSummarize)
	s.SetCurrentStep(StepPatientHub)
}

// OpenPatient selects p and shows its demographics.
func OpenPatient(s *Store, p clinical.Patient) {
	s.SetSelectedPatient(&p)
	s.MarkStepComplete(StepPatientHub)
	s.SetCurrentStep(StepDemographics)
}

// OpenTranscription loads t for review.
func OpenTranscription(s *Store, t clinical.Transcript) {
	s.SetCurrentTranscript(&t)
	s.SetCurrentStep(StepReview)
}
