// Package workflow holds the session state shared by every view and the
// rules deciding which workflow steps are reachable.
package workflow

import (
	"errors"
	"fmt"
)

// ErrUnknownStep is returned when parsing an unrecognised step name.
var ErrUnknownStep = errors.New("unknown workflow step")

// Step is one screen of the workflow.
type Step string

const (
	StepCapture        Step = "capture"
	StepReview         Step = "review"
	StepSummarize      Step = "summarize"
	StepPatientHub     Step = "patient-hub"
	StepDemographics   Step = "demographics"
	StepCorrections    Step = "corrections"
	StepTranscriptions Step = "transcriptions"
)

// Steps returns every step in canonical order.
func Steps() []Step {
	return []Step{
		StepCapture, StepReview, StepSummarize, StepPatientHub,
		StepDemographics, StepCorrections, StepTranscriptions,
	}
}

// StepperSteps returns the steps shown in the stepper header.
func StepperSteps() []Step {
	return []Step{StepCapture, StepReview, StepSummarize, StepPatientHub, StepCorrections}
}

// ParseStep converts a step name into a Step.
func ParseStep(s string) (Step, error) {
	step := Step(s)
	if !step.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStep, s)
	}

	return step, nil
}

// Valid reports whether s is a member of the fixed step set.
func (s Step) Valid() bool {
	return s.index() >= 0
}

func (s Step) index() int {
	switch s {
	case StepCapture:
		return 0
	case StepReview:
		return 1
	case StepSummarize:
		return 2
	case StepPatientHub:
		return 3
	case StepDemographics:
		return 4
	case StepCorrections:
		return 5
	case StepTranscriptions:
		return 6
	}

	return -1
}

func (s Step) String() string {
	return string(s)
}

// Label is the short display name.
func (s Step) Label() string {
	switch s {
	case StepCapture:
		return "Capture"
	case StepReview:
		return "Review"
	case StepSummarize:
		return "Summarize"
	case StepPatientHub:
		return "Patient Hub"
	case StepDemographics:
		return "Demographics"
	case StepCorrections:
		return "Corrections"
	case StepTranscriptions:
		return "Transcriptions"
	}

	return string(s)
}

// Description is the one-line tooltip text.
func (s Step) Description() string {
	switch s {
	case StepCapture:
		return "Record or upload audio"
	case StepReview:
		return "Review transcript & insights"
	case StepSummarize:
		return "Generate clinical notes"
	case StepPatientHub:
		return "Manage patient records"
	case StepDemographics:
		return "Patient details and history"
	case StepCorrections:
		return "Edit terminology dictionary"
	case StepTranscriptions:
		return "Browse past transcriptions"
	}

	return ""
}

// needsCapture reports whether entering s requires captured material.
func (s Step) needsCapture() bool {
	return s == StepReview || s == StepSummarize
}
