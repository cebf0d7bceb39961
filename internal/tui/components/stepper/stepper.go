// Package stepper renders the workflow progress header.
package stepper

import (
	"fmt"
	"strings"

	"github.com/alkime/itranscript/internal/tui/style"
	"github.com/alkime/itranscript/internal/workflow"
)

const (
	markActive   = "●"
	markComplete = "✓"
	markPending  = "○"
)

// Segment is one rendered stepper entry.
type Segment struct {
	Key       int
	Step      workflow.Step
	Status    workflow.StepStatus
	Clickable bool
}

// Segments computes the stepper entries for st under p. Keys start at 1
// and follow workflow.StepperSteps.
func Segments(st workflow.State, p workflow.Policy) []Segment {
	steps := workflow.StepperSteps()
	out := make([]Segment, 0, len(steps))
	for i, step := range steps {
		out = append(out, Segment{
			Key:       i + 1,
			Step:      step,
			Status:    p.StepStatus(st, step),
			Clickable: p.IsStepClickable(st, step),
		})
	}

	return out
}

// StepForKey maps a number key to its stepper step.
func StepForKey(n int) (workflow.Step, bool) {
	steps := workflow.StepperSteps()
	if n < 1 || n > len(steps) {
		return "", false
	}

	return steps[n-1], true
}

// Neighbour returns the next clickable stepper step after from, moving
// forward or back and wrapping. Detail steps outside the stepper start from
// the patient hub.
func Neighbour(st workflow.State, p workflow.Policy, from workflow.Step, forward bool) (workflow.Step, bool) {
	steps := workflow.StepperSteps()
	pos := -1
	for i, s := range steps {
		if s == from {
			pos = i
		}
	}
	if pos < 0 {
		for i, s := range steps {
			if s == workflow.StepPatientHub {
				pos = i
			}
		}
	}

	delta := 1
	if !forward {
		delta = -1
	}
	for n := 1; n < len(steps); n++ {
		cand := steps[((pos+delta*n)%len(steps)+len(steps))%len(steps)]
		if p.CanEnter(st, cand) {
			return cand, true
		}
	}

	return "", false
}

// View renders the header line: numbered steps and the document status
// badge. Steps the policy would refuse are struck through.
func View(st workflow.State, p workflow.Policy) string {
	parts := make([]string, 0, len(workflow.StepperSteps()))
	for _, seg := range Segments(st, p) {
		parts = append(parts, render(seg))
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(parts, style.Muted.Render(" › ")))
	sb.WriteString("  ")
	sb.WriteString(style.StatusBadge(st.DocumentStatus))
	if st.CurrentStep == workflow.StepDemographics || st.CurrentStep == workflow.StepTranscriptions {
		sb.WriteString("\n")
		sb.WriteString(style.Subtitle.Render(st.CurrentStep.Label() + ": " + st.CurrentStep.Description()))
	}

	return sb.String()
}

func render(seg Segment) string {
	text := fmt.Sprintf("%d %s", seg.Key, seg.Step.Label())

	switch {
	case seg.Status == workflow.StatusActive:
		return style.StepActive.Render(markActive + " " + text)
	case seg.Status == workflow.StatusComplete:
		return style.StepComplete.Render(markComplete + " " + text)
	case !seg.Clickable:
		return style.StepLocked.Render(markPending + " " + text)
	default:
		return style.StepPending.Render(markPending + " " + text)
	}
}
