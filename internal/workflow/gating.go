package workflow

import "fmt"

// StepStatus is how a step renders in the stepper.
type StepStatus string

const (
	StatusActive   StepStatus = "active"
	StatusComplete StepStatus = "complete"
	StatusPending  StepStatus = "pending"
)

const (
	PolicyStrict  = "strict"
	PolicyLenient = "lenient"
)

// Policy decides which steps are reachable. A step is reachable when it is
// always accessible, current, or completed. Steps that display captured
// material (review, summarize) additionally need a transcript or audio file
// unless they are already current.
type Policy struct {
	name   string
	always map[Step]bool
}

// StrictPolicy leaves only the patient hub and corrections always accessible.
func StrictPolicy() Policy {
	return Policy{
		name:   PolicyStrict,
		always: map[Step]bool{StepPatientHub: true, StepCorrections: true},
	}
}

// LenientPolicy additionally opens capture, review and summarize.
func LenientPolicy() Policy {
	return Policy{
		name: PolicyLenient,
		always: map[Step]bool{
			StepCapture: true, StepReview: true, StepSummarize: true,
			StepPatientHub: true, StepCorrections: true,
		},
	}
}

// ParsePolicy resolves a policy by name.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case PolicyStrict, "":
		return StrictPolicy(), nil
	case PolicyLenient:
		return LenientPolicy(), nil
	}

	return Policy{}, fmt.Errorf("unknown gating policy %q", name)
}

func (p Policy) Name() string {
	return p.name
}

func (p Policy) AlwaysAccessible(step Step) bool {
	return p.always[step]
}

// IsStepClickable reports whether step may be selected in the stepper.
func (p Policy) IsStepClickable(st State, step Step) bool {
	if !step.Valid() {
		return false
	}

	return p.always[step] || step == st.CurrentStep || st.IsComplete(step)
}

// CanEnter is IsStepClickable plus the captured-material guard.
func (p Policy) CanEnter(st State, step Step) bool {
	if !p.IsStepClickable(st, step) {
		return false
	}

	if step == st.CurrentStep || !step.needsCapture() {
		return true
	}

	return st.HasCapture()
}

// StepStatus returns active for the current step, complete for finished
// ones and pending otherwise.
func (p Policy) StepStatus(st State, step Step) StepStatus {
	switch {
	case step == st.CurrentStep:
		return StatusActive
	case st.IsComplete(step):
		return StatusComplete
	default:
		return StatusPending
	}
}

// Navigate moves the store to step when reachable and reports whether it
// did. Unreachable targets are ignored.
func (p Policy) Navigate(s *Store, step Step) bool {
	ok := s.setStepIf(step, func(st State) bool {
		return p.CanEnter(st, step)
	})

	if !ok {
		s.logger.Info("navigation ignored", "policy", p.name, "step", step)
	}

	return ok
}
