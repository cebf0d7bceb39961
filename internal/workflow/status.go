package workflow

import "fmt"

// DocumentStatus is the lifecycle marker of the generated clinical note.
// It only moves forward: draft, reviewed, final.
type DocumentStatus string

const (
	StatusDraft    DocumentStatus = "draft"
	StatusReviewed DocumentStatus = "reviewed"
	StatusFinal    DocumentStatus = "final"
)

// ParseDocumentStatus converts a status name into a DocumentStatus.
func ParseDocumentStatus(s string) (DocumentStatus, error) {
	status := DocumentStatus(s)
	if status.rank() < 0 {
		return "", fmt.Errorf("unknown document status %q", s)
	}

	return status, nil
}

func (d DocumentStatus) rank() int {
	switch d {
	case StatusDraft:
		return 0
	case StatusReviewed:
		return 1
	case StatusFinal:
		return 2
	}

	return -1
}

func (d DocumentStatus) Valid() bool {
	return d.rank() >= 0
}

// Before reports whether d comes strictly earlier in the lifecycle than other.
func (d DocumentStatus) Before(other DocumentStatus) bool {
	return d.rank() < other.rank()
}

// Label is the capitalised badge text.
func (d DocumentStatus) Label() string {
	switch d {
	case StatusDraft:
		return "Draft"
	case StatusReviewed:
		return "Reviewed"
	case StatusFinal:
		return "Final"
	}

	return string(d)
}
