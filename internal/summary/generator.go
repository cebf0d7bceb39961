// Package summary lays out clinical notes from a transcript and keeps the
// history of notes per patient.
package summary

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/fixtures"
	"github.com/alkime/itranscript/internal/idgen"
	"github.com/alkime/itranscript/internal/textmatch"
	"github.com/alkime/itranscript/internal/validation"
)

// Languages maps supported output language codes to display names.
var Languages = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"zh": "Chinese",
}

const pendingSection = "(To be completed)"

// Request asks for a note. Empty Type defaults to SOAP, empty VisitType to
// follow-up and empty Language to English.
type Request struct {
	Type       clinical.SummaryType `json:"type"`
	VisitType  clinical.VisitType   `json:"visitType"`
	Language   string               `json:"language"`
	Prompt     string               `json:"prompt"`
	Transcript *clinical.Transcript `json:"-"`
	Patient    *clinical.Patient    `json:"-"`
}

// Warning flags an over-certain phrase found in a note.
type Warning struct {
	Phrase      string   `json:"phrase"`
	Count       int      `json:"count"`
	Suggestions []string `json:"suggestions"`
}

// Note is a generated clinical note.
type Note struct {
	Type      clinical.SummaryType `json:"type"`
	VisitType clinical.VisitType   `json:"visitType"`
	Language  string               `json:"language"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	CreatedAt time.Time            `json:"createdAt"`
	Warnings  []Warning            `json:"warnings,omitempty"`
}

// Generator produces notes. History is safe for concurrent use.
type Generator struct {
	soap      string
	templates map[clinical.VisitType]clinical.VisitTemplate
	trust     clinical.TrustLanguage
	ids       idgen.Generator
	now       func() time.Time
	logger    *slog.Logger

	mu      sync.RWMutex
	history []clinical.PreviousSummary
}

// NewGenerator builds a generator over the built-in templates, rules and
// previous summaries.
func NewGenerator(ids idgen.Generator, now func() time.Time, logger *slog.Logger) *Generator {
	if now == nil {
		now = time.Now
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		soap:      fixtures.SOAPNote,
		templates: fixtures.VisitTemplates(),
		trust:     fixtures.TrustLanguage(),
		ids:       ids,
		now:       now,
		logger:    logger,
		history:   fixtures.PreviousSummaries(),
	}
}

// Generate returns a note for req. SOAP notes come back in the canonical
// SOAP layout; other types follow the visit type's section template.
func (g *Generator) Generate(req Request) (Note, error) {
	req.Type = cmp.Or(req.Type, clinical.SummarySOAP)
	req.VisitType = cmp.Or(req.VisitType, clinical.VisitFollowUp)
	req.Language = cmp.Or(req.Language, "en")

	if !req.Type.Valid() {
		return Note{}, validation.Newf("type", "Unknown summary type %q", req.Type)
	}

	if !req.VisitType.Valid() {
		return Note{}, validation.Newf("visitType", "Unknown visit type %q", req.VisitType)
	}

	if _, ok := Languages[req.Language]; !ok {
		return Note{}, validation.Newf("language", "Unsupported language %q", req.Language)
	}

	note := Note{
		Type:      req.Type,
		VisitType: req.VisitType,
		Language:  req.Language,
		Title:     title(req),
		CreatedAt: g.now(),
	}

	if req.Type == clinical.SummarySOAP {
		note.Content = g.soap
	} else {
		note.Content = g.layout(req)
	}

	note.Warnings = g.LanguageWarnings(note.Content)
	g.logger.Debug("summary generated", "type", note.Type, "visit_type", note.VisitType, "warnings", len(note.Warnings))

	return note, nil
}

func title(req Request) string {
	label := req.Type.Label()
	if req.Patient != nil {
		return label + " - " + req.Patient.Name
	}

	return label
}

func (g *Generator) layout(req Request) string {
	tmpl := g.templates[req.VisitType]

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", strings.ToUpper(req.Type.Label()))

	if p := req.Patient; p != nil {
		fmt.Fprintf(&b, "Patient: %s, %d, %s (%s)\n", p.Name, p.Age, p.Gender, p.MedicalID)
	}

	fmt.Fprintf(&b, "Visit type: %s\n", req.VisitType)
	if req.Language != "en" {
		fmt.Fprintf(&b, "Language: %s\n", Languages[req.Language])
	}

	if len(tmpl.FocusAreas) > 0 {
		fmt.Fprintf(&b, "Focus areas: %s\n", strings.Join(tmpl.FocusAreas, ", "))
	}

	if prompt := strings.TrimSpace(req.Prompt); prompt != "" {
		fmt.Fprintf(&b, "Instructions: %s\n", prompt)
	}

	findings := clinicalFindings(req.Transcript)

	for i, section := range tmpl.Sections {
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(section))

		if i == 0 && len(findings) > 0 {
			for _, f := range findings {
				fmt.Fprintf(&b, "- %s\n", f)
			}

			continue
		}

		b.WriteString(pendingSection + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// clinicalFindings returns the patient's clinically relevant utterances.
func clinicalFindings(t *clinical.Transcript) []string {
	if t == nil {
		return nil
	}

	var out []string
	for _, seg := range t.ClinicalSegments() {
		if seg.SpeakerRole == clinical.SpeakerPatient {
			out = append(out, seg.Text)
		}
	}

	return out
}

// LanguageWarnings flags whole-word uses of phrases the trust rules say to
// avoid, in rule order.
func (g *Generator) LanguageWarnings(text string) []Warning {
	var out []Warning

	for _, phrase := range g.trust.AvoidPhrases {
		if n := len(textmatch.WholeWord(phrase).FindAllStringIndex(text, -1)); n > 0 {
			out = append(out, Warning{
				Phrase:      phrase,
				Count:       n,
				Suggestions: slices.Clone(g.trust.PreferredPhrases),
			})
		}
	}

	return out
}

// Phrasing returns the hedged lead-in for a confidence level.
func (g *Generator) Phrasing(c clinical.Confidence) string {
	return g.trust.Probabilistic[c]
}

// Template returns the section layout for a visit type.
func (g *Generator) Template(v clinical.VisitType) (clinical.VisitTemplate, bool) {
	t, ok := g.templates[v]

	return t, ok
}

// History returns a patient's previous summaries, newest first. An empty
// patientID returns everyone's.
func (g *Generator) History(patientID string) []clinical.PreviousSummary {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]clinical.PreviousSummary, 0, len(g.history))
	for _, s := range g.history {
		if patientID == "" || s.PatientID == patientID {
			out = append(out, s)
		}
	}

	slices.SortStableFunc(out, func(a, b clinical.PreviousSummary) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return out
}

// Save records a finalised note in the patient's history.
func (g *Generator) Save(note Note, p clinical.Patient) clinical.PreviousSummary {
	s := clinical.PreviousSummary{
		ID:          g.ids.Next(),
		PatientID:   p.ID,
		PatientName: p.Name,
		Type:        note.Type,
		Title:       note.Title,
		Content:     note.Content,
		CreatedAt:   note.CreatedAt,
		VisitType:   note.VisitType,
	}

	g.mu.Lock()
	g.history = append(g.history, s)
	g.mu.Unlock()

	return s
}
