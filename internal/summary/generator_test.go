package summary_test

import (
	"strings"
	"testing"
	"time"

	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/fixtures"
	"github.com/alkime/itranscript/internal/idgen"
	"github.com/alkime/itranscript/internal/summary"
	"github.com/alkime/itranscript/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)

func newGenerator() *summary.Generator {
	return summary.NewGenerator(idgen.NewCounter("sum-new-", 0), func() time.Time { return now }, nil)
}

func TestGenerate_SOAPDefault(t *testing.T) {
	t.Parallel()

	g := newGenerator()
	p := fixtures.Patients()[0]

	note, err := g.Generate(summary.Request{Patient: &p})
	require.NoError(t, err)

	assert.Equal(t, clinical.SummarySOAP, note.Type)
	assert.Equal(t, clinical.VisitFollowUp, note.VisitType)
	assert.Equal(t, "en", note.Language)
	assert.Equal(t, fixtures.SOAPNote, note.Content)
	assert.Equal(t, "SOAP Note - Sarah Johnson", note.Title)
	assert.Equal(t, now, note.CreatedAt)
	assert.Empty(t, note.Warnings)
}

func TestGenerate_TemplateLayout(t *testing.T) {
	t.Parallel()

	g := newGenerator()
	tr := fixtures.Transcript()
	p := fixtures.Patients()[0]

	note, err := g.Generate(summary.Request{
		Type:       clinical.SummaryReferral,
		VisitType:  clinical.VisitNewPatient,
		Language:   "es",
		Prompt:     "Keep it concise",
		Transcript: &tr,
		Patient:    &p,
	})
	require.NoError(t, err)

	tmpl, ok := g.Template(clinical.VisitNewPatient)
	require.True(t, ok)

	assert.True(t, strings.HasPrefix(note.Content, "REFERRAL LETTER\n"))
	assert.Contains(t, note.Content, "Patient: Sarah Johnson")
	assert.Contains(t, note.Content, "Language: Spanish")
	assert.Contains(t, note.Content, "Instructions: Keep it concise")

	last := -1
	for _, section := range tmpl.Sections {
		i := strings.Index(note.Content, strings.ToUpper(section)+":")
		require.Greater(t, i, last, section)
		last = i
	}

	assert.Contains(t, note.Content, "- Yes, twice a day with meals")
	assert.NotContains(t, note.Content, "- Good morning Mrs Johnson")
}

func TestGenerate_Validation(t *testing.T) {
	t.Parallel()

	g := newGenerator()

	for field, req := range map[string]summary.Request{
		"type":      {Type: "memo"},
		"visitType": {VisitType: "house-call"},
		"language":  {Language: "tlh"},
	} {
		_, err := g.Generate(req)
		verr, ok := validation.As(err)
		require.True(t, ok, field)
		assert.Equal(t, field, verr.Field)
	}
}

func TestLanguageWarnings(t *testing.T) {
	t.Parallel()

	g := newGenerator()

	got := g.LanguageWarnings("Definitely neuropathy here. It must be diabetic. definitely.")
	require.Len(t, got, 2)
	assert.Equal(t, "definitely", got[0].Phrase)
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, "must be", got[1].Phrase)
	assert.NotEmpty(t, got[1].Suggestions)

	assert.Empty(t, g.LanguageWarnings("Findings are consistent with neuropathy."))
	assert.Equal(t, "findings are consistent with", g.Phrasing(clinical.ConfidenceMedium))
}

func TestHistory_NewestFirst(t *testing.T) {
	t.Parallel()

	g := newGenerator()

	got := g.History("p1")
	require.Len(t, got, 3)
	assert.Equal(t, []string{"sum1", "sum2", "sum3"}, []string{got[0].ID, got[1].ID, got[2].ID})

	assert.Empty(t, g.History("p6"))
	assert.Len(t, g.History(""), len(fixtures.PreviousSummaries()))
}

func TestSave(t *testing.T) {
	t.Parallel()

	g := newGenerator()
	p := fixtures.Patients()[5]

	note, err := g.Generate(summary.Request{Type: clinical.SummaryProgress, Patient: &p})
	require.NoError(t, err)

	saved := g.Save(note, p)
	assert.Equal(t, "sum-new-1", saved.ID)

	hist := g.History(p.ID)
	require.Len(t, hist, 1)
	assert.Equal(t, note.Content, hist[0].Content)
}
