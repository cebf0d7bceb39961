package fixtures_test

import (
	"testing"

	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesAreFreshCopies(t *testing.T) {
	a := fixtures.Patients()
	a[0].Name = "changed"

	assert.Equal(t, "Sarah Johnson", fixtures.Patients()[0].Name)
}

func TestInsightReferencesResolve(t *testing.T) {
	tr := fixtures.Transcript()

	for _, in := range fixtures.Insights() {
		assert.Len(t, tr.SegmentsByID(in.LinkedSegmentIDs), len(in.LinkedSegmentIDs), in.ID)
	}

	for _, d := range fixtures.Differentials() {
		assert.Len(t, tr.SegmentsByID(d.LinkedSegmentIDs), len(d.LinkedSegmentIDs), d.ID)
	}
}

func TestFixtureEnumsAreValid(t *testing.T) {
	for _, p := range fixtures.Patients() {
		require.True(t, p.Gender.Valid(), p.ID)
		for _, a := range p.Alerts {
			require.True(t, a.Severity.Valid(), a.ID)
			require.True(t, a.Type.Valid(), a.ID)
		}
	}

	for _, seg := range fixtures.Transcript().Segments {
		require.True(t, seg.SpeakerRole.Valid(), seg.ID)
	}

	for _, m := range fixtures.ClinicalMoments() {
		require.True(t, m.Type.Valid(), m.ID)
	}

	templates := fixtures.VisitTemplates()
	for _, vt := range clinical.VisitTypes() {
		require.Contains(t, templates, vt)
	}
}

func TestTranscriptLines(t *testing.T) {
	assert.Len(t, fixtures.Transcript().Lines(), 8)
}

func TestVisitsFor(t *testing.T) {
	visits := fixtures.VisitsFor("p1")
	require.Len(t, visits, 5)

	for _, v := range visits {
		assert.Equal(t, "p1", v.PatientID)
	}

	assert.Empty(t, fixtures.VisitsFor("nobody"))
}
