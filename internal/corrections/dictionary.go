// Package corrections keeps the terminology dictionary applied to
// transcripts before review.
package corrections

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/alkime/itranscript/internal/clinical"
	"github.com/alkime/itranscript/internal/idgen"
	"github.com/alkime/itranscript/internal/textmatch"
	"github.com/alkime/itranscript/internal/validation"
	"github.com/alkime/itranscript/pkg/collections"
)

var ErrCorrectionNotFound = errors.New("correction not found")

// Dictionary is an ordered list of corrections, newest first.
type Dictionary struct {
	mu      sync.RWMutex
	entries []clinical.CorrectionEntry
	ids     idgen.Generator
	now     func() time.Time
	logger  *slog.Logger
}

// NewDictionary creates a dictionary seeded with entries.
func NewDictionary(seed []clinical.CorrectionEntry, ids idgen.Generator, now func() time.Time, logger *slog.Logger) *Dictionary {
	if now == nil {
		now = time.Now
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Dictionary{entries: slices.Clone(seed), ids: ids, now: now, logger: logger}
}

func (d *Dictionary) List() []clinical.CorrectionEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Clone(d.entries)
}

// Search matches query against both sides of each entry, ignoring case.
func (d *Dictionary) Search(query string) []clinical.CorrectionEntry {
	q := strings.ToLower(query)

	d.mu.RLock()
	defer d.mu.RUnlock()

	return collections.Filter(d.entries, func(e clinical.CorrectionEntry) bool {
		return strings.Contains(strings.ToLower(e.Original), q) || strings.Contains(strings.ToLower(e.Corrected), q)
	})
}

// Add prepends a correction. Both sides are trimmed and required.
func (d *Dictionary) Add(original, corrected string) (clinical.CorrectionEntry, error) {
	original = strings.TrimSpace(original)
	corrected = strings.TrimSpace(corrected)

	if original == "" || corrected == "" {
		return clinical.CorrectionEntry{}, validation.New("", "Both fields are required.")
	}

	e := clinical.CorrectionEntry{
		ID:        d.ids.Next(),
		Original:  original,
		Corrected: corrected,
		CreatedAt: d.now(),
	}

	d.mu.Lock()
	d.entries = slices.Insert(d.entries, 0, e)
	d.mu.Unlock()

	d.logger.Debug("correction added", "original", original, "corrected", corrected)

	return e, nil
}

// Delete removes the entry with the given id.
func (d *Dictionary) Delete(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := slices.IndexFunc(d.entries, func(e clinical.CorrectionEntry) bool { return e.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCorrectionNotFound, id)
	}

	d.entries = slices.Delete(d.entries, i, i+1)

	return nil
}

// Apply replaces whole-word, case-insensitive occurrences of each original
// with its correction. Entries apply in dictionary order.
func (d *Dictionary) Apply(text string) string {
	for _, e := range d.List() {
		text = textmatch.WholeWord(e.Original).ReplaceAllLiteralString(text, e.Corrected)
	}

	return text
}

// ApplyTranscript returns a copy of t with corrections applied to its text
// and segments.
func (d *Dictionary) ApplyTranscript(t clinical.Transcript) clinical.Transcript {
	t.RawText = d.Apply(t.RawText)
	t.ImprovedText = d.Apply(t.ImprovedText)

	t.Segments = collections.Apply(t.Segments, func(seg clinical.TranscriptSegment) clinical.TranscriptSegment {
		seg.Text = d.Apply(seg.Text)
		return seg
	})

	return t
}

type exported struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}

// Export writes the dictionary as a JSON array.
func (d *Dictionary) Export(w io.Writer) error {
	entries := d.List()
	out := make([]exported, 0, len(entries))
	for _, e := range entries {
		out = append(out, exported{Original: e.Original, Corrected: e.Corrected})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("export corrections: %w", err)
	}

	return nil
}

// Import reads a JSON array written by Export and adds every entry whose
// original is not yet present. It returns the number added.
func (d *Dictionary) Import(r io.Reader) (int, error) {
	var in []exported
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return 0, validation.Newf("file", "Could not read corrections file: %v", err)
	}

	known := make(map[string]bool)
	for _, e := range d.List() {
		known[strings.ToLower(e.Original)] = true
	}

	added := 0
	for _, e := range in {
		key := strings.ToLower(strings.TrimSpace(e.Original))
		if known[key] {
			continue
		}

		if _, err := d.Add(e.Original, e.Corrected); err != nil {
			continue
		}
		known[key] = true
		added++
	}

	return added, nil
}
