package textmatch_test

import (
	"testing"

	"github.com/alkime/itranscript/internal/textmatch"
	"github.com/stretchr/testify/assert"
)

func TestWholeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		phrase string
		text   string
		want   []string
	}{
		{
			name:   "word edges",
			phrase: "must be",
			text:   "It must be diabetic. MUST BE. mustbe, must bed",
			want:   []string{"must be", "MUST BE"},
		},
		{
			name:   "trailing punctuation",
			phrase: "s.o.b.",
			text:   "Reports s.o.b. on exertion and S.O.B. at rest",
			want:   []string{"s.o.b.", "S.O.B."},
		},
		{
			name:   "leading word trailing punctuation inside a word",
			phrase: "s.o.b.",
			text:   "alias.o.b. is not a match",
			want:   nil,
		},
		{
			name:   "punctuation both sides",
			phrase: "(HTN)",
			text:   "hx (HTN) noted, (htn)",
			want:   []string{"(HTN)", "(htn)"},
		},
		{
			name:   "no boundary on non-ascii edge",
			phrase: "é",
			text:   "café é",
			want:   []string{"é", "é"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := textmatch.WholeWord(tt.phrase).FindAllString(tt.text, -1)
			assert.Equal(t, tt.want, got)
		})
	}
}
