package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "strips allergen codes and markup",
			raw:  "김치찌개(9)<br/>돈까스(5.6)",
			want: []string{"김치찌개", "돈까스"},
		},
		{
			name: "trims surrounding whitespace",
			raw:  "  잡곡밥 <br/> 미역국(5) ",
			want: []string{"잡곡밥", "미역국"},
		},
		{
			name: "drops empty fragments",
			raw:  "<br/>불고기(5.6.13)<br/><br/>",
			want: []string{"불고기"},
		},
		{
			name: "empty payload",
			raw:  "",
			want: nil,
		},
		{
			name: "markup only payload",
			raw:  "<br/><br/>",
			want: nil,
		},
		{
			name: "codes only payload",
			raw:  "(1.2)<br/>(9)",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	t.Parallel()

	raws := []string{"김치찌개(9)", " 돈까스 (5.6) ", "치즈돈까스", ""}
	for _, raw := range raws {
		once := Clean(raw)
		assert.Equal(t, once, Clean(once), "Clean must be idempotent for %q", raw)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		terms  []string
		dishes []string
		want   []string
	}{
		{
			name:   "partial term matches longer dish",
			terms:  []string{"돈까스"},
			dishes: []string{"치즈돈까스", "김치찌개"},
			want:   []string{"돈까스"},
		},
		{
			name:   "keeps term order and dedupes",
			terms:  []string{"우유", "돈까스", "우유"},
			dishes: []string{"돈까스", "우유식빵"},
			want:   []string{"우유", "돈까스"},
		},
		{
			name:   "trims terms before matching",
			terms:  []string{" 미역국 "},
			dishes: []string{"미역국"},
			want:   []string{"미역국"},
		},
		{
			name:   "no dishes yields nothing",
			terms:  []string{"돈까스"},
			dishes: nil,
			want:   nil,
		},
		{
			name:   "no terms yields nothing",
			terms:  nil,
			dishes: []string{"돈까스"},
			want:   nil,
		},
		{
			name:   "blank terms are skipped",
			terms:  []string{"", "  "},
			dishes: []string{"돈까스"},
			want:   nil,
		},
		{
			name:   "unmatched terms are excluded",
			terms:  []string{"피자", "돈까스"},
			dishes: []string{"치즈돈까스"},
			want:   []string{"돈까스"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Match(tt.terms, tt.dishes))
		})
	}
}
