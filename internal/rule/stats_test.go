package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStats(t *testing.T) {
	s := NewStats()
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.Errors)
	assert.NotNil(t, s.SkipReasons)
	assert.Empty(t, s.SkipReasons)
}

func TestStatsRecordError(t *testing.T) {
	tests := []struct {
		name    string
		reasons []string
		want    map[string]int
	}{
		{
			name:    "single reason",
			reasons: []string{"bad domain"},
			want:    map[string]int{"bad domain": 1},
		},
		{
			name:    "repeated reason is bucketed",
			reasons: []string{"bad domain", "bad domain", "empty pattern"},
			want:    map[string]int{"bad domain": 2, "empty pattern": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStats()
			for _, r := range tt.reasons {
				s.RecordError(r)
			}
			assert.Equal(t, len(tt.reasons), s.Errors)
			assert.Equal(t, tt.want, s.SkipReasons)
		})
	}
}

func TestDeduplicateRaw(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "no duplicates",
			input: []string{"a", "b", "c"},
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "adjacent duplicate dropped",
			input: []string{"a", "a", "b"},
			want:  []string{"a", "b"},
		},
		{
			name:  "non-adjacent duplicate keeps first occurrence position",
			input: []string{"a", "b", "a", "c"},
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "empty input",
			input: []string{},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeduplicateRaw(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}
