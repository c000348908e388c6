package cssbody

import (
	"testing"

	"github.com/adguardteam/rulekit/internal/rule"
	"github.com/stretchr/testify/assert"
)

func TestParseElementHide(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "single selector", input: ".ad", want: []string{".ad"}},
		{name: "selector list", input: ".ad, .banner", want: []string{".ad", ".banner"}},
		{
			name:  "comma inside an attribute string is not a separator",
			input: `div[data-list="a,b"], .banner`,
			want:  []string{`div[data-list="a,b"]`, ".banner"},
		},
		{name: "empty input", input: "   ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ParseElementHide(tt.input)
			if tt.want == nil {
				assert.Nil(t, b.Selectors)
				return
			}
			assert.Equal(t, tt.want, b.Selectors)
		})
	}
}

func TestGenerateElementHideRoundTrips(t *testing.T) {
	b := rule.ElementHideBody{Selectors: []string{".ad", ".banner"}}
	assert.Equal(t, ".ad, .banner", GenerateElementHide(b))
}
