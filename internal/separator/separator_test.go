package separator

import (
	"testing"

	"github.com/adguardteam/rulekit/internal/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		literal   string
		exception bool
	}{
		{
			name:    "basic element hide",
			input:   "example.com##.ad",
			literal: "##",
		},
		{
			name:    "most specific wins over plain scriptlet prefix",
			input:   "example.com#%#//scriptlet('s0')",
			literal: rule.SepScriptlet.Literal,
		},
		{
			name:      "exception scriptlet",
			input:     "example.com#@%#//scriptlet('s0')",
			literal:   rule.SepScriptletException.Literal,
			exception: true,
		},
		{
			name:    "hash inside attribute string falls back to dollar",
			input:   `example.com$$script[tag-content="#example"]`,
			literal: "$$",
		},
		{
			name:      "dollar exception",
			input:     "||example.org^$@$",
			literal:   "$@$",
			exception: true,
		},
		{
			name:    "html filter",
			input:   "example.org##^script:has-text(foo)",
			literal: "##^",
		},
		{
			name:    "js injection",
			input:   "example.com##+js(set-constant.js, foo, bar)",
			literal: "##+js",
		},
		{
			name:    "extended css",
			input:   "example.com#?#.ad:has(> .inner)",
			literal: "#?#",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Locate(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.literal, m.Separator.Literal)
			assert.Equal(t, tt.exception, m.Exception)
		})
	}
}

func TestLocateBasicElementHideSplitsPatternAndBody(t *testing.T) {
	input := "example.com##.ad"
	m, ok := Locate(input)
	require.True(t, ok)
	assert.Equal(t, "example.com", input[:m.Start])
	assert.Equal(t, ".ad", input[m.End:])
}

func TestLocateNotFound(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "comment continuation is not a separator",
			input: "! comment with ## inside",
		},
		{
			name:  "no recognized separator at all",
			input: "||example.org^$script,third-party",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Locate(tt.input)
			assert.False(t, ok)
		})
	}
}
