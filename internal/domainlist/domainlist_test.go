package domainlist

import (
	"testing"

	"github.com/adguardteam/rulekit/internal/rule"
	"github.com/adguardteam/rulekit/internal/rulekiterr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   rule.DomainListSeparator
		want  rule.DomainList
	}{
		{
			name:  "basic comma list",
			input: "example.com,~example.net",
			sep:   rule.DomainSepComma,
			want: rule.DomainList{
				Separator: rule.DomainSepComma,
				Domains: []rule.Domain{
					{Name: "example.com", Exception: false},
					{Name: "example.net", Exception: true},
				},
			},
		},
		{
			name:  "pipe separator",
			input: "a.com|~b.com",
			sep:   rule.DomainSepPipe,
			want: rule.DomainList{
				Separator: rule.DomainSepPipe,
				Domains: []rule.Domain{
					{Name: "a.com", Exception: false},
					{Name: "b.com", Exception: true},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Parse(tt.input, tt.sep)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  rulekiterr.Kind
	}{
		{
			name:  "empty domain between commas",
			input: "a.com,,b.com",
			kind:  rulekiterr.EmptyDomain,
		},
		{
			name:  "bare tilde is an empty domain",
			input: "~",
			kind:  rulekiterr.EmptyDomain,
		},
		{
			name:  "exception followed by whitespace",
			input: "~ example.com",
			kind:  rulekiterr.ExceptionFollowedByWhitespace,
		},
		{
			name:  "double exception marker",
			input: "~~example.com",
			kind:  rulekiterr.DoubleException,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, rule.DomainSepComma)
			require.Error(t, err)
			var rerr *rulekiterr.Error
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.kind, rerr.Kind)
		})
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   rule.DomainListSeparator
	}{
		{
			name:  "comma round trips",
			input: "example.com,~example.net",
			sep:   rule.DomainSepComma,
		},
		{
			name:  "pipe round trips",
			input: "a.com|~b.com",
			sep:   rule.DomainSepPipe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Parse(tt.input, tt.sep)
			require.NoError(t, err)
			assert.Equal(t, tt.input, Generate(l))
		})
	}
}
