package cosmetic

import (
	"testing"

	"github.com/adguardteam/rulekit/internal/rule"
	"github.com/adguardteam/rulekit/internal/rulekiterr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotACosmeticRule(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "plain comment", input: "! this is a comment"},
		{name: "no recognized separator", input: "||example.com^$script"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := Parse(tt.input)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, n rule.CosmeticRule)
	}{
		{
			name:  "element hide, basic",
			input: "example.com,~example.net##.ad",
			check: func(t *testing.T, n rule.CosmeticRule) {
				assert.Equal(t, rule.ElementHide, n.Type)
				assert.Equal(t, rule.Common, n.Dialect)
				require.Len(t, n.Domains.Domains, 2)
				assert.Equal(t, "example.com", n.Domains.Domains[0].Name)
				assert.False(t, n.Domains.Domains[0].Exception)
				assert.Equal(t, "example.net", n.Domains.Domains[1].Name)
				assert.True(t, n.Domains.Domains[1].Exception)
				assert.Equal(t, "##", n.Separator.Literal)
				assert.Equal(t, []string{".ad"}, n.ElementHide.Selectors)
			},
		},
		{
			name:  "AdGuard scriptlet exception with modifier bracket",
			input: `[$path=/test]example.com#@%#//scriptlet('s0', 'arg0')`,
			check: func(t *testing.T, n rule.CosmeticRule) {
				assert.Equal(t, rule.Scriptlet, n.Type)
				assert.Equal(t, rule.AdGuard, n.Dialect)
				assert.True(t, n.Exception)
				require.Len(t, n.Modifiers, 1)
				assert.Equal(t, "path", n.Modifiers[0].Name)
				assert.Equal(t, "/test", n.Modifiers[0].Value)
				require.Len(t, n.Domains.Domains, 1)
				assert.Equal(t, "example.com", n.Domains.Domains[0].Name)
				require.Len(t, n.Scriptlet, 1)
				assert.Equal(t, "s0", n.Scriptlet[0].Name.Value)
				require.Len(t, n.Scriptlet[0].Args, 1)
				assert.Equal(t, rule.SingleQuoted, n.Scriptlet[0].Args[0].Kind)
				assert.Equal(t, "arg0", n.Scriptlet[0].Args[0].Value)
			},
		},
		{
			name:  "AdGuard CSS injection with media query",
			input: "example.com#$#@media (min-width: 1024px) { .ad { padding: 0 } }",
			check: func(t *testing.T, n rule.CosmeticRule) {
				assert.Equal(t, rule.CssInject, n.Type)
				assert.Equal(t, rule.AdGuard, n.Dialect)
				assert.True(t, n.CSSInject.HasMediaQuery)
				assert.Equal(t, []string{".ad"}, n.CSSInject.Selectors)
				require.True(t, n.CSSInject.HasBlock)
			},
		},
		{
			name:  "uBO procedural element hide",
			input: "example.com##:matches-path(/a) .ad",
			check: func(t *testing.T, n rule.CosmeticRule) {
				assert.Equal(t, rule.ElementHide, n.Type)
				assert.Equal(t, rule.UblockOrigin, n.Dialect)
				require.Len(t, n.Modifiers, 1)
				assert.Equal(t, "matches-path", n.Modifiers[0].Name)
				assert.Equal(t, "/a", n.Modifiers[0].Value)
				assert.False(t, n.Modifiers[0].Not)
				assert.Equal(t, []string{".ad"}, n.ElementHide.Selectors)
			},
		},
		{
			name:  "uBO scriptlet shorthand",
			input: "example.com##+js(abort-on-property-read, foo)",
			check: func(t *testing.T, n rule.CosmeticRule) {
				assert.Equal(t, rule.Scriptlet, n.Type)
				assert.Equal(t, rule.UblockOrigin, n.Dialect)
				require.Len(t, n.Scriptlet, 1)
				assert.Equal(t, "abort-on-property-read", n.Scriptlet[0].Name.Value)
			},
		},
		{
			name:  "ABP CSS-separator scriptlet fallback",
			input: "example.com#$#abort-on-property-read foo.bar",
			check: func(t *testing.T, n rule.CosmeticRule) {
				assert.Equal(t, rule.Scriptlet, n.Type)
				assert.Equal(t, rule.AdblockPlus, n.Dialect)
				require.Len(t, n.Scriptlet, 1)
				assert.Equal(t, "abort-on-property-read", n.Scriptlet[0].Name.Value)
			},
		},
		{
			name:  "uBO HTML filter",
			input: `example.com##^script:has-text(foo)`,
			check: func(t *testing.T, n rule.CosmeticRule) {
				assert.Equal(t, rule.Html, n.Type)
				assert.Equal(t, rule.UblockOrigin, n.Dialect)
				require.Len(t, n.Modifiers, 1)
				assert.Equal(t, "has-text", n.Modifiers[0].Name)
			},
		},
		{
			name:  "AdGuard HTML filter",
			input: `example.com$$script[tag-content="banner"]`,
			check: func(t *testing.T, n rule.CosmeticRule) {
				assert.Equal(t, rule.Html, n.Type)
				assert.Equal(t, rule.AdGuard, n.Dialect)
				assert.Equal(t, []string{`script[tag-content="banner"]`}, n.HTML.Selectors)
			},
		},
		{
			name:  "AdGuard opaque JS injection",
			input: "example.com#%#window.foo = 1;",
			check: func(t *testing.T, n rule.CosmeticRule) {
				assert.Equal(t, rule.Js, n.Type)
				assert.Equal(t, rule.AdGuard, n.Dialect)
				assert.Equal(t, "window.foo = 1;", n.JS)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok, err := Parse(tt.input)
			require.NoError(t, err)
			require.True(t, ok)
			tt.check(t, n)
		})
	}
}

func TestParseUboResponseHeaderReservedForNetwork(t *testing.T) {
	_, ok, err := Parse("example.com##^responseheader(X-Foo)")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  rulekiterr.Kind
	}{
		{name: "AdGuard bracket mixed with uBO procedural", input: "[$a]##:matches-path(/p).ad", kind: rulekiterr.AdgAndUboMixed},
		{name: "uBO procedural on an AdGuard HTML filter", input: "example.com$$script:has-text(foo)", kind: rulekiterr.UboProceduralOnAdgHtml},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := Parse(tt.input)
			require.True(t, ok)
			require.Error(t, err)
			var rerr *rulekiterr.Error
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.kind, rerr.Kind)
		})
	}
}

func TestGenerateRoundTrips(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "element hide", input: "example.com,~example.net##.ad"},
		{name: "uBO procedural", input: "example.com##:matches-path(/a) .ad"},
		{name: "AdGuard scriptlet", input: `[$path=/test]example.com#@%#//scriptlet('s0', 'arg0')`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, _, err := Parse(tt.input)
			require.NoError(t, err)
			out, err := Generate(n)
			require.NoError(t, err)
			assert.Equal(t, tt.input, out)
		})
	}
}
