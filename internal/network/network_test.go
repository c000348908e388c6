package network

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
		check func(t *testing.T, rl rule.NetworkRule)
	}{
		{
			name:  "basic, no modifiers",
			input: "||example.com^",
			check: func(t *testing.T, rl rule.NetworkRule) {
				assert.Equal(t, rule.Basic, rl.Kind)
				assert.False(t, rl.Exception)
				assert.Equal(t, "||example.com^", rl.Pattern)
				assert.Empty(t, rl.Modifiers)
			},
		},
		{
			name:  "exception basic",
			input: "@@||example.com^$script",
			check: func(t *testing.T, rl rule.NetworkRule) {
				assert.True(t, rl.Exception)
				assert.Equal(t, "||example.com^", rl.Pattern)
				require.Len(t, rl.Modifiers, 1)
				assert.Equal(t, "script", rl.Modifiers[0].Name)
			},
		},
		{
			name:  "dollar not split inside trailing regex value",
			input: `||example.com/path$replace=/foo/bar/`,
			check: func(t *testing.T, rl rule.NetworkRule) {
				require.Len(t, rl.Modifiers, 1)
				assert.Equal(t, "replace", rl.Modifiers[0].Name)
				assert.Equal(t, "/foo/bar/", rl.Modifiers[0].Value)
			},
		},
		{
			name:  "AdGuard removeheader",
			input: "||example.com^$removeheader=x-frame-options",
			check: func(t *testing.T, rl rule.NetworkRule) {
				assert.Equal(t, rule.RemoveHeader, rl.Kind)
				assert.Equal(t, rule.AdGuard, rl.Dialect)
				assert.Equal(t, "x-frame-options", rl.Header)
			},
		},
		{
			name:  "uBO responseheader",
			input: "||example.com^##^responseheader(x-frame-options)",
			check: func(t *testing.T, rl rule.NetworkRule) {
				assert.Equal(t, rule.RemoveHeader, rl.Kind)
				assert.Equal(t, rule.UblockOrigin, rl.Dialect)
				assert.Equal(t, "x-frame-options", rl.Header)
				assert.False(t, rl.Exception)
			},
		},
		{
			name:  "uBO responseheader exception",
			input: "||example.com^#@#^responseheader(x-frame-options)",
			check: func(t *testing.T, rl rule.NetworkRule) {
				assert.True(t, rl.Exception)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl, err := Parse(tt.input)
			require.NoError(t, err)
			tt.check(t, rl)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  rulekiterr.Kind
	}{
		{name: "empty removeheader value", input: "||example.com^$removeheader=", kind: rulekiterr.EmptyRemoveHeader},
		{name: "responseheader with wrong separator", input: "||example.com^##responseheader(x)", kind: rulekiterr.InvalidResponseHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
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
		{name: "basic with exception and modifiers", input: "@@||example.com^$script,domain=a.com"},
		{name: "AdGuard removeheader", input: "||example.com^$removeheader=x-frame-options"},
		{name: "uBO responseheader", input: "||example.com^#@#^responseheader(x-frame-options)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.input, Generate(rl))
		})
	}
}
