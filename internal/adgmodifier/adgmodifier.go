// Package adgmodifier extracts the AdGuard `[$...]` modifier-bracket
// prefix from a cosmetic-rule pattern.
package adgmodifier

import (
	"strings"

	"github.com/adguardteam/rulekit/internal/modifierlist"
	"github.com/adguardteam/rulekit/internal/rule"
	"github.com/adguardteam/rulekit/internal/rulekiterr"
	"github.com/adguardteam/rulekit/internal/scanner"
)

// Parse extracts a `[$...]` prefix from input, returning the remaining
// pattern in Rest. If the trimmed input doesn't begin with '[', it returns
// a zero-value block and the trimmed input as Rest (a "not present" result,
// not an error).
func Parse(input string) (rule.AdgModifierBlock, error) {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "[") {
		return rule.AdgModifierBlock{Rest: trimmed}, nil
	}

	if len(trimmed) < 2 || trimmed[1] != '$' {
		return rule.AdgModifierBlock{}, rulekiterr.New(rulekiterr.MissingModifierMarker, input, "'[' not followed by '$'")
	}

	closeIdx := scanner.FindNextUnescaped(trimmed, ']', 2)
	if closeIdx == -1 {
		return rule.AdgModifierBlock{}, rulekiterr.New(rulekiterr.MissingClosingBracket, input, "no matching ']' for '[$'")
	}

	inner := strings.TrimSpace(trimmed[2:closeIdx])
	if inner == "" {
		return rule.AdgModifierBlock{}, rulekiterr.New(rulekiterr.NoModifiersSpecified, input, "empty [$] block")
	}

	return rule.AdgModifierBlock{
		Modifiers: modifierlist.Parse(inner),
		Rest:      strings.TrimSpace(trimmed[closeIdx+1:]),
	}, nil
}

// Generate re-emits a non-empty block as `[$modifiers]`. Callers are
// expected to only call this when Modifiers is non-empty.
func Generate(block rule.AdgModifierBlock) string {
	return "[$" + modifierlist.Generate(block.Modifiers) + "]"
}
