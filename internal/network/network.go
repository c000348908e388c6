// Package network parses and regenerates non-cosmetic (network) filter
// rules: the exception marker, the modifier separator, and the
// `removeheader`/`responseheader` specializations.
package network

import (
	"strings"

	"github.com/adguardteam/rulekit/internal/modifierlist"
	"github.com/adguardteam/rulekit/internal/rule"
	"github.com/adguardteam/rulekit/internal/rulekiterr"
	"github.com/adguardteam/rulekit/internal/separator"
)

// Parse assumes input has already failed cosmetic-rule detection.
func Parse(input string) (rule.NetworkRule, error) {
	input = strings.TrimSpace(input)

	if strings.Contains(input, "responseheader(") {
		return parseUboResponseHeader(input)
	}

	var exception bool
	if strings.HasPrefix(input, "@@") {
		exception = true
		input = input[2:]
	}

	dollarIdx := locateModifierDollar(input)
	if dollarIdx == -1 {
		return rule.NetworkRule{Kind: rule.Basic, Dialect: rule.Common, Exception: exception, Pattern: input}, nil
	}

	pattern := input[:dollarIdx]
	mods := modifierlist.Parse(input[dollarIdx+1:])

	if len(mods) == 1 && mods[0].Name == "removeheader" {
		if mods[0].Value == "" {
			return rule.NetworkRule{}, rulekiterr.New(rulekiterr.EmptyRemoveHeader, input, "removeheader modifier has empty value")
		}
		return rule.NetworkRule{
			Kind:      rule.RemoveHeader,
			Dialect:   rule.AdGuard,
			Exception: exception,
			Pattern:   pattern,
			Header:    mods[0].Value,
		}, nil
	}

	return rule.NetworkRule{
		Kind:      rule.Basic,
		Dialect:   rule.Common,
		Exception: exception,
		Pattern:   pattern,
		Modifiers: mods,
	}, nil
}

func parseUboResponseHeader(input string) (rule.NetworkRule, error) {
	m, found := separator.Locate(input)
	if !found || (m.Separator.Literal != "##^" && m.Separator.Literal != "#@#^") {
		return rule.NetworkRule{}, rulekiterr.New(rulekiterr.InvalidResponseHeader, input, "responseheader( requires a ##^/#@#^ separator")
	}

	pattern := input[:m.Start]
	body := strings.TrimSpace(input[m.End:])

	if !strings.HasPrefix(body, "responseheader(") || !strings.HasSuffix(body, ")") {
		return rule.NetworkRule{}, rulekiterr.New(rulekiterr.InvalidResponseHeader, input, "malformed responseheader(...) body")
	}

	header := body[len("responseheader(") : len(body)-1]
	if header == "" {
		return rule.NetworkRule{}, rulekiterr.New(rulekiterr.InvalidResponseHeader, input, "responseheader() has an empty name")
	}

	return rule.NetworkRule{
		Kind:      rule.RemoveHeader,
		Dialect:   rule.UblockOrigin,
		Exception: m.Exception,
		Pattern:   pattern,
		Header:    header,
	}, nil
}

// locateModifierDollar scans from the right for an unescaped '$' not
// followed by '/', guarding against mis-splitting inside a trailing regex
// value such as `$replace=/.../`.
func locateModifierDollar(input string) int {
	for i := len(input) - 1; i >= 0; i-- {
		if input[i] != '$' {
			continue
		}
		if i > 0 && input[i-1] == '\\' {
			continue
		}
		if i+1 < len(input) && input[i+1] == '/' {
			continue
		}
		return i
	}
	return -1
}

// Generate re-emits canonical text for rl.
func Generate(rl rule.NetworkRule) string {
	var b strings.Builder

	uboHeader := rl.Kind == rule.RemoveHeader && rl.Dialect == rule.UblockOrigin
	if rl.Exception && !uboHeader {
		b.WriteString("@@")
	}
	b.WriteString(rl.Pattern)

	switch {
	case uboHeader:
		if rl.Exception {
			b.WriteString("#@#^")
		} else {
			b.WriteString("##^")
		}
		b.WriteString("responseheader(" + rl.Header + ")")
	case rl.Kind == rule.RemoveHeader:
		b.WriteString("$removeheader=" + rl.Header)
	default:
		if !rl.Modifiers.Empty() {
			b.WriteString("$" + modifierlist.Generate(rl.Modifiers))
		}
	}

	return b.String()
}
