// Package scriptlet parses and regenerates scriptlet-injection bodies: the
// AdGuard/uBO parenthesized call convention and the Adblock Plus
// semicolon-separated convention.
package scriptlet

import (
	"strings"

	"github.com/adguardteam/rulekit/internal/rule"
	"github.com/adguardteam/rulekit/internal/rulekiterr"
	"github.com/adguardteam/rulekit/internal/scanner"
)

// Shape selects which calling convention Generate re-emits.
type Shape int

const (
	ShapeAdgUbo Shape = iota
	ShapeABP
)

// Parse auto-detects the calling convention: input beginning with `(`
// (after trimming) uses the AdGuard/uBO shape, anything else uses the ABP
// shape.
func Parse(input string) (rule.ScriptletBody, Shape, error) {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "(") {
		body, err := ParseAdgUbo(trimmed)
		return body, ShapeAdgUbo, err
	}
	body, err := ParseABP(trimmed)
	return body, ShapeABP, err
}

// ParseAdgUbo parses a single `(arg, arg, ...)` call.
func ParseAdgUbo(input string) (rule.ScriptletBody, error) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "(") {
		return nil, rulekiterr.New(rulekiterr.MissingOpenParen, input, "scriptlet call must start with '('")
	}
	if !strings.HasSuffix(input, ")") {
		return nil, rulekiterr.New(rulekiterr.MissingCloseParen, input, "scriptlet call must end with ')'")
	}

	inner := input[1 : len(input)-1]
	fragments := scanner.SplitBy(scanner.SplitOutsideStringsOutsideRegex, inner, ',')
	for i := range fragments {
		fragments[i] = strings.TrimSpace(fragments[i])
	}

	if len(fragments) == 0 || fragments[0] == "" {
		return nil, nil
	}

	params := make([]rule.ScriptletParam, 0, len(fragments))
	for _, f := range fragments {
		params = append(params, classifyParam(f))
	}

	call := rule.ScriptletCall{Name: params[0], Args: params[1:]}
	return rule.ScriptletBody{call}, nil
}

// ParseABP parses `name arg arg; name arg; ...`.
func ParseABP(input string) (rule.ScriptletBody, error) {
	input = strings.TrimSpace(input)
	input = strings.TrimSuffix(input, ";")

	if input == "" {
		return nil, nil
	}

	callTexts := scanner.SplitBy(scanner.SplitOutsideStringsOutsideRegex, input, ';')

	body := make(rule.ScriptletBody, 0, len(callTexts))
	for _, ct := range callTexts {
		ct = strings.TrimSpace(ct)

		tokens := splitABPArgs(ct)
		if len(tokens) == 0 || tokens[0] == "" {
			return nil, rulekiterr.New(rulekiterr.NoScriptletSpecified, input, "ABP scriptlet call has no name")
		}

		params := make([]rule.ScriptletParam, 0, len(tokens))
		for _, t := range tokens {
			params = append(params, classifyParam(t))
		}
		body = append(body, rule.ScriptletCall{Name: params[0], Args: params[1:]})
	}

	return body, nil
}

// splitABPArgs splits one ABP call on ASCII whitespace, preserving quoted
// arguments (including their delimiters) and escaped whitespace.
func splitABPArgs(s string) []string {
	var tokens []string
	var cur strings.Builder
	var openQuote byte
	inArg := false

	flush := func() {
		tokens = append(tokens, cur.String())
		cur.Reset()
		inArg = false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		if openQuote != 0 {
			if c == '\\' && i+1 < len(s) {
				cur.WriteByte(c)
				cur.WriteByte(s[i+1])
				i++
				continue
			}
			if c == openQuote {
				cur.WriteByte(c)
				openQuote = 0
				flush()
				continue
			}
			cur.WriteByte(c)
			continue
		}

		if scanner.IsWhitespace(c) {
			if inArg {
				flush()
			}
			continue
		}

		if c == '\\' && i+1 < len(s) {
			cur.WriteByte(c)
			cur.WriteByte(s[i+1])
			inArg = true
			i++
			continue
		}

		if c == '\'' || c == '"' {
			if inArg {
				flush()
			}
			openQuote = c
			cur.WriteByte(c)
			inArg = true
			continue
		}

		cur.WriteByte(c)
		inArg = true
	}

	if inArg || cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}

	return tokens
}

// classifyParam strips a recognized delimiter pair (`'...'`, `"..."`,
// `/.../`) from frag, classifying it accordingly; anything else is
// Unquoted verbatim.
func classifyParam(frag string) rule.ScriptletParam {
	if len(frag) >= 2 {
		switch {
		case frag[0] == '\'' && frag[len(frag)-1] == '\'':
			return rule.ScriptletParam{Kind: rule.SingleQuoted, Value: frag[1 : len(frag)-1]}
		case frag[0] == '"' && frag[len(frag)-1] == '"':
			return rule.ScriptletParam{Kind: rule.DoubleQuoted, Value: frag[1 : len(frag)-1]}
		case frag[0] == '/' && frag[len(frag)-1] == '/':
			return rule.ScriptletParam{Kind: rule.RegExp, Value: frag[1 : len(frag)-1]}
		}
	}
	return rule.ScriptletParam{Kind: rule.Unquoted, Value: frag}
}

// Generate re-emits body using shape's calling convention.
func Generate(body rule.ScriptletBody, shape Shape) string {
	calls := make([]string, 0, len(body))
	for _, call := range body {
		params := append([]rule.ScriptletParam{call.Name}, call.Args...)
		parts := make([]string, 0, len(params))
		for _, p := range params {
			parts = append(parts, formatParam(p))
		}

		if shape == ShapeABP {
			calls = append(calls, strings.Join(parts, " "))
		} else {
			calls = append(calls, "("+strings.Join(parts, ", ")+")")
		}
	}

	if shape == ShapeABP {
		return strings.Join(calls, "; ")
	}
	return strings.Join(calls, "\n")
}

func formatParam(p rule.ScriptletParam) string {
	switch p.Kind {
	case rule.SingleQuoted:
		return "'" + scanner.Escape(p.Value, '\'') + "'"
	case rule.DoubleQuoted:
		return `"` + scanner.Escape(p.Value, '"') + `"`
	case rule.RegExp:
		return "/" + scanner.Escape(p.Value, '/') + "/"
	default:
		return p.Value
	}
}
