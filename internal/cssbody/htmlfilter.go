package cssbody

import (
	"strings"

	"github.com/adguardteam/rulekit/internal/rule"
)

// ParseHTMLFilter parses an AdGuard HTML-filtering rule body. AdGuard HTML
// bodies use `""` where a selector needs a literal double quote inside an
// attribute value; that is transcoded to a single backslash-quote before
// the body is split on top-level commas like any other selector list.
func ParseHTMLFilter(input string) rule.HTMLFilterBody {
	return rule.HTMLFilterBody{Selectors: splitSelectorList(toEscapedQuotes(input))}
}

// GenerateHTMLFilter re-emits a comma-joined selector list. For the
// AdGuard dialect, backslash-quotes are transcoded back to the doubled
// `""` form; uBO selectors never contain `\"` so the transcode is a no-op
// for that dialect.
func GenerateHTMLFilter(b rule.HTMLFilterBody, dialect rule.Dialect) string {
	joined := strings.Join(b.Selectors, ", ")
	if dialect == rule.AdGuard || dialect == rule.Common {
		return fromEscapedQuotes(joined)
	}
	return joined
}

// toEscapedQuotes converts AdGuard's doubled `""` quote-escaping convention
// to a single backslash-quote, tracking whether the scan is currently
// inside a double-quoted string so that a lone `"` (string delimiter) is
// left untouched.
func toEscapedQuotes(input string) string {
	var b strings.Builder
	inDQ := false
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == '"' {
			if inDQ && i+1 < len(input) && input[i+1] == '"' {
				b.WriteString(`\"`)
				i++
				continue
			}
			inDQ = !inDQ
			b.WriteByte(c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// fromEscapedQuotes reverses toEscapedQuotes.
func fromEscapedQuotes(input string) string {
	return strings.ReplaceAll(input, `\"`, `""`)
}
