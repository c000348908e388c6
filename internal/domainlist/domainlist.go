// Package domainlist implements the comma-/pipe-separated domain-list
// grammar with exception markers.
package domainlist

import (
	"strings"

	"github.com/adguardteam/rulekit/internal/rule"
	"github.com/adguardteam/rulekit/internal/rulekiterr"
)

// Parse splits raw by sep and validates each fragment, preserving order.
func Parse(raw string, sep rule.DomainListSeparator) (rule.DomainList, error) {
	list := rule.DomainList{Separator: sep}

	fragments := strings.Split(raw, string(rune(sep)))
	for _, frag := range fragments {
		trimmed := strings.TrimSpace(frag)
		if trimmed == "" || trimmed == "~" {
			return rule.DomainList{}, rulekiterr.New(rulekiterr.EmptyDomain, raw, "domain fragment was empty")
		}

		exception := false
		if trimmed[0] == '~' {
			if len(trimmed) == 1 {
				return rule.DomainList{}, rulekiterr.New(rulekiterr.EmptyDomain, raw, "domain fragment was empty")
			}
			if trimmed[1] == ' ' || trimmed[1] == '\t' {
				return rule.DomainList{}, rulekiterr.New(rulekiterr.ExceptionFollowedByWhitespace, raw, "~ followed by whitespace")
			}
			if trimmed[1] == '~' {
				return rule.DomainList{}, rulekiterr.New(rulekiterr.DoubleException, raw, "~~ in domain list")
			}
			exception = true
			trimmed = trimmed[1:]
		}

		list.Domains = append(list.Domains, rule.Domain{Name: trimmed, Exception: exception})
	}

	return list, nil
}

// Generate concatenates `[~]name` fragments with the list's separator.
// Names are assumed already normalized, so no trimming is applied.
func Generate(list rule.DomainList) string {
	parts := make([]string, len(list.Domains))
	for i, d := range list.Domains {
		if d.Exception {
			parts[i] = "~" + d.Name
		} else {
			parts[i] = d.Name
		}
	}
	return strings.Join(parts, string(rune(list.Separator)))
}
