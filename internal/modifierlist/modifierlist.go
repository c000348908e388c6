// Package modifierlist implements the comma-separated `name[=value]`
// modifier-list grammar, shared by network rules and AdGuard's `[$...]`
// cosmetic modifier block.
package modifierlist

import (
	"strings"

	"github.com/adguardteam/rulekit/internal/rule"
	"github.com/adguardteam/rulekit/internal/scanner"
)

// Parse splits raw on unescaped commas (a comma preceded by '\' is part of
// a value, for regex modifier support) and parses each fragment.
func Parse(raw string) rule.ModifierList {
	fragments := splitUnescaped(raw, ',')
	if len(fragments) == 1 && strings.TrimSpace(fragments[0]) == "" {
		return nil
	}

	list := make(rule.ModifierList, 0, len(fragments))
	for _, frag := range fragments {
		list = append(list, parseOne(frag))
	}
	return list
}

func parseOne(frag string) rule.Modifier {
	var mod rule.Modifier

	eq := scanner.FindNextUnescaped(frag, '=', 0)
	var name, value string
	if eq == -1 {
		name = frag
	} else {
		name = frag[:eq]
		value = frag[eq+1:]
		mod.HasValue = true
	}

	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "~") {
		mod.Exception = true
		name = strings.TrimSpace(name[1:])
	}

	mod.Name = name
	if mod.HasValue {
		mod.Value = strings.TrimSpace(value)
	}
	return mod
}

// splitUnescaped splits on occurrences of delim not preceded by '\'.
func splitUnescaped(input string, delim byte) []string {
	var fragments []string
	start := 0
	for {
		idx := scanner.FindNextUnescaped(input, delim, start)
		if idx == -1 {
			fragments = append(fragments, input[start:])
			return fragments
		}
		fragments = append(fragments, input[start:idx])
		start = idx + 1
	}
}

// Generate re-emits `[~]name[=value]` fragments joined by ','.
func Generate(list rule.ModifierList) string {
	parts := make([]string, len(list))
	for i, m := range list {
		var b strings.Builder
		if m.Exception {
			b.WriteByte('~')
		}
		b.WriteString(m.Name)
		if m.HasValue {
			b.WriteByte('=')
			b.WriteString(m.Value)
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, ",")
}
