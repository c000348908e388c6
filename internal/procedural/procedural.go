// Package procedural lifts uBO "procedural" pseudo-classes (e.g.
// :matches-path(...)) out of a CSS selector into modifier records.
//
// Rather than requiring the CSS capability to expose source-position
// spans for every pseudo-class node, this package re-scans the raw
// selector text with an explicit bracket-depth counter keyed on `:NAME(`
// triggers. That keeps the CSS capability's public surface
// (internal/cssast) a pure declaration/media-query black box, which is
// all the rest of rulekit actually needs from it.
package procedural

import (
	"strings"

	"github.com/adguardteam/rulekit/internal/rule"
)

// Names is the fixed, closed set of recognized procedural pseudo-class
// names, matching uBO's own cosmetic-modifier registry.
var Names = map[string]bool{
	"matches-path":     true,
	"has":              true,
	"has-text":         true,
	"xpath":            true,
	"matches-css":      true,
	"matches-css-before": true,
	"matches-css-after": true,
	"matches-attr":     true,
	"matches-media":    true,
	"min-text-length":  true,
	"upward":           true,
	"watch-attr":       true,
	"watch-attrs":      true,
}

// Parse lifts every top-level procedural pseudo (and any :not(proc(...))
// single-child wrapper) out of selector.
func Parse(selector string) rule.ProceduralBlock {
	if !hasAnyTrigger(selector) {
		return rule.ProceduralBlock{Rest: selector}
	}

	keep := make([]bool, len(selector))
	for i := range keep {
		keep[i] = true
	}

	var mods rule.ModifierList

	i := 0
	for i < len(selector) {
		if selector[i] != ':' {
			i++
			continue
		}

		name, argStart, ok := matchPseudoFunc(selector, i)
		if !ok {
			i++
			continue
		}

		if name == "not" {
			closeParen := findMatchingParen(selector, argStart-1)
			if closeParen == -1 {
				i++
				continue
			}
			inner := strings.TrimSpace(selector[argStart:closeParen])
			if innerName, innerArgStart, innerOK := matchPseudoFunc(inner, 0); innerOK && Names[innerName] {
				innerClose := findMatchingParen(inner, innerArgStart-1)
				if innerClose == len(inner)-1 {
					value := strings.TrimSpace(inner[innerArgStart:innerClose])
					mods = append(mods, rule.Modifier{Name: innerName, Value: value, Not: true})
					markDrop(keep, i, closeParen+1)
					i = closeParen + 1
					continue
				}
			}
			i++
			continue
		}

		if Names[name] {
			closeParen := findMatchingParen(selector, argStart-1)
			if closeParen == -1 {
				i++
				continue
			}
			value := strings.TrimSpace(selector[argStart:closeParen])
			mods = append(mods, rule.Modifier{Name: name, Value: value})
			markDrop(keep, i, closeParen+1)
			i = closeParen + 1
			continue
		}

		i++
	}

	var b strings.Builder
	for idx := 0; idx < len(selector); idx++ {
		if keep[idx] {
			b.WriteByte(selector[idx])
		}
	}
	rest := strings.TrimSpace(strings.Join(strings.Fields(b.String()), " "))

	return rule.ProceduralBlock{Modifiers: mods, Rest: rest}
}

// Generate re-emits modifiers at the start of the selector as
// `[:not(]:name(value)[)]` concatenated, followed by a space and Rest.
// Ordering of modifiers at generation time is the order they were
// recorded during Parse's left-to-right walk — not necessarily the
// selector's original order.
func Generate(block rule.ProceduralBlock) string {
	var b strings.Builder
	for _, m := range block.Modifiers {
		if m.Not {
			b.WriteString(":not(:" + m.Name + "(" + m.Value + "))")
		} else {
			b.WriteString(":" + m.Name + "(" + m.Value + ")")
		}
	}
	if b.Len() > 0 && block.Rest != "" {
		b.WriteByte(' ')
	}
	b.WriteString(block.Rest)
	return b.String()
}

func hasAnyTrigger(selector string) bool {
	for name := range Names {
		if strings.Contains(selector, ":"+name+"(") {
			return true
		}
	}
	return false
}

// matchPseudoFunc checks whether selector[pos] begins a `:name(` pseudo
// function, returning the name and the index just past the opening '('.
func matchPseudoFunc(selector string, pos int) (name string, argStart int, ok bool) {
	if pos >= len(selector) || selector[pos] != ':' {
		return "", 0, false
	}
	j := pos + 1
	start := j
	for j < len(selector) && isNameChar(selector[j]) {
		j++
	}
	if j == start || j >= len(selector) || selector[j] != '(' {
		return "", 0, false
	}
	return selector[start:j], j + 1, true
}

func isNameChar(c byte) bool {
	return c == '-' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// findMatchingParen finds the index of the ')' that closes the '(' at
// s[openIdx], tracking nested parens and quoted strings.
func findMatchingParen(s string, openIdx int) int {
	depth := 0
	var quote byte
	for i := openIdx; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote && (i == 0 || s[i-1] != '\\') {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func markDrop(keep []bool, start, end int) {
	for i := start; i < end && i < len(keep); i++ {
		keep[i] = false
	}
}
