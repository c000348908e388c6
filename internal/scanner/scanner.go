// Package scanner implements the quote-/escape-/regex-aware character
// scans and splits that every higher-level rulekit parser is built on.
// Every operation here is pure and never fails.
package scanner

import "strings"

const esc = '\\'

// FindNextUnescaped returns the smallest index >= start where input[i] ==
// target and input[i-1] != ESC, or -1 if there is none. The boundary at
// index 0 is satisfied vacuously (no predecessor to be ESC).
func FindNextUnescaped(input string, target byte, start int) int {
	for i := start; i < len(input); i++ {
		if input[i] != target {
			continue
		}
		if i == 0 || input[i-1] != esc {
			return i
		}
	}
	return -1
}

// FindLastUnescaped is the symmetric search from the end.
func FindLastUnescaped(input string, target byte) int {
	for i := len(input) - 1; i >= 0; i-- {
		if input[i] != target {
			continue
		}
		if i == 0 || input[i-1] != esc {
			return i
		}
	}
	return -1
}

// quoteState tracks the single open delimiter a scan is currently inside,
// 0 meaning "none".
type quoteState byte

// FindUnescapedOutsideStringsOutsideRegex finds target outside of '\'',
// '"', and '/' delimited runs. A delimiter character not preceded by ESC
// toggles the state: it opens if none is open, and closes if it matches
// the currently open delimiter.
func FindUnescapedOutsideStringsOutsideRegex(input string, target byte, start int) int {
	return findOutside(input, target, start, true)
}

// FindUnescapedOutsideStrings is the same scan but only '\'' and '"'
// affect state; '/' is inert.
func FindUnescapedOutsideStrings(input string, target byte, start int) int {
	return findOutside(input, target, start, false)
}

func findOutside(input string, target byte, start int, regexAware bool) int {
	var open quoteState
	for i := start; i < len(input); i++ {
		c := input[i]
		escaped := i > 0 && input[i-1] == esc
		if !escaped && (c == '\'' || c == '"' || (regexAware && c == '/')) {
			if open == 0 {
				open = quoteState(c)
			} else if open == quoteState(c) {
				open = 0
			}
			continue
		}
		if c == target && !escaped && open == 0 {
			return i
		}
	}
	return -1
}

// SplitVariant selects which finder SplitBy uses between delimiter matches.
type SplitVariant int

const (
	SplitPlain SplitVariant = iota
	SplitOutsideStrings
	SplitOutsideStringsOutsideRegex
)

// SplitBy emits substrings between matches of the chosen finder. Empty
// input yields one empty fragment; empty fragments between delimiters are
// preserved.
func SplitBy(variant SplitVariant, input string, delimiter byte) []string {
	if input == "" {
		return []string{""}
	}

	var fragments []string
	start := 0
	for {
		var idx int
		switch variant {
		case SplitOutsideStrings:
			idx = FindUnescapedOutsideStrings(input, delimiter, start)
		case SplitOutsideStringsOutsideRegex:
			idx = FindUnescapedOutsideStringsOutsideRegex(input, delimiter, start)
		default:
			idx = strings.IndexByte(input[start:], delimiter)
			if idx != -1 {
				idx += start
			}
		}
		if idx == -1 {
			fragments = append(fragments, input[start:])
			return fragments
		}
		fragments = append(fragments, input[start:idx])
		start = idx + 1
	}
}

// IsWhitespace reports whether c is a space or tab.
func IsWhitespace(c byte) bool { return c == ' ' || c == '\t' }

// IsRegexPattern reports whether input looks like a /.../ regex literal:
// length > 2, starts with '/', and has an unescaped '/' at its last index.
func IsRegexPattern(input string) bool {
	if len(input) <= 2 || input[0] != '/' {
		return false
	}
	last := len(input) - 1
	return input[last] == '/' && (last == 0 || input[last-1] != esc)
}

// Escape inserts ESC before every occurrence of character not already
// preceded by ESC. Idempotent.
func Escape(input string, character byte) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == character && (i == 0 || input[i-1] != esc) {
			b.WriteByte(esc)
		}
		b.WriteByte(c)
	}
	return b.String()
}
