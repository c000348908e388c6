// Package separator implements the dialect-discriminating separator
// locator: given a raw rule line, find which of the ~20 recognized
// separator literals splits it into pattern and body.
package separator

import (
	"strings"

	"github.com/adguardteam/rulekit/internal/rule"
	"github.com/adguardteam/rulekit/internal/scanner"
)

// Match is the result of a successful locate: the separator's byte range
// [Start, End) within the input, the Separator itself, and its exception
// flag (redundant with Separator.Exception, kept for caller convenience).
type Match struct {
	Start     int
	End       int
	Separator rule.Separator
	Exception bool
}

var hashSeparators, dollarSeparators []rule.Separator

func init() {
	for _, s := range rule.AllSeparators {
		if strings.HasPrefix(s.Literal, "#") {
			hashSeparators = append(hashSeparators, s)
		} else {
			dollarSeparators = append(dollarSeparators, s)
		}
	}
}

// Locate finds the separator in input, or reports found=false.
func Locate(input string) (m Match, found bool) {
	hashPos, hashSep, hashFound := locateHash(input)
	dollarPos, dollarSep, dollarFound := locateDollar(input)

	switch {
	case hashFound && (!dollarFound || hashPos < dollarPos):
		return toMatch(hashPos, hashSep), true
	case dollarFound:
		return toMatch(dollarPos, dollarSep), true
	case hashFound:
		return toMatch(hashPos, hashSep), true
	default:
		return Match{}, false
	}
}

func toMatch(pos int, sep rule.Separator) Match {
	return Match{
		Start:     pos,
		End:       pos + len(sep.Literal),
		Separator: sep,
		Exception: sep.Exception,
	}
}

// locateHash scans for '#'-led separators, skipping comment-origin "##"
// sequences (a "##" preceded by a space).
func locateHash(input string) (int, rule.Separator, bool) {
	i := 0
	for i < len(input) {
		rel := strings.IndexByte(input[i:], '#')
		if rel == -1 {
			return 0, rule.Separator{}, false
		}
		pos := i + rel

		best, ok := longestMatchAt(input, pos, hashSeparators)
		if ok {
			if best.Literal == "##" && pos > 0 && scanner.IsWhitespace(input[pos-1]) {
				i = pos + 1
				continue
			}
			return pos, best, true
		}
		i = pos + 1
	}
	return 0, rule.Separator{}, false
}

// locateDollar scans for '$$' or '$@$'.
func locateDollar(input string) (int, rule.Separator, bool) {
	i := 0
	for i < len(input) {
		rel := strings.IndexByte(input[i:], '$')
		if rel == -1 {
			return 0, rule.Separator{}, false
		}
		pos := i + rel

		if best, ok := longestMatchAt(input, pos, dollarSeparators); ok {
			return pos, best, true
		}
		i = pos + 1
	}
	return 0, rule.Separator{}, false
}

// longestMatchAt returns the longest candidate literal that matches input
// starting at pos (ties within the same prefix favor the more specific,
// longer entry).
func longestMatchAt(input string, pos int, candidates []rule.Separator) (rule.Separator, bool) {
	var best rule.Separator
	found := false
	for _, c := range candidates {
		end := pos + len(c.Literal)
		if end > len(input) {
			continue
		}
		if input[pos:end] != c.Literal {
			continue
		}
		if !found || len(c.Literal) > len(best.Literal) {
			best = c
			found = true
		}
	}
	return best, found
}
