// Package cssbody implements the CSS-shaped cosmetic bodies: element-hide
// selector lists, CSS-injection bodies (AdGuard block form, uBO pseudo
// form, media-query wrapper, `remove` sentinel), and HTML-filter selectors
// with their `""` <-> `\"` transcoding.
package cssbody

import (
	"strings"

	"github.com/adguardteam/rulekit/internal/rule"
	"github.com/adguardteam/rulekit/internal/scanner"
)

// ParseElementHide parses a plain selector list body.
func ParseElementHide(input string) rule.ElementHideBody {
	return rule.ElementHideBody{Selectors: splitSelectorList(input)}
}

// GenerateElementHide re-emits a comma-joined selector list.
func GenerateElementHide(b rule.ElementHideBody) string {
	return strings.Join(b.Selectors, ", ")
}

// splitSelectorList trims input, then splits on top-level unescaped commas
// (commas inside attribute-value strings are not top-level). A single
// selector with no top-level comma returns a one-element slice.
func splitSelectorList(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	raw := scanner.SplitBy(scanner.SplitOutsideStrings, input, ',')
	selectors := make([]string, 0, len(raw))
	for _, s := range raw {
		selectors = append(selectors, strings.TrimSpace(s))
	}
	return selectors
}
