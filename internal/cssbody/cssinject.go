package cssbody

import (
	"regexp"
	"strings"

	"github.com/adguardteam/rulekit/internal/cssast"
	"github.com/adguardteam/rulekit/internal/rule"
	"github.com/adguardteam/rulekit/internal/rulekiterr"
	"github.com/adguardteam/rulekit/internal/scanner"
)

var (
	reAdgWhole  = regexp.MustCompile(`(?s)^.+\{.+\}$`)
	reAdgMedia  = regexp.MustCompile(`(?s)^@media\s*([^{]+)\s*\{\s*(.+)\s*\}$`)
	reUboStyle  = regexp.MustCompile(`(?s)^(.+):style\((.+)\)$`)
	reUboRemove = regexp.MustCompile(`(?s)^(.+):remove\(\)$`)
)

// ParseCSSInject tries the AdGuard block shape first, then the uBO pseudo
// shape. ok=false means "not a CSS injection body" (try another grammar);
// a non-nil error means the shape matched but the body was malformed.
func ParseCSSInject(input string) (rule.CSSInjectBody, bool, error) {
	input = strings.TrimSpace(input)

	if body, ok, err := parseAdgCSSInject(input); ok || err != nil {
		return body, ok, err
	}
	return parseUboCSSInject(input)
}

// ParseAdgCSSInject tries only the AdGuard block shape (`sel { decls }`,
// optionally `@media ... { ... }`-wrapped). Used by callers that already
// know the separator implies this shape specifically.
func ParseAdgCSSInject(input string) (rule.CSSInjectBody, bool, error) {
	return parseAdgCSSInject(strings.TrimSpace(input))
}

// ParseUboCSSInject tries only the uBO pseudo shape (`sel:style(...)` /
// `sel:remove()`).
func ParseUboCSSInject(input string) (rule.CSSInjectBody, bool, error) {
	return parseUboCSSInject(strings.TrimSpace(input))
}

func parseAdgCSSInject(input string) (rule.CSSInjectBody, bool, error) {
	var body rule.CSSInjectBody

	work := input
	if m := reAdgMedia.FindStringSubmatch(input); m != nil {
		mq, err := cssast.ParseMediaQuery(m[1])
		if err != nil {
			return rule.CSSInjectBody{}, false, nil
		}
		body.MediaQuery = mq
		body.HasMediaQuery = true
		work = strings.TrimSpace(m[2])
	}

	if !reAdgWhole.MatchString(work) {
		return rule.CSSInjectBody{}, false, nil
	}

	braceIdx := scanner.FindNextUnescaped(work, '{', 0)
	closeIdx := scanner.FindLastUnescaped(work, '}')
	if braceIdx == -1 || closeIdx == -1 || closeIdx <= braceIdx {
		return rule.CSSInjectBody{}, false, nil
	}

	selectorsText := strings.TrimSpace(work[:braceIdx])
	declsText := strings.TrimSpace(work[braceIdx+1 : closeIdx])
	body.Selectors = splitSelectorList(selectorsText)

	block, err := cssast.ParseDeclarationBlock(declsText)
	if err != nil {
		return rule.CSSInjectBody{}, true, rulekiterr.Wrap(rulekiterr.CssSyntaxError, input, "invalid declaration block", err)
	}

	removeCount := 0
	for _, d := range block.Declarations {
		if d.Property == "remove" {
			removeCount++
		}
	}
	switch {
	case removeCount > 1:
		return rule.CSSInjectBody{}, true, rulekiterr.New(rulekiterr.MultipleRemoveDeclarations, input, "more than one remove declaration")
	case removeCount == 1 && len(block.Declarations) > 1:
		return rule.CSSInjectBody{}, true, rulekiterr.New(rulekiterr.MixedRemoveAndDeclarations, input, "remove coexists with other declarations")
	case removeCount == 1:
		body.Remove = true
	default:
		body.Block = block
		body.HasBlock = true
	}

	return body, true, nil
}

func parseUboCSSInject(input string) (rule.CSSInjectBody, bool, error) {
	if !strings.Contains(input, ":style(") && !strings.Contains(input, ":remove(") {
		return rule.CSSInjectBody{}, false, nil
	}

	if m := reUboStyle.FindStringSubmatch(input); m != nil {
		block, err := cssast.ParseDeclarationBlock(m[2])
		if err != nil {
			return rule.CSSInjectBody{}, true, rulekiterr.Wrap(rulekiterr.CssSyntaxError, input, "invalid :style() declaration block", err)
		}
		return rule.CSSInjectBody{
			Selectors: splitSelectorList(m[1]),
			Block:     block,
			HasBlock:  true,
		}, true, nil
	}

	if m := reUboRemove.FindStringSubmatch(input); m != nil {
		return rule.CSSInjectBody{
			Selectors: splitSelectorList(m[1]),
			Remove:    true,
		}, true, nil
	}

	return rule.CSSInjectBody{}, false, nil
}

// GenerateCSSInject regenerates canonical text for the given dialect.
func GenerateCSSInject(body rule.CSSInjectBody, dialect rule.Dialect) (string, error) {
	switch dialect {
	case rule.AdGuard, rule.Common:
		return generateAdgCSSInject(body), nil
	case rule.UblockOrigin:
		if body.HasMediaQuery {
			return "", rulekiterr.New(rulekiterr.MediaQueryInUbo, "", "media-query CSS-inject body cannot be generated for uBO")
		}
		return generateUboCSSInject(body), nil
	default:
		return "", rulekiterr.New(rulekiterr.UnsupportedSyntax, "", "CSS-inject body cannot be generated for dialect "+dialect.String())
	}
}

func generateAdgCSSInject(body rule.CSSInjectBody) string {
	var b strings.Builder
	if body.HasMediaQuery {
		b.WriteString("@media ")
		b.WriteString(cssast.GenerateMediaQuery(body.MediaQuery))
		b.WriteString(" { ")
	}
	b.WriteString(strings.Join(body.Selectors, ", "))
	b.WriteString(" { ")
	switch {
	case body.Remove:
		b.WriteString("remove: true;")
	case body.HasBlock:
		b.WriteString(cssast.GenerateDeclarationBlock(body.Block))
	}
	b.WriteString(" }")
	if body.HasMediaQuery {
		b.WriteString(" }")
	}
	return b.String()
}

func generateUboCSSInject(body rule.CSSInjectBody) string {
	var b strings.Builder
	b.WriteString(strings.Join(body.Selectors, ", "))
	switch {
	case body.Remove:
		b.WriteString(":remove()")
	case body.HasBlock:
		b.WriteString(":style(")
		b.WriteString(cssast.GenerateDeclarationBlock(body.Block))
		b.WriteString(")")
	default:
		b.WriteString(":style()")
	}
	return b.String()
}
