// Package cosmetic orchestrates the cosmetic-rule dispatch pipeline:
// pattern/separator/body decomposition, dialect resolution, and
// cross-dialect compatibility enforcement.
package cosmetic

import (
	"strings"

	"github.com/adguardteam/rulekit/internal/adgmodifier"
	"github.com/adguardteam/rulekit/internal/cssbody"
	"github.com/adguardteam/rulekit/internal/domainlist"
	"github.com/adguardteam/rulekit/internal/procedural"
	"github.com/adguardteam/rulekit/internal/rule"
	"github.com/adguardteam/rulekit/internal/rulekiterr"
	"github.com/adguardteam/rulekit/internal/scriptlet"
	"github.com/adguardteam/rulekit/internal/separator"
)

// Parse decomposes a raw line into a CosmeticRule. ok=false means line is
// not a cosmetic rule at all (a comment, or no recognized separator) — the
// caller should try the network parser next. A non-nil error means a
// cosmetic separator was found but the rule was malformed.
func Parse(line string) (rule.CosmeticRule, bool, error) {
	if IsComment(line) {
		return rule.CosmeticRule{}, false, nil
	}

	m, found := separator.Locate(line)
	if !found {
		return rule.CosmeticRule{}, false, nil
	}

	pattern := strings.TrimSpace(line[:m.Start])
	body := strings.TrimSpace(line[m.End:])

	dialect := rule.Common

	adgBlock, err := adgmodifier.Parse(pattern)
	if err != nil {
		return rule.CosmeticRule{}, true, err
	}
	if !adgBlock.Modifiers.Empty() {
		dialect = rule.AdGuard
	}
	pattern = adgBlock.Rest

	var domains rule.DomainList
	if pattern != "" {
		domains, err = domainlist.Parse(pattern, rule.DomainSepComma)
		if err != nil {
			return rule.CosmeticRule{}, true, err
		}
	}

	node := rule.CosmeticRule{
		Exception: m.Exception,
		Domains:   domains,
		Separator: m.Separator,
	}

	switch m.Separator.Literal {
	case "##", "#@#", "#?#", "#@?#":
		if err := dispatchElementHideFamily(&node, body, dialect, adgBlock.Modifiers); err != nil {
			return rule.CosmeticRule{}, true, err
		}

	case "#$#", "#@$#", "#$?#", "#@$?#":
		if err := dispatchAdgCssOrAbpFamily(&node, body, dialect, adgBlock.Modifiers); err != nil {
			return rule.CosmeticRule{}, true, err
		}

	case "##+js", "#@#+js":
		if dialect == rule.AdGuard {
			return rule.CosmeticRule{}, true, rulekiterr.New(rulekiterr.AdgAndUboMixed, line, "##+js is uBO-only but an AdGuard modifier bracket was present")
		}
		call, scErr := scriptlet.ParseAdgUbo(body)
		if scErr != nil {
			return rule.CosmeticRule{}, true, scErr
		}
		node.Dialect = rule.UblockOrigin
		node.Type = rule.Scriptlet
		node.Scriptlet = call

	case "#%#//scriptlet", "#@%#//scriptlet":
		call, scErr := scriptlet.ParseAdgUbo(body)
		if scErr != nil {
			return rule.CosmeticRule{}, true, scErr
		}
		node.Dialect = rule.AdGuard
		node.Modifiers = adgBlock.Modifiers
		node.Type = rule.Scriptlet
		node.Scriptlet = call

	case "##^", "#@#^":
		if strings.HasPrefix(body, "responseheader(") {
			return rule.CosmeticRule{}, false, nil
		}
		if dialect == rule.AdGuard {
			return rule.CosmeticRule{}, true, rulekiterr.New(rulekiterr.AdgAndUboMixed, line, "##^ is uBO-only but an AdGuard modifier bracket was present")
		}
		pb := procedural.Parse(body)
		node.Dialect = rule.UblockOrigin
		node.Modifiers = pb.Modifiers
		node.Type = rule.Html
		node.HTML = cssbody.ParseHTMLFilter(pb.Rest)

	case "$$", "$@$":
		pb := procedural.Parse(body)
		if len(pb.Modifiers) > 0 {
			return rule.CosmeticRule{}, true, rulekiterr.New(rulekiterr.UboProceduralOnAdgHtml, line, "uBO procedural modifier inside an AdGuard HTML filter")
		}
		node.Dialect = rule.AdGuard
		node.Modifiers = adgBlock.Modifiers
		node.Type = rule.Html
		node.HTML = cssbody.ParseHTMLFilter(body)

	case "#%#", "#@%#":
		node.Dialect = rule.AdGuard
		node.Modifiers = adgBlock.Modifiers
		node.Type = rule.Js
		node.JS = body

	default:
		return rule.CosmeticRule{}, false, nil
	}

	return node, true, nil
}

// dispatchElementHideFamily handles ##, #@#, #?#, #@?#: first try the uBO
// procedural lift, then the uBO CSS-inject pseudo shape, then fall back to
// a plain element-hide selector list.
func dispatchElementHideFamily(node *rule.CosmeticRule, body string, dialect rule.Dialect, bracketMods rule.ModifierList) error {
	pb := procedural.Parse(body)

	uboCSS, isUboCSS, cssErr := cssbody.ParseUboCSSInject(pb.Rest)
	if cssErr != nil {
		return cssErr
	}

	if len(pb.Modifiers) > 0 {
		if dialect == rule.AdGuard {
			return rulekiterr.New(rulekiterr.AdgAndUboMixed, body, "uBO procedural modifier found after an AdGuard modifier bracket")
		}
		dialect = rule.UblockOrigin
	}
	if isUboCSS && dialect == rule.AdGuard {
		return rulekiterr.New(rulekiterr.AdgCssWithUboInject, body, "uBO :style()/:remove() combined with an AdGuard modifier bracket")
	}

	if isUboCSS {
		if dialect == rule.Common {
			dialect = rule.UblockOrigin
		}
		node.Type = rule.CssInject
		node.CSSInject = uboCSS
	} else {
		node.Type = rule.ElementHide
		node.ElementHide = cssbody.ParseElementHide(pb.Rest)
	}

	node.Dialect = dialect
	if dialect == rule.AdGuard {
		node.Modifiers = bracketMods
	} else if len(pb.Modifiers) > 0 {
		node.Modifiers = pb.Modifiers
	}
	return nil
}

// dispatchAdgCssOrAbpFamily handles #$#, #@$#, #$?#, #@$?#: AdGuard CSS
// injection if the body parses as the AdGuard block shape, otherwise an
// ABP scriptlet snippet.
func dispatchAdgCssOrAbpFamily(node *rule.CosmeticRule, body string, dialect rule.Dialect, bracketMods rule.ModifierList) error {
	adgCSS, ok, err := cssbody.ParseAdgCSSInject(body)
	if err != nil {
		return err
	}
	if ok {
		node.Dialect = rule.AdGuard
		node.Modifiers = bracketMods
		node.Type = rule.CssInject
		node.CSSInject = adgCSS
		return nil
	}

	calls, err := scriptlet.ParseABP(body)
	if err != nil {
		return err
	}
	node.Dialect = rule.AdblockPlus
	node.Type = rule.Scriptlet
	node.Scriptlet = calls
	return nil
}

// IsComment reports whether line is a plain comment: a leading '!', or an
// isolated '#' followed by a space. Exported so a line-oriented driver
// (cmd/rulekit) can filter comments before they ever reach Parse or the
// network dispatcher, matching the detection-totality property: parsing a
// network rule is only guaranteed to succeed on non-cosmetic, non-comment
// input.
func IsComment(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "!") {
		return true
	}
	return strings.HasPrefix(trimmed, "# ")
}

// Generate regenerates canonical text for node.
func Generate(node rule.CosmeticRule) (string, error) {
	var prefix strings.Builder
	if node.Dialect == rule.AdGuard && !node.Modifiers.Empty() {
		prefix.WriteString(adgmodifier.Generate(rule.AdgModifierBlock{Modifiers: node.Modifiers}))
	}
	prefix.WriteString(domainlist.Generate(node.Domains))
	prefix.WriteString(node.Separator.Literal)

	if node.Type == rule.Scriptlet && node.Dialect != rule.AdblockPlus && len(node.Scriptlet) > 1 {
		lines := make([]string, len(node.Scriptlet))
		for i, call := range node.Scriptlet {
			lines[i] = prefix.String() + scriptlet.Generate(rule.ScriptletBody{call}, scriptlet.ShapeAdgUbo)
		}
		return strings.Join(lines, "\n"), nil
	}

	body, err := generateBody(node)
	if err != nil {
		return "", err
	}

	return prefix.String() + body, nil
}

func generateBody(node rule.CosmeticRule) (string, error) {
	switch node.Type {
	case rule.ElementHide:
		body := cssbody.GenerateElementHide(node.ElementHide)
		return wrapProcedural(node, body), nil

	case rule.CssInject:
		body, err := cssbody.GenerateCSSInject(node.CSSInject, node.Dialect)
		if err != nil {
			return "", err
		}
		return wrapProcedural(node, body), nil

	case rule.Scriptlet:
		shape := scriptlet.ShapeAdgUbo
		if node.Dialect == rule.AdblockPlus {
			shape = scriptlet.ShapeABP
		}
		return scriptlet.Generate(node.Scriptlet, shape), nil

	case rule.Html:
		body := cssbody.GenerateHTMLFilter(node.HTML, node.Dialect)
		return wrapProcedural(node, body), nil

	case rule.Js:
		return node.JS, nil

	default:
		return "", rulekiterr.New(rulekiterr.UnsupportedSyntax, "", "cosmetic rule has no recognized body type")
	}
}

func wrapProcedural(node rule.CosmeticRule, body string) string {
	if node.Dialect == rule.UblockOrigin && !node.Modifiers.Empty() {
		return procedural.Generate(rule.ProceduralBlock{Modifiers: node.Modifiers, Rest: body})
	}
	return body
}
