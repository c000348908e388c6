// Package rule is rulekit's public entry point: a lossless parser and
// regenerator for adblock filter-list rule syntax across the AdGuard,
// uBlock Origin, and Adblock Plus dialects. It re-exports the cosmetic and
// network dispatchers as the two Parse/Generate pairs a collaborator
// actually calls; the AST types themselves (CosmeticRule, NetworkRule,
// Dialect, ...) live in internal/rule and are re-exported here by alias so
// callers never import an internal path directly.
package rule

import (
	"github.com/adguardteam/rulekit/internal/cosmetic"
	"github.com/adguardteam/rulekit/internal/network"
	internalrule "github.com/adguardteam/rulekit/internal/rule"
	"github.com/adguardteam/rulekit/internal/rulekiterr"
)

// Re-exported AST vocabulary. Aliasing keeps internal/rule as the single
// source of truth for the type definitions while giving external callers
// a root-level import path.
type (
	Node         = internalrule.Node
	CosmeticRule = internalrule.CosmeticRule
	NetworkRule  = internalrule.NetworkRule
	Dialect      = internalrule.Dialect
	Category     = internalrule.Category
	CosmeticType = internalrule.CosmeticType
	NetworkKind  = internalrule.NetworkKind
	Domain       = internalrule.Domain
	DomainList   = internalrule.DomainList
	Modifier     = internalrule.Modifier
	ModifierList = internalrule.ModifierList
	Separator    = internalrule.Separator
)

const (
	Common       = internalrule.Common
	AdGuard      = internalrule.AdGuard
	UblockOrigin = internalrule.UblockOrigin
	AdblockPlus  = internalrule.AdblockPlus
)

const (
	Cosmetic = internalrule.Cosmetic
	Network  = internalrule.Network
)

const (
	ElementHide = internalrule.ElementHide
	CssInject   = internalrule.CssInject
	Scriptlet   = internalrule.Scriptlet
	Html        = internalrule.Html
	Js          = internalrule.Js
)

const (
	Basic        = internalrule.Basic
	RemoveHeader = internalrule.RemoveHeader
)

// Error is rulekit's error type; Kind distinguishes the exhaustive failure
// taxonomy documented on internal/rulekiterr.Kind.
type Error = rulekiterr.Error

// Kind re-exports the error taxonomy.
type Kind = rulekiterr.Kind

// ParseCosmetic parses raw as a cosmetic (`##`-family) rule. It returns
// (nil, nil) when raw is not a cosmetic rule at all (a comment, or no
// recognized separator) — try ParseNetwork next. A non-nil error means a
// cosmetic separator was found but the rule body was malformed.
func ParseCosmetic(raw string) (*CosmeticRule, error) {
	node, ok, err := cosmetic.Parse(raw)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &node, nil
}

// ParseNetwork parses raw as a network rule. Callers are expected to have
// already ruled out a cosmetic match. On a non-cosmetic, non-comment line
// ParseNetwork fails only for a malformed `$removeheader=` or
// `responseheader(...)` rule.
func ParseNetwork(raw string) (*NetworkRule, error) {
	node, err := network.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &node, nil
}

// IsComment reports whether raw is a plain comment line (leading '!', or an
// isolated '#' followed by a space). Callers driving Parse over a whole
// filter list should filter these out first: ParseNetwork is only
// guaranteed to succeed on non-cosmetic, non-comment lines.
func IsComment(raw string) bool {
	return cosmetic.IsComment(raw)
}

// Parse tries the cosmetic dispatcher first, falling back to the network
// parser, matching rulekit's overall data flow. Parse does not filter
// comments; callers iterating a filter list should check IsComment first.
func Parse(raw string) (Node, error) {
	if c, err := ParseCosmetic(raw); err != nil {
		return nil, err
	} else if c != nil {
		return *c, nil
	}
	n, err := ParseNetwork(raw)
	if err != nil {
		return nil, err
	}
	return *n, nil
}

// Generate regenerates canonical rule text for any Node produced by Parse.
func Generate(n Node) (string, error) {
	switch v := n.(type) {
	case CosmeticRule:
		return cosmetic.Generate(v)
	case NetworkRule:
		return network.Generate(v), nil
	default:
		return "", rulekiterr.New(rulekiterr.UnsupportedSyntax, "", "unrecognized node type")
	}
}
